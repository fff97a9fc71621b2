package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarymap/internal/client"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

var (
	// ErrEmptyDataset is returned when a dataset has no header row
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrMissingColumn is returned when a required column is absent
	ErrMissingColumn = errors.New("missing required column")
)

// Loader reads the salary dataset and the geographic boundary resource from a
// local path or an http(s) URL.
type Loader struct {
	HTTP     *http.Client
	Logger   *pterm.Logger
	Progress io.Writer // destination of the row progress bar; nil disables it
}

// New creates a Loader with the default HTTP client.
func New(logger *pterm.Logger, progress io.Writer) *Loader {
	return &Loader{
		HTTP:     client.CreateHTTPClient(""),
		Logger:   logger,
		Progress: progress,
	}
}

// LoadDataset reads and validates every record of the dataset at location.
// Rows failing validation are dropped and counted in the report.
func (l *Loader) LoadDataset(ctx context.Context, location string) ([]models.Record, models.LoadReport, error) {
	report := models.LoadReport{Source: location}

	data, err := l.read(ctx, location)
	if err != nil {
		return nil, report, err
	}

	var header []string
	var rows [][]string
	switch strings.ToLower(filepath.Ext(stripQuery(location))) {
	case ".html", ".htm":
		header, rows, err = ParseHTMLTable(data)
	default:
		header, rows, err = ParseCSV(data)
	}
	if err != nil {
		return nil, report, fmt.Errorf("parse %s: %w", location, err)
	}

	records, report, err := BuildRecords(header, rows, l.Progress)
	report.Source = location
	if err != nil {
		return nil, report, fmt.Errorf("load %s: %w", location, err)
	}

	if l.Logger != nil {
		l.Logger.Info("dataset loaded", l.Logger.Args(
			"source", location,
			"rows", report.Rows,
			"loaded", report.Loaded,
			"skipped", report.Skipped,
		))
		if report.Skipped > 0 || report.UnknownCodes > 0 {
			l.Logger.Warn("dataset has data quality issues", l.Logger.Args(
				"skipped_rows", report.Skipped,
				"unknown_codes", report.UnknownCodes,
			))
		}
	}
	return records, report, nil
}

// LoadRegions reads the geographic boundary resource at location.
func (l *Loader) LoadRegions(ctx context.Context, location string) ([]models.Region, error) {
	data, err := l.read(ctx, location)
	if err != nil {
		return nil, err
	}
	regions, err := ParseGeoJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", location, err)
	}
	if l.Logger != nil {
		l.Logger.Debug("regions loaded", l.Logger.Args("source", location, "regions", len(regions)))
	}
	return regions, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if isURL(location) {
		httpClient := l.HTTP
		if httpClient == nil {
			httpClient = client.CreateHTTPClient("")
		}
		return client.Fetch(ctx, httpClient, location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func stripQuery(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		return location[:i]
	}
	return location
}
