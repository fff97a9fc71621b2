package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseCSV splits CSV bytes into a header row and data rows. Rows with the
// wrong number of fields are kept; missing trailing cells read as empty.
func ParseCSV(data []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse csv: %w", err)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// ParseHTMLTable reads the first <table> of an HTML document. The header comes
// from the first row containing <th> cells, or the first row if none does.
func ParseHTMLTable(data []byte) ([]string, [][]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, nil, ErrEmptyDataset
	}

	var header []string
	var rows [][]string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if header == nil {
			if th := tr.Find("th"); th.Length() > 0 {
				header = cellTexts(th)
				return
			}
		}
		cells := cellTexts(tr.Find("td"))
		if len(cells) == 0 {
			return
		}
		if header == nil {
			header = cells
			return
		}
		rows = append(rows, cells)
	})

	if header == nil {
		return nil, nil, ErrEmptyDataset
	}
	return header, rows, nil
}

func cellTexts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, cell *goquery.Selection) {
		out = append(out, strings.TrimSpace(cell.Text()))
	})
	return out
}
