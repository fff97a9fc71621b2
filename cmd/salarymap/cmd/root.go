package cmd

import (
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every sub-command.
type options struct {
	configPath string
	dataset    string
	geo        string
	chartDir   string
	logLevel   string
	silence    bool
}

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "salarymap",
		Short: "salarymap explores a data-science salary dataset on a world map.",
		Long: `salarymap explores a data-science salary dataset on a world map.

Every filter change re-runs the whole pipeline: the records are filtered,
summarized, and every dashboard surface is redrawn from the result.

Persistent config can be saved in a YAML file (salarymap.yaml by default):

dataset: data/ds_salaries.csv
geo: data/countries.geo.json
charts:
  dir: charts
filters:
  experience_levels: [SE, EX]
  min_salary: 100k

SALARYMAP_DATASET, SALARYMAP_GEO, SALARYMAP_CHART_DIR and SALARYMAP_LOG_LEVEL
override the file; flags override both.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default salarymap.yaml)")
	flags.StringVar(&opts.dataset, "dataset", "", "salary dataset, CSV or HTML table, path or URL")
	flags.StringVar(&opts.geo, "geo", "", "country boundaries GeoJSON, path or URL")
	flags.StringVar(&opts.chartDir, "chart-dir", "", "directory for PNG charts (empty disables them)")
	flags.StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn, error or off")
	flags.BoolVar(&opts.silence, "silence", false, "silence the banner")

	cmd.AddCommand(
		renderCmd(opts),
		exploreCmd(opts),
		titlesCmd(opts),
		examplesCmd(),
	)
	return cmd
}
