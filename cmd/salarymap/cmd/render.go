package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarymap/internal/config"
)

// Draw the dashboard once for the configured filters, overridden by flags.
func renderCmd(opts *options) *cobra.Command {
	filters := config.FiltersConfig{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the dashboard once and exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			a.banner()
			if err := a.load(ctx); err != nil {
				return err
			}

			s, err := a.session(mergeFilters(cmd, a.cfg.Filters, filters))
			if err != nil {
				return err
			}
			return s.Start()
		},
	}

	f := cmd.Flags()
	f.StringVar(&filters.JobTitle, "title", "", "exact job title")
	f.StringSliceVar(&filters.CompanySizes, "size", nil, "company sizes (S, M, L)")
	f.StringSliceVar(&filters.ExperienceLevels, "exp", nil, "experience levels (EN, MI, SE, EX)")
	f.StringSliceVar(&filters.EmploymentTypes, "type", nil, "employment types (PT, FT, CT, FL)")
	f.StringVar(&filters.MinSalary, "min", "", "minimum salary in USD, e.g. 80k")
	f.StringVar(&filters.MaxSalary, "max", "", "maximum salary in USD")
	f.StringVar(&filters.Country, "country", "", "company location (ISO 3166-1 alpha-2)")
	return cmd
}

// mergeFilters replaces each configured filter whose flag was given.
func mergeFilters(cmd *cobra.Command, base, flags config.FiltersConfig) config.FiltersConfig {
	changed := cmd.Flags().Changed
	if changed("title") {
		base.JobTitle = flags.JobTitle
	}
	if changed("size") {
		base.CompanySizes = flags.CompanySizes
	}
	if changed("exp") {
		base.ExperienceLevels = flags.ExperienceLevels
	}
	if changed("type") {
		base.EmploymentTypes = flags.EmploymentTypes
	}
	if changed("min") {
		base.MinSalary = flags.MinSalary
	}
	if changed("max") {
		base.MaxSalary = flags.MaxSalary
	}
	if changed("country") {
		base.Country = flags.Country
	}
	return base
}
