package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printExamples(cmd.OutOrStdout())
		},
	}
}

func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 SalaryMap Usage Examples 📋")
	fmt.Fprintln(w, "\n1. Draw the dashboard for the bundled dataset:")
	fmt.Fprintln(w, "   salarymap render")

	fmt.Fprintln(w, "\n2. Senior and executive roles at large companies paying at least $150k:")
	fmt.Fprintln(w, "   salarymap render --exp SE,EX --size L --min 150k")

	fmt.Fprintln(w, "\n3. Highlight one country and silence the banner:")
	fmt.Fprintln(w, "   salarymap render --country US --silence")

	fmt.Fprintln(w, "\n4. Read the dataset from a URL and write PNG charts:")
	fmt.Fprintln(w, "   salarymap render --dataset https://example.com/ds_salaries.csv --chart-dir charts")

	fmt.Fprintln(w, "\n5. Find job titles that look like \"machine learning\":")
	fmt.Fprintln(w, "   salarymap titles machine learning --limit 5")

	fmt.Fprintln(w, "\n6. Start an interactive session with debug logging:")
	fmt.Fprintln(w, "   salarymap explore --log-level debug")
	fmt.Fprintln(w, "   salarymap> exp SE")
	fmt.Fprintln(w, "   salarymap> click US")
	fmt.Fprintln(w, "   salarymap> clear")

	fmt.Fprintln(w, "\nFor more information, visit: https://github.com/fr4nk3nst1ner/salarymap")
}
