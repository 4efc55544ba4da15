package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahzs645/portfolio-themes/internal/themes"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the registered presentation themes",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDISPLAY\tDATES\tDARK")
	for _, theme := range themes.List() {
		dark := ""
		if theme.Dark {
			dark = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", theme.Name, theme.DisplayName, theme.Granularity, dark)
	}
	return w.Flush()
}
