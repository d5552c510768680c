package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tabconv",
	Short: "Convert and merge stringed-instrument tabs between tunings",
	Long: `tabconv rewrites guitar/bass tablature into another tuning and merges
multiple tab files into a single arrangement, deciding for every beat which
target string and fret each note lands on.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
