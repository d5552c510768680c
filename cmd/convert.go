package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabtools/tabconv/config"
	"github.com/tabtools/tabconv/tab"
	"github.com/tabtools/tabconv/tuning"
)

var convertConfigPath string
var convertSourceTuning []string
var convertWatch bool

func init() {
	convertCmd.Flags().StringVarP(&convertConfigPath, "config", "c", "", "config file with target tuning (required)")
	convertCmd.Flags().StringSliceVarP(&convertSourceTuning, "source-tuning", "s", nil,
		"source tuning (e.g. E2,A2,D3,G3,B3,E4); detected from the file if omitted")
	convertCmd.Flags().BoolVar(&convertWatch, "watch", false, "re-run the conversion whenever the input changes")
	convertCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a tab file to the target tuning",
	Long:  `Rewrites every fret number in a tab file for the target tuning, string by string.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if convertWatch {
			return watchConvert(args[0], args[1])
		}
		return runConvert(args[0], args[1])
	},
}

func runConvert(input, output string) error {
	_, target, err := config.Load(convertConfigPath)
	if err != nil {
		return err
	}

	f, err := tab.ParseFile(input)
	if err != nil {
		return err
	}

	sourceNotes := convertSourceTuning
	if len(sourceNotes) == 0 {
		if f.DetectedTuning == nil {
			return fmt.Errorf("could not detect source tuning, use -s to specify")
		}
		sourceNotes = f.DetectedTuning
		fmt.Printf("Detected source tuning: %v\n", strings.Join(sourceNotes, " "))
	}
	source, err := tuning.Parse(sourceNotes)
	if err != nil {
		return err
	}

	converted, err := tab.ConvertLines(f.Lines, source, target)
	if err != nil {
		return err
	}

	if err := writeLines(output, converted); err != nil {
		return err
	}
	fmt.Printf("Converted tabs written to %v\n", output)
	return nil
}

func writeLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0666)
}
