package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabtools/tabconv/config"
	"github.com/tabtools/tabconv/midi"
	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/tab"
)

var mergeOutput string
var mergeConfigPath string
var mergeParts []string
var mergeTunings []string
var mergeMidiPath string

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output merged tab file (required)")
	mergeCmd.Flags().StringVarP(&mergeConfigPath, "config", "c", "", "config file with target tuning (required)")
	mergeCmd.Flags().StringSliceVar(&mergeParts, "part", nil,
		"per-input part override, one of auto|bass|melody, in input order")
	mergeCmd.Flags().StringArrayVar(&mergeTunings, "source-tuning", nil,
		"per-input source tuning override (e.g. 'E2 A2 D3 G3'), or auto, in input order")
	mergeCmd.Flags().StringVar(&mergeMidiPath, "midi", "", "also export the merged arrangement as a MIDI file")
	mergeCmd.MarkFlagRequired("output")
	mergeCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge <inputs...>",
	Short: "Merge tab files into one target-tuning arrangement",
	Long: `Classifies each input as a bass or melody part, then allocates every
note onto the target instrument's strings, beat by beat.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(args)
	},
}

// parsePartOverrides turns the --part flag into explicit per-file parts;
// "auto" (or a missing entry) defers to the classifier.
func parsePartOverrides(values []string, numFiles int) (map[int]model.PartType, error) {
	if len(values) > numFiles {
		return nil, fmt.Errorf("more --part values (%v) than input files (%v)", len(values), numFiles)
	}
	res := make(map[int]model.PartType)
	for i, v := range values {
		switch v {
		case "auto", "":
		case "bass":
			res[i] = model.Bass
		case "melody":
			res[i] = model.Melody
		default:
			return nil, fmt.Errorf("invalid --part value %q, want auto, bass or melody", v)
		}
	}
	return res, nil
}

func runMerge(inputs []string) error {
	cfg, target, err := config.Load(mergeConfigPath)
	if err != nil {
		return err
	}

	overrides, err := parsePartOverrides(mergeParts, len(inputs))
	if err != nil {
		return err
	}

	if len(mergeTunings) > len(inputs) {
		return fmt.Errorf("more --source-tuning values (%v) than input files (%v)", len(mergeTunings), len(inputs))
	}

	files := make([]*tab.File, len(inputs))
	for i, input := range inputs {
		f, err := tab.ParseFile(input)
		if err != nil {
			return err
		}
		// an explicit tuning beats whatever the labels say
		if i < len(mergeTunings) && mergeTunings[i] != "auto" && mergeTunings[i] != "" {
			f.DetectedTuning = strings.Fields(mergeTunings[i])
		}
		files[i] = f
	}

	summary, err := tab.Merge(files, overrides, cfg, target)
	if err != nil {
		return err
	}

	if err := writeLines(mergeOutput, summary.Lines); err != nil {
		return err
	}

	fmt.Printf("Merged %v files into %v\n", len(inputs), mergeOutput)
	fmt.Printf("Combined %v section(s) with %v total lines\n", summary.Sections, len(summary.Lines))
	if summary.Unplayable > 0 {
		fmt.Printf("%v note(s) could not be placed and are marked X\n", summary.Unplayable)
	}

	if mergeMidiPath != "" {
		if err := midi.WriteEvents(mergeMidiPath, summary.Notes); err != nil {
			return err
		}
		fmt.Printf("MIDI export written to %v\n", mergeMidiPath)
	}
	return nil
}
