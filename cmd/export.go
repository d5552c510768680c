package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabtools/tabconv/midi"
	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/tab"
	"github.com/tabtools/tabconv/tuning"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <input> <output.mid>",
	Short: "Export a tab file as MIDI",
	Long:  `Reads a tab file with labeled string tunings and writes its notes as a MIDI file.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0], args[1])
	},
}

func runExport(input, output string) error {
	f, err := tab.ParseFile(input)
	if err != nil {
		return err
	}
	if f.DetectedTuning == nil {
		return fmt.Errorf("could not detect tuning in %v, label strings like E2|---", input)
	}
	tun, err := tuning.Parse(f.DetectedTuning)
	if err != nil {
		return err
	}

	// sections play back to back, so offset each by the widths before it
	var events []model.NoteEvent
	offset := 0
	for _, section := range f.Sections {
		sectionEvents, err := tab.SectionEvents(section, tun, 0)
		if err != nil {
			return err
		}
		for _, e := range sectionEvents {
			e.Timestamp += offset
			events = append(events, e)
		}
		offset += tab.SectionWidth(section)
	}

	if err := midi.WriteEvents(output, events); err != nil {
		return err
	}
	fmt.Printf("MIDI export written to %v\n", output)
	return nil
}
