package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
)

const watchPollInterval = 250 * time.Millisecond
const watchSettle = 500 * time.Millisecond

// watchConvert polls the input's mtime and re-runs the conversion through a
// debouncer, so editors that write in several bursts trigger one rebuild.
// Runs until interrupted.
func watchConvert(input, output string) error {
	if err := runConvert(input, output); err != nil {
		return err
	}

	debounced := debounce.New(watchSettle)
	var lastMod time.Time
	if st, err := os.Stat(input); err == nil {
		lastMod = st.ModTime()
	}

	fmt.Printf("Watching %v for changes...\n", input)
	for {
		time.Sleep(watchPollInterval)
		st, err := os.Stat(input)
		if err != nil {
			continue
		}
		if st.ModTime().Equal(lastMod) {
			continue
		}
		lastMod = st.ModTime()
		debounced(func() {
			if err := runConvert(input, output); err != nil {
				fmt.Fprintf(os.Stderr, "convert failed: %v\n", err)
			}
		})
	}
}
