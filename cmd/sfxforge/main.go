package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cellux/sfxforge"
)

var (
	flagOut      string
	flagThemes   []string
	flagWorkers  int
	flagTimeout  time.Duration
	flagUnseeded bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "sfxforge",
	Short: "Generate the themed sound-effect asset library",
	Long: `sfxforge renders the built-in catalog of themed UI sounds and alarms
into WAV files under the output root, one file per catalog entry.`,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "public/sounds/themes", "output root directory")
	rootCmd.Flags().StringSliceVarP(&flagThemes, "theme", "t", nil, "restrict generation to the named themes")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "worker pool size (0 = number of CPUs)")
	rootCmd.Flags().DurationVar(&flagTimeout, "entry-timeout", 30*time.Second, "per-entry rendering timeout (0 = none)")
	rootCmd.Flags().BoolVar(&flagUnseeded, "unseeded-noise", false, "use time-seeded noise instead of reproducible per-entry seeds")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug|info|warn|error)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := sfxforge.InitLogger(flagLogLevel); err != nil {
		return err
	}

	catalog := sfxforge.BuiltinCatalog().Filter(flagThemes...)
	if catalog.Len() == 0 {
		return fmt.Errorf("no catalog entries match themes %v", flagThemes)
	}

	results := sfxforge.RunCatalog(context.Background(), catalog, flagOut, sfxforge.Options{
		Workers:       flagWorkers,
		EntryTimeout:  flagTimeout,
		UnseededNoise: flagUnseeded,
	})

	summary := sfxforge.Summarize(results)
	fmt.Printf("%d sounds, %d written (%d bytes), %d failed\n",
		summary.Total, summary.Succeeded, summary.BytesWritten, summary.Failed)
	for _, r := range results {
		if r.Status == sfxforge.StatusFailure {
			fmt.Printf("  FAILED %s: %v\n", r.Key, r.Err)
		}
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d entries failed", summary.Failed, summary.Total)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
