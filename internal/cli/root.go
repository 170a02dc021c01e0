// Package cli provides command-line interface implementation for the uptime tool.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	uptime "github.com/greyshaman/system-uptime"
	"github.com/greyshaman/system-uptime/internal/format"
	"github.com/greyshaman/system-uptime/internal/schema"

	"github.com/spf13/cobra"
)

var (
	asJSON   bool
	asMillis bool
)

// rootCmd represents the base command; it performs the uptime query itself.
var rootCmd = &cobra.Command{
	Use:   "uptime",
	Short: "Report how long the operating system has been running",
	Long: `uptime queries the operating system for the time elapsed since boot and
prints it as a compact duration, a raw millisecond count, or a JSON report
including the boot instant.`,
	SilenceUsage: true,
	RunE:         runUptime,
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON report")
	rootCmd.Flags().BoolVar(&asMillis, "millis", false, "print the raw millisecond count only")
}

func runUptime(cmd *cobra.Command, args []string) error {
	ms, err := uptime.Get()
	if err != nil {
		return err
	}

	if asMillis {
		fmt.Println(ms)
		return nil
	}

	d := time.Duration(ms) * time.Millisecond

	if asJSON {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		now := time.Now()

		report := schema.NewReport(
			runtime.GOOS,
			runtime.GOARCH,
			hostname,
			ms,
			format.Compact(d),
			now.Add(-d),
			now,
		)

		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report JSON: %w", err)
		}

		fmt.Println(string(jsonBytes))
		return nil
	}

	fmt.Println("up " + format.Compact(d))
	return nil
}
