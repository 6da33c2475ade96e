// Package main provides the entry point for the jobmatch CLI client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Job recommendation client",
	Long:  "jobmatch browses personalized job recommendations, manages your skills and resume, and tracks applications against the jobmatch API.",
}

var (
	configFile  string
	apiURL      string
	sessionFile string
	timeoutSecs int
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the jobmatch API (or JOBMATCH_API_URL)")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "Path to the persisted session file")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 0, "Per-request timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
