package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "piiscan",
	Short: "Rule-based PII classifier for PostgreSQL",
	Long: `piiscan detects personally identifiable information in PostgreSQL
databases. It classifies columns two ways: a metadata scan matches column
names against known PII naming patterns, and a data scan samples cell values
and matches them against value patterns (emails, phone numbers, credit cards,
national identifiers, and more).

Classifications are written back into the scanned database itself, into the
piiscan_label table, so results survive the process and can be queried like
any other data.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - Scan aborted mid-way (enumeration or label write failed)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for piiscan")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
