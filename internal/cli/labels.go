package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dstore-labs/piiscan/internal/catalog"
	"github.com/dstore-labs/piiscan/internal/db"
	"github.com/dstore-labs/piiscan/internal/logging"
	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List persisted column classifications",
	Long: `Labels lists the classifications persisted in the piiscan_label
table of the target database, one line per labeled column.

Connection flags and environment variables work exactly as for the scan
commands.

Examples:
  piiscan labels -d mydb
  piiscan labels --connection "postgresql://user@host/mydb"`,
	Args: cobra.NoArgs,
	RunE: runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().StringVar(&scanFlags.connection, "connection", "",
		"PostgreSQL connection string (URI format)")
	labelsCmd.Flags().StringVarP(&scanFlags.host, "host", "h", "",
		"PostgreSQL server host")
	labelsCmd.Flags().IntVarP(&scanFlags.port, "port", "p", 0,
		"PostgreSQL server port")
	labelsCmd.Flags().StringVarP(&scanFlags.username, "username", "U", "",
		"PostgreSQL user")
	labelsCmd.Flags().StringVarP(&scanFlags.database, "database", "d", "",
		"Database to read labels from")
	labelsCmd.Flags().StringVar(&scanFlags.sslMode, "sslmode", "",
		"SSL mode: disable|allow|prefer|require|verify-ca|verify-full")
	labelsCmd.Flags().DurationVar(&scanFlags.timeout, "timeout", piiscan.DefaultTimeout,
		"Timeout for listing labels")
}

func runLabels(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildScanConfig(cmd, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)

	ctx, cancel := scanContext(config.Timeout)
	defer cancel()

	pool, err := db.NewConnector(config.ConnectionString).Connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	cat := catalog.NewPostgres(pool, logger)
	labels, err := cat.Labels(ctx)
	if err != nil {
		return err
	}

	if len(labels) == 0 {
		logger.Info("No labels found in %s", config.DatabaseName)
		return nil
	}

	// Listing goes to stdout for pipeline consumption.
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tPII TYPE\tDETECTOR\tDETECTED AT")
	for _, label := range labels {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			label.Column.FQDN(),
			label.PiiType,
			label.PiiPlugin,
			label.DetectedAt.UTC().Format(time.RFC3339),
		)
	}
	return w.Flush()
}
