package cli

import (
	"os"

	"github.com/dstore-labs/piiscan/internal/config"
	"github.com/dstore-labs/piiscan/internal/db"
	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// connectionStringFromEnv returns the first non-empty connection string from
// PIISCAN_CONNECTION_STRING or DATABASE_URL environment variables.
func connectionStringFromEnv() string {
	if s := os.Getenv("PIISCAN_CONNECTION_STRING"); s != "" {
		return s
	}
	return os.Getenv("DATABASE_URL")
}

// resolveConnection consolidates connection resolution for the scan and
// labels commands: connection string flag, granular flags, environment
// variables, and piiscan.yaml, in that precedence order.
func resolveConnection(
	connStringFlag string,
	granularFlags *db.GranularConnFlags,
	projectConfig *config.ProjectConfig,
) (*piiscan.ConnectionConfig, error) {
	connString := connStringFlag
	// Environment connection strings are a fallback, not a flag: granular
	// flags still win when both are present.
	if connString == "" && granularFlags.IsEmpty() {
		connString = connectionStringFromEnv()
	}

	envVars := db.LoadFromEnvironment()

	return db.ResolveConnectionParams(connString, granularFlags, envVars, projectConfig)
}
