// Package db establishes PostgreSQL connections for scans.
//
// The connector builds a pgx connection pool from a resolved
// piiscan.ConnectionConfig or a raw connection string, retries transient
// failures with exponential backoff, and rewrites raw pgx errors into
// actionable guidance.
package db
