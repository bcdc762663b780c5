// Package catalog is the PostgreSQL-backed catalog collaborator.
//
// It owns three responsibilities around the scan core:
//   - enumerating (schema, table, column) work items from
//     information_schema.columns as lazy, re-enumerable sequences
//   - sampling cell values from text-typed columns for data scans
//   - persisting classifications into the piiscan_label table with an
//     idempotent upsert
//
// Each Postgres instance carries a scan run ID (uuid) stamped onto every
// label it writes, so reruns can be told apart in the label table.
package catalog
