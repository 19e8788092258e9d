package sqlite

// Schema DDL. The kv table is the whole store: one row per key, the value
// holding the JSON document written by the repository.
const (
	createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// schemaStatements lists the DDL executed on Attach, in order.
var schemaStatements = []string{
	`PRAGMA busy_timeout = 5000;`,
	createKV,
}
