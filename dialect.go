package rdftab

// dialect isolates the SQL differences between the embedded SQLite backend
// the CLI uses and the PostgreSQL backend offered as an alternate library
// entry point (both corpora the ingestion pipeline can target — no query
// surface is defined for either, per the Non-goals).
type dialect interface {
	// createTableSQL returns the SQL for creating the `statements` table.
	createTableSQL() string
	// insertSQL returns the SQL for inserting one ThickRow.
	insertSQL() string
}

type sqliteDialect struct{}

func (sqliteDialect) createTableSQL() string {
	return `
		CREATE TABLE IF NOT EXISTS statements (
			subject   TEXT NOT NULL,
			predicate TEXT NOT NULL,
			object    TEXT,
			value     TEXT,
			datatype  TEXT,
			language  TEXT
		);
	`
}

func (sqliteDialect) insertSQL() string {
	return `INSERT INTO statements (subject, predicate, object, value, datatype, language) VALUES (?, ?, ?, ?, ?, ?)`
}

type postgresDialect struct{}

func (postgresDialect) createTableSQL() string {
	return `
		CREATE TABLE IF NOT EXISTS statements (
			subject   TEXT NOT NULL,
			predicate TEXT NOT NULL,
			object    TEXT,
			value     TEXT,
			datatype  TEXT,
			language  TEXT
		);
	`
}

func (postgresDialect) insertSQL() string {
	return `INSERT INTO statements (subject, predicate, object, value, datatype, language) VALUES ($1, $2, $3, $4, $5, $6)`
}
