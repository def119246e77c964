package sqlgen

// Dialect identifies which of the three supported SQL dialects a Backend
// renders for.
type Dialect int

const (
	MySQLDialect Dialect = iota
	PostgresDialect
	SQLiteDialect
)

func (d Dialect) String() string {
	switch d {
	case MySQLDialect:
		return "MySQL"
	case PostgresDialect:
		return "PostgreSQL"
	case SQLiteDialect:
		return "SQLite"
	default:
		return "unknown"
	}
}

// renderMode selects between inline literal rendering (to_string) and
// placeholder rendering (build/build_collect).
type renderMode int

const (
	modeInline renderMode = iota
	modePlaceholder
)

// Direction is ORDER BY ascending/descending.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) sql() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// NullsOrder is the optional null-placement modifier on an ORDER BY entry.
type NullsOrder int

const (
	NullsDefault NullsOrder = iota
	NullsFirst
	NullsLast
)

// Backend is the single seam every statement and expression renders
// through. It is implemented by the three concrete dialect backends in
// this module's dialect/ subpackages. Shared rendering logic (everything
// that is the same SQL shape across dialects, parameterized only by these
// hooks) lives in this package's statement/expression/condition renderers.
// Methods are split into a query-builder half and a schema-builder half,
// though a single concrete type implements both.
type Backend interface {
	Dialect() Dialect

	// ---- query-builder hooks ----

	// QuoteIdent returns name wrapped in the dialect's identifier quotes.
	QuoteIdent(name string) string
	// BoolLiteral returns the dialect's spelling of a boolean literal.
	BoolLiteral(b bool) string
	// BlobLiteral returns the dialect's spelling of a byte-string literal.
	BlobLiteral(b []byte) string
	// Placeholder returns the dialect's parameter marker for the n-th
	// (1-based) pushed value.
	Placeholder(n int) string
	// SupportsReturning reports whether RETURNING is emitted for
	// INSERT/UPDATE/DELETE. MySQL omits it silently.
	SupportsReturning() bool
	// RenderOrderExpr formats one ORDER BY entry given the already
	// rendered bare expression text; it may expand to more than one
	// comma-separated entry (MySQL/SQLite null-ordering emulation).
	RenderOrderExpr(exprSQL string, dir Direction, nulls NullsOrder) string

	// ---- schema-builder hooks ----

	// ColumnTypeSQL returns the type-name portion of a column definition,
	// given the full ColumnDef so a dialect can fold AUTO INCREMENT into
	// the type itself (Postgres SERIAL/BIGSERIAL).
	ColumnTypeSQL(col *ColumnDef) string
	// AutoIncrementKeyword returns the keyword appended after the column
	// type for auto-increment columns, or "" if the dialect folds
	// auto-increment into the type name instead (Postgres).
	AutoIncrementKeyword() string
	// SupportsCascadeDrop reports whether DROP TABLE ... CASCADE is
	// emitted (Postgres only; MySQL/SQLite omit it silently).
	SupportsCascadeDrop() bool
	// SupportsModifyColumn reports whether ALTER ... MODIFY/ALTER COLUMN
	// is supported. SQLite does not.
	SupportsModifyColumn() bool
	// SupportsDropColumn reports whether ALTER ... DROP COLUMN is
	// supported. SQLite does not.
	SupportsDropColumn() bool
	// RenderAlterOption writes everything that follows "ALTER TABLE
	// <table> " for the statement's single alter option. It is the one
	// place genuinely divergent control flow (not just a differing
	// constant) is allowed to live outside the shared renderers.
	RenderAlterOption(w *Writer, opt TableAlterOption)
}
