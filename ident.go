package sqlgen

// Identifier is a name (table, column, alias, schema) that knows how to
// write its own unquoted form. Go strings are already immutable and cheap
// to copy, so no shared-reference wrapper is needed here: a bare value
// type is sufficient.
type Identifier struct {
	name string
}

// Ident constructs an Identifier from a raw name. No validation is
// performed; malformed identifiers are undefined behavior.
func Ident(name string) Identifier {
	return Identifier{name: name}
}

// Name returns the raw, unquoted name.
func (i Identifier) Name() string { return i.name }

func (i Identifier) quoted(b Backend) string { return b.QuoteIdent(i.name) }

// TableRefKind discriminates the four ways a table can be referenced.
type TableRefKind int

const (
	TableBare TableRefKind = iota
	TableSchema
	TableAliased
	TableSubquery
)

// TableRef is a table reference: a bare identifier, a schema-qualified
// identifier, an aliased identifier, or an aliased sub-query. It is owned
// exclusively by the statement that holds it.
type TableRef struct {
	kind     TableRefKind
	schema   string
	table    string
	alias    string
	subquery *SelectStatement
}

// Table references a bare table name.
func Table(name string) TableRef {
	return TableRef{kind: TableBare, table: name}
}

// SchemaTable references a table qualified by schema.
func SchemaTable(schema, name string) TableRef {
	return TableRef{kind: TableSchema, schema: schema, table: name}
}

// As attaches an alias to a bare or schema-qualified table reference.
func (t TableRef) As(alias string) TableRef {
	if t.kind != TableSchema {
		t.kind = TableAliased
	}
	t.alias = alias
	return t
}

// FromSubquery builds a table reference to a derived table; a sub-query
// reference must carry an alias.
func FromSubquery(sub *SelectStatement, alias string) TableRef {
	return TableRef{kind: TableSubquery, subquery: sub, alias: alias}
}

func (t TableRef) render(w *Writer, b Backend, mode renderMode, col *Collector) {
	switch t.kind {
	case TableSubquery:
		w.WriteByte('(')
		renderSelect(w, b, t.subquery, col)
		w.WriteByte(')')
		w.WriteString(" AS ")
		w.WriteIdent(b, t.alias)
	case TableSchema:
		w.WriteIdent(b, t.schema)
		w.WriteByte('.')
		w.WriteIdent(b, t.table)
		if t.alias != "" {
			w.WriteString(" AS ")
			w.WriteIdent(b, t.alias)
		}
	default:
		w.WriteIdent(b, t.table)
		if t.alias != "" {
			w.WriteString(" AS ")
			w.WriteIdent(b, t.alias)
		}
	}
}

// name returns the bare table name used for statements (INSERT/UPDATE/
// DELETE/DDL targets) that render only "<table>" without entertaining
// aliasing or sub-query sources.
func (t TableRef) name() string {
	return t.table
}
