package sqlgen

// InsertStatement is the INSERT statement AST.
type InsertStatement struct {
	table     TableRef
	columns   []string
	rows      [][]SimpleExpr
	source    *SelectStatement
	returning []SelectExpr
}

// NewInsert constructs a blank INSERT statement.
func NewInsert() *InsertStatement { return &InsertStatement{} }

func (s *InsertStatement) Into(ref TableRef) *InsertStatement {
	s.table = ref
	return s
}

// IntoTable is a convenience wrapper over Into(Table(name)).
func (s *InsertStatement) IntoTable(name string) *InsertStatement {
	return s.Into(Table(name))
}

func (s *InsertStatement) Columns(cols ...string) *InsertStatement {
	s.columns = append(s.columns, cols...)
	return s
}

// Values appends one row of values. Arity is checked at render time
// against the column list.
func (s *InsertStatement) Values(vals ...any) *InsertStatement {
	row := make([]SimpleExpr, len(vals))
	for i, v := range vals {
		row[i] = Val(v)
	}
	s.rows = append(s.rows, row)
	return s
}

// Select attaches a source SELECT in place of an explicit VALUES list.
func (s *InsertStatement) Select(sub *SelectStatement) *InsertStatement {
	s.source = sub
	return s
}

func (s *InsertStatement) Returning(exprs ...any) *InsertStatement {
	for _, e := range exprs {
		s.returning = append(s.returning, SelectExpr{Expr: Val(e)})
	}
	return s
}

func (s *InsertStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) { renderInsert(w, b, s, nil) })
}

func (s *InsertStatement) Build(b Backend) (string, []Value) {
	col := &Collector{}
	sql := renderToString(func(w *Writer) { renderInsert(w, b, s, col) })
	return sql, col.Values
}

func (s *InsertStatement) BuildCollect(b Backend, col *Collector) string {
	return renderToString(func(w *Writer) { renderInsert(w, b, s, col) })
}

func renderInsert(w *Writer, b Backend, s *InsertStatement, col *Collector) {
	mode := selectMode(col)

	w.WriteString("INSERT INTO ")
	w.WriteIdent(b, s.table.name())

	if len(s.columns) > 0 {
		w.WriteString(" (")
		for i, c := range s.columns {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteIdent(b, c)
		}
		w.WriteByte(')')
	}

	switch {
	case s.source != nil:
		w.WriteByte(' ')
		renderSelect(w, b, s.source, col)
	default:
		w.WriteString(" VALUES ")
		for i, row := range s.rows {
			if len(s.columns) > 0 && len(row) != len(s.columns) {
				panic("sqlgen: insert row arity does not match column count")
			}
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteByte('(')
			for j := range row {
				if j > 0 {
					w.WriteString(", ")
				}
				row[j].render(w, b, precNone, mode, col)
			}
			w.WriteByte(')')
		}
	}

	if len(s.returning) > 0 && b.SupportsReturning() {
		w.WriteString(" RETURNING ")
		for i, r := range s.returning {
			if i > 0 {
				w.WriteString(", ")
			}
			r.Expr.render(w, b, precNone, mode, col)
			if r.Alias != "" {
				w.WriteString(" AS ")
				w.WriteIdent(b, r.Alias)
			}
		}
	}
}
