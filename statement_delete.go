package sqlgen

// DeleteStatement is the DELETE statement AST.
type DeleteStatement struct {
	table     TableRef
	where     ConditionHolder
	orderBy   []OrderExpr
	limit     *Value
	returning []SelectExpr
}

// NewDelete constructs a blank DELETE statement.
func NewDelete() *DeleteStatement { return &DeleteStatement{} }

func (s *DeleteStatement) FromTable(ref TableRef) *DeleteStatement {
	s.table = ref
	return s
}

// From is a convenience wrapper over FromTable(Table(name)).
func (s *DeleteStatement) From(name string) *DeleteStatement {
	return s.FromTable(Table(name))
}

func (s *DeleteStatement) Where(c *Cond) *DeleteStatement {
	s.where.SetTree(c)
	return s
}

func (s *DeleteStatement) AndWhere(e SimpleExpr) *DeleteStatement {
	s.where.AndAlso(e)
	return s
}

func (s *DeleteStatement) OrWhere(e SimpleExpr) *DeleteStatement {
	s.where.OrElse(e)
	return s
}

func (s *DeleteStatement) OrderByExpr(expr any, dir Direction) *DeleteStatement {
	s.orderBy = append(s.orderBy, OrderExpr{Expr: Val(expr), Dir: dir})
	return s
}

func (s *DeleteStatement) Limit(n uint64) *DeleteStatement {
	v := Uint(n)
	s.limit = &v
	return s
}

func (s *DeleteStatement) Returning(exprs ...any) *DeleteStatement {
	for _, e := range exprs {
		s.returning = append(s.returning, SelectExpr{Expr: Val(e)})
	}
	return s
}

func (s *DeleteStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) { renderDelete(w, b, s, nil) })
}

func (s *DeleteStatement) Build(b Backend) (string, []Value) {
	col := &Collector{}
	sql := renderToString(func(w *Writer) { renderDelete(w, b, s, col) })
	return sql, col.Values
}

func (s *DeleteStatement) BuildCollect(b Backend, col *Collector) string {
	return renderToString(func(w *Writer) { renderDelete(w, b, s, col) })
}

func renderDelete(w *Writer, b Backend, s *DeleteStatement, col *Collector) {
	mode := selectMode(col)

	w.WriteString("DELETE FROM ")
	w.WriteIdent(b, s.table.name())

	whereSQL := renderToString(func(ww *Writer) { s.where.render(ww, b, mode, col) })
	if whereSQL != "" {
		w.WriteString(" WHERE ")
		w.WriteString(whereSQL)
	}

	if len(s.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		renderOrderList(w, b, s.orderBy, mode, col)
	}

	if s.limit != nil {
		w.WriteString(" LIMIT ")
		s.limit.inline(w, b)
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
