package sqlgen

// assignment is one "<column> = <expr>" entry of an UPDATE's SET list.
type assignment struct {
	column string
	value  SimpleExpr
}

// UpdateStatement is the UPDATE statement AST.
type UpdateStatement struct {
	table       TableRef
	assignments []assignment
	where       ConditionHolder
	orderBy     []OrderExpr
	limit       *Value
	returning   []SelectExpr
}

// NewUpdate constructs a blank UPDATE statement.
func NewUpdate() *UpdateStatement { return &UpdateStatement{} }

func (s *UpdateStatement) Table(ref TableRef) *UpdateStatement {
	s.table = ref
	return s
}

// TableName is a convenience wrapper over Table(Table(name)).
func (s *UpdateStatement) TableName(name string) *UpdateStatement {
	return s.Table(Table(name))
}

// Set appends one "column = value" assignment, in insertion order.
func (s *UpdateStatement) Set(column string, value any) *UpdateStatement {
	s.assignments = append(s.assignments, assignment{column: column, value: Val(value)})
	return s
}

func (s *UpdateStatement) Where(c *Cond) *UpdateStatement {
	s.where.SetTree(c)
	return s
}

func (s *UpdateStatement) AndWhere(e SimpleExpr) *UpdateStatement {
	s.where.AndAlso(e)
	return s
}

func (s *UpdateStatement) OrWhere(e SimpleExpr) *UpdateStatement {
	s.where.OrElse(e)
	return s
}

func (s *UpdateStatement) OrderByExpr(expr any, dir Direction) *UpdateStatement {
	s.orderBy = append(s.orderBy, OrderExpr{Expr: Val(expr), Dir: dir})
	return s
}

func (s *UpdateStatement) Limit(n uint64) *UpdateStatement {
	v := Uint(n)
	s.limit = &v
	return s
}

func (s *UpdateStatement) Returning(exprs ...any) *UpdateStatement {
	for _, e := range exprs {
		s.returning = append(s.returning, SelectExpr{Expr: Val(e)})
	}
	return s
}

func (s *UpdateStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) { renderUpdate(w, b, s, nil) })
}

func (s *UpdateStatement) Build(b Backend) (string, []Value) {
	col := &Collector{}
	sql := renderToString(func(w *Writer) { renderUpdate(w, b, s, col) })
	return sql, col.Values
}

func (s *UpdateStatement) BuildCollect(b Backend, col *Collector) string {
	return renderToString(func(w *Writer) { renderUpdate(w, b, s, col) })
}

func renderUpdate(w *Writer, b Backend, s *UpdateStatement, col *Collector) {
	mode := selectMode(col)

	w.WriteString("UPDATE ")
	w.WriteIdent(b, s.table.name())
	w.WriteString(" SET ")
	for i, a := range s.assignments {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteIdent(b, a.column)
		w.WriteString(" = ")
		a.value.render(w, b, precNone, mode, col)
	}

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
