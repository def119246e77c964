package sqlgen

// SelectExpr is one entry of a SELECT list: an expression plus an
// optional alias.
type SelectExpr struct {
	Expr  SimpleExpr
	Alias string
}

// OrderExpr is one ORDER BY entry.
type OrderExpr struct {
	Expr  SimpleExpr
	Dir   Direction
	Nulls NullsOrder
}

// JoinKind discriminates the five join forms.
type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

func (k JoinKind) sql() string {
	switch k {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	case JoinCross:
		return "CROSS JOIN"
	default:
		return "INNER JOIN"
	}
}

// JoinClause is one join entry of a SELECT's FROM clause.
type JoinClause struct {
	Kind JoinKind
	Ref  TableRef
	On   *Cond
}

// UnionKind discriminates the set-operation keyword preceding a union
// member.
type UnionKind int

const (
	UnionDistinct UnionKind = iota
	UnionAll
	Intersect
	Except
)

func (k UnionKind) sql() string {
	switch k {
	case UnionAll:
		return "UNION ALL"
	case Intersect:
		return "INTERSECT"
	case Except:
		return "EXCEPT"
	default:
		return "UNION"
	}
}

type unionMember struct {
	kind UnionKind
	stmt *SelectStatement
}

// LockMode is the optional trailing row-locking clause.
type LockMode int

const (
	LockNone LockMode = iota
	LockForUpdate
	LockForShare
)

func (m LockMode) sql() string {
	switch m {
	case LockForUpdate:
		return "FOR UPDATE"
	case LockForShare:
		return "FOR SHARE"
	default:
		return ""
	}
}

// SelectStatement is the SELECT statement AST.
type SelectStatement struct {
	distinct bool
	selects  []SelectExpr
	from     []TableRef
	joins    []JoinClause
	where    ConditionHolder
	groupBy  []SimpleExpr
	having   ConditionHolder
	orderBy  []OrderExpr
	limit    *Value
	offset   *Value
	lock     LockMode
	unions   []unionMember
}

// NewSelect constructs a blank SELECT statement.
func NewSelect() *SelectStatement { return &SelectStatement{} }

func (s *SelectStatement) Distinct() *SelectStatement {
	s.distinct = true
	return s
}

// Select appends expressions (columns, literals, function calls, ...) to
// the select list with no alias.
func (s *SelectStatement) Select(exprs ...any) *SelectStatement {
	for _, e := range exprs {
		s.selects = append(s.selects, SelectExpr{Expr: Val(e)})
	}
	return s
}

// SelectAs appends a single aliased select-list entry.
func (s *SelectStatement) SelectAs(expr any, alias string) *SelectStatement {
	s.selects = append(s.selects, SelectExpr{Expr: Val(expr), Alias: alias})
	return s
}

func (s *SelectStatement) From(ref TableRef) *SelectStatement {
	s.from = append(s.from, ref)
	return s
}

// FromTable is a convenience wrapper over From(Table(name)).
func (s *SelectStatement) FromTable(name string) *SelectStatement {
	return s.From(Table(name))
}

// FromSubquery appends a derived-table source; alias is mandatory.
func (s *SelectStatement) FromSubquery(sub *SelectStatement, alias string) *SelectStatement {
	return s.From(FromSubquery(sub, alias))
}

func (s *SelectStatement) join(kind JoinKind, ref TableRef, on *Cond) *SelectStatement {
	s.joins = append(s.joins, JoinClause{Kind: kind, Ref: ref, On: on})
	return s
}

func (s *SelectStatement) InnerJoin(ref TableRef, on *Cond) *SelectStatement { return s.join(JoinInner, ref, on) }
func (s *SelectStatement) LeftJoin(ref TableRef, on *Cond) *SelectStatement  { return s.join(JoinLeft, ref, on) }
func (s *SelectStatement) RightJoin(ref TableRef, on *Cond) *SelectStatement { return s.join(JoinRight, ref, on) }
func (s *SelectStatement) FullJoin(ref TableRef, on *Cond) *SelectStatement  { return s.join(JoinFull, ref, on) }
func (s *SelectStatement) CrossJoin(ref TableRef) *SelectStatement          { return s.join(JoinCross, ref, nil) }

// Where replaces the statement's where-holder with the tree form.
func (s *SelectStatement) Where(c *Cond) *SelectStatement {
	s.where.SetTree(c)
	return s
}

// AndWhere appends e to the legacy linear where-chain with AND semantics.
func (s *SelectStatement) AndWhere(e SimpleExpr) *SelectStatement {
	s.where.AndAlso(e)
	return s
}

// OrWhere appends e to the legacy linear where-chain with OR semantics.
func (s *SelectStatement) OrWhere(e SimpleExpr) *SelectStatement {
	s.where.OrElse(e)
	return s
}

func (s *SelectStatement) GroupBy(exprs ...any) *SelectStatement {
	for _, e := range exprs {
		s.groupBy = append(s.groupBy, Val(e))
	}
	return s
}

func (s *SelectStatement) Having(c *Cond) *SelectStatement {
	s.having.SetTree(c)
	return s
}

func (s *SelectStatement) AndHaving(e SimpleExpr) *SelectStatement {
	s.having.AndAlso(e)
	return s
}

func (s *SelectStatement) OrderByExpr(expr any, dir Direction) *SelectStatement {
	s.orderBy = append(s.orderBy, OrderExpr{Expr: Val(expr), Dir: dir})
	return s
}

func (s *SelectStatement) OrderByExprNulls(expr any, dir Direction, nulls NullsOrder) *SelectStatement {
	s.orderBy = append(s.orderBy, OrderExpr{Expr: Val(expr), Dir: dir, Nulls: nulls})
	return s
}

func (s *SelectStatement) Limit(n uint64) *SelectStatement {
	v := Uint(n)
	s.limit = &v
	return s
}

func (s *SelectStatement) Offset(n uint64) *SelectStatement {
	v := Uint(n)
	s.offset = &v
	return s
}

func (s *SelectStatement) LockMode(m LockMode) *SelectStatement {
	s.lock = m
	return s
}

func (s *SelectStatement) Union(other *SelectStatement) *SelectStatement {
	s.unions = append(s.unions, unionMember{kind: UnionDistinct, stmt: other})
	return s
}

func (s *SelectStatement) UnionAll(other *SelectStatement) *SelectStatement {
	s.unions = append(s.unions, unionMember{kind: UnionAll, stmt: other})
	return s
}

func (s *SelectStatement) IntersectWith(other *SelectStatement) *SelectStatement {
	s.unions = append(s.unions, unionMember{kind: Intersect, stmt: other})
	return s
}

func (s *SelectStatement) ExceptWith(other *SelectStatement) *SelectStatement {
	s.unions = append(s.unions, unionMember{kind: Except, stmt: other})
	return s
}

// ToSQL renders the statement with inline literals.
func (s *SelectStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) { renderSelect(w, b, s, nil) })
}

// Build renders the statement with placeholders, returning the SQL and the
// ordered collected values.
func (s *SelectStatement) Build(b Backend) (string, []Value) {
	col := &Collector{}
	sql := renderToString(func(w *Writer) { renderSelect(w, b, s, col) })
	return sql, col.Values
}

// BuildCollect renders with placeholders into a caller-supplied collector.
func (s *SelectStatement) BuildCollect(b Backend, col *Collector) string {
	return renderToString(func(w *Writer) { renderSelect(w, b, s, col) })
}

func selectMode(col *Collector) renderMode {
	if col == nil {
		return modeInline
	}
	return modePlaceholder
}

func renderSelect(w *Writer, b Backend, s *SelectStatement, col *Collector) {
	mode := selectMode(col)

	w.WriteString("SELECT ")
	if s.distinct {
		w.WriteString("DISTINCT ")
	}
	for i, se := range s.selects {
		if i > 0 {
			w.WriteString(", ")
		}
		se.Expr.render(w, b, precNone, mode, col)
		if se.Alias != "" {
			w.WriteString(" AS ")
			w.WriteIdent(b, se.Alias)
		}
	}

	if len(s.from) > 0 {
		w.WriteString(" FROM ")
		for i, f := range s.from {
			if i > 0 {
				w.WriteString(", ")
			}
			f.render(w, b, mode, col)
		}
	}

	for _, j := range s.joins {
		w.WriteByte(' ')
		w.WriteString(j.Kind.sql())
		w.WriteByte(' ')
		j.Ref.render(w, b, mode, col)
		if j.Kind != JoinCross && j.On != nil {
			w.WriteString(" ON ")
			renderCond(w, b, j.On, mode, col)
		}
	}

	whereSQL := renderToString(func(ww *Writer) { s.where.render(ww, b, mode, col) })
	if whereSQL != "" {
		w.WriteString(" WHERE ")
		w.WriteString(whereSQL)
	}

	if len(s.groupBy) > 0 {
		w.WriteString(" GROUP BY ")
		for i := range s.groupBy {
			if i > 0 {
				w.WriteString(", ")
			}
			s.groupBy[i].render(w, b, precNone, mode, col)
		}
	}

	havingSQL := renderToString(func(hw *Writer) { s.having.render(hw, b, mode, col) })
	if havingSQL != "" {
		w.WriteString(" HAVING ")
		w.WriteString(havingSQL)
	}

	for _, u := range s.unions {
		w.WriteByte(' ')
		w.WriteString(u.kind.sql())
		w.WriteByte(' ')
		renderSelect(w, b, u.stmt, col)
	}

	if len(s.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		renderOrderList(w, b, s.orderBy, mode, col)
	}

	if s.limit != nil {
		w.WriteString(" LIMIT ")
		s.limit.inline(w, b)
	}
	if s.offset != nil {
		w.WriteString(" OFFSET ")
		s.offset.inline(w, b)
	}

	if lockSQL := s.lock.sql(); lockSQL != "" {
		w.WriteByte(' ')
		w.WriteString(lockSQL)
	}
}

// renderOrderList renders a comma-joined ORDER BY entry list, expanding
// each entry per the backend's null-ordering hook.
func renderOrderList(w *Writer, b Backend, orders []OrderExpr, mode renderMode, col *Collector) {
	for i, o := range orders {
		if i > 0 {
			w.WriteString(", ")
		}
		exprSQL := renderToString(func(ow *Writer) { o.Expr.render(ow, b, precNone, mode, col) })
		w.WriteString(b.RenderOrderExpr(exprSQL, o.Dir, o.Nulls))
	}
}
