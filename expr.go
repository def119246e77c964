package sqlgen

import (
	"strings"

	"github.com/sqlgen/sqlgen/mapping"
)

// Precedence levels, tightest-binds-last:
// OR < AND < NOT < comparison < add/sub < mul/div < unary < atom.
const (
	precNone       = 0
	precOr         = 1
	precAnd        = 2
	precNot        = 3
	precComparison = 4
	precAddSub     = 5
	precMulDiv     = 6
	precUnary      = 7
	precAtom       = 8
)

// BinOper tags a binary SimpleExpr node.
type BinOper int

const (
	OpAdd BinOper = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpGt
	OpLt
	OpGte
	OpLte
	OpLike
	OpNotLike
	OpIn
	OpNotIn
	OpAnd
	OpOr
)

func (op BinOper) precedence() int {
	switch op {
	case OpOr:
		return precOr
	case OpAnd:
		return precAnd
	case OpAdd, OpSub:
		return precAddSub
	case OpMul, OpDiv:
		return precMulDiv
	default: // comparisons: Eq, Ne, Gt, Lt, Gte, Lte, Like, NotLike, In, NotIn
		return precComparison
	}
}

func (op BinOper) token() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "="
	case OpNe:
		return "<>"
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpLike:
		return "LIKE"
	case OpNotLike:
		return "NOT LIKE"
	case OpIn:
		return "IN"
	case OpNotIn:
		return "NOT IN"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "?"
	}
}

type exprKind int

const (
	exprColumn exprKind = iota
	exprAsterisk
	exprTableAsterisk
	exprValueNode
	exprTuple
	exprSubQuery
	exprBinary
	exprUnaryNot
	exprUnaryNeg
	exprIsNull
	exprIsNotNull
	exprFunc
	exprBetween
	exprRaw
	exprWindow
	exprConcat
)

// ColumnRef is an optionally table-qualified column reference.
type ColumnRef struct {
	table string
	name  string
}

// SimpleExpr is the recursive expression AST node. It is a value type:
// every non-literal node owns its children outright, with no sharing and
// no cycles, and is immutable once built.
type SimpleExpr struct {
	kind exprKind

	column ColumnRef
	value  Value

	items []SimpleExpr // tuple members, function args, [lo, hi] for BETWEEN

	sub *SelectStatement

	left, right *SimpleExpr
	op          BinOper

	operand *SimpleExpr // NOT / unary-minus / IS NULL / IS NOT NULL / BETWEEN target
	notFlag bool        // NOT BETWEEN / NOT IN already folded into op where possible

	funcName string

	raw     string
	rawArgs []Value

	windowPartition []SimpleExpr
	windowOrder     []OrderExpr
}

func cp(e SimpleExpr) *SimpleExpr { v := e; return &v }

// ---- leaf constructors ----

// Column references an unqualified column.
func Column(name string) SimpleExpr {
	return SimpleExpr{kind: exprColumn, column: ColumnRef{name: name}}
}

// TableColumn references a column qualified by its table.
func TableColumn(table, name string) SimpleExpr {
	return SimpleExpr{kind: exprColumn, column: ColumnRef{table: table, name: name}}
}

// Asterisk is the bare "*" select expression.
func Asterisk() SimpleExpr { return SimpleExpr{kind: exprAsterisk} }

// TableAsterisk is "<table>.*".
func TableAsterisk(table string) SimpleExpr {
	return SimpleExpr{kind: exprTableAsterisk, column: ColumnRef{table: table}}
}

// Val wraps a host value (or an already-built SimpleExpr/*SelectStatement)
// as an expression node.
func Val(v any) SimpleExpr {
	switch t := v.(type) {
	case SimpleExpr:
		return t
	case *SelectStatement:
		return SubQuery(t)
	default:
		return SimpleExpr{kind: exprValueNode, value: ValueFrom(v)}
	}
}

// SubQuery wraps a SELECT statement for use as a scalar expression.
func SubQuery(s *SelectStatement) SimpleExpr {
	return SimpleExpr{kind: exprSubQuery, sub: s}
}

// TupleOf builds a parenthesized tuple of expressions.
func TupleOf(vs ...any) SimpleExpr {
	items := make([]SimpleExpr, len(vs))
	for i, v := range vs {
		items[i] = Val(v)
	}
	return SimpleExpr{kind: exprTuple, items: items}
}

// Cust builds a raw, unescaped SQL fragment (an "I know what I'm doing"
// escape hatch), optionally with bound placeholder arguments rendered at
// the "?" markers inside sql, independent of the surrounding dialect's own
// marker spelling. They are positional only.
func Cust(sql string, args ...any) SimpleExpr {
	vals := make([]Value, len(args))
	for i, a := range args {
		vals[i] = ValueFrom(a)
	}
	return SimpleExpr{kind: exprRaw, raw: sql, rawArgs: vals}
}

// Func builds a named function call expression, e.g. Func("COALESCE", a, b).
func Func(name string, args ...any) SimpleExpr {
	items := make([]SimpleExpr, len(args))
	for i, a := range args {
		items[i] = Val(a)
	}
	return SimpleExpr{kind: exprFunc, funcName: name, items: items}
}

func Max(e any) SimpleExpr   { return Func("MAX", e) }
func Min(e any) SimpleExpr   { return Func("MIN", e) }
func Avg(e any) SimpleExpr   { return Func("AVG", e) }
func Sum(e any) SimpleExpr   { return Func("SUM", e) }
func Count(e any) SimpleExpr { return Func("COUNT", e) }

// CountAll builds COUNT(*).
func CountAll() SimpleExpr { return Func("COUNT", Asterisk()) }

// IfNull builds IFNULL/COALESCE-style fallback: IFNULL(a, b).
func IfNull(a, b any) SimpleExpr { return Func("IFNULL", a, b) }

// CastAs builds CAST(expr AS typeName).
func CastAs(e any, typeName string) SimpleExpr {
	return SimpleExpr{kind: exprFunc, funcName: "CAST", items: []SimpleExpr{Val(e)}, raw: typeName}
}

// WindowFunc builds a window-function call: name(args...) OVER (PARTITION
// BY partitionBy ORDER BY orderBy).
func WindowFunc(name string, args []any, partitionBy []SimpleExpr, orderBy []OrderExpr) SimpleExpr {
	items := make([]SimpleExpr, len(args))
	for i, a := range args {
		items[i] = Val(a)
	}
	return SimpleExpr{
		kind:            exprWindow,
		funcName:        name,
		items:           items,
		windowPartition: partitionBy,
		windowOrder:     orderBy,
	}
}

// Concat builds a string-concatenation expression. Its rendering differs
// by dialect (Postgres/SQLite use the "||" operator, MySQL uses the
// CONCAT function), looked up from mapping.OperatorMap rather than
// hard-coded per backend.
func Concat(parts ...any) SimpleExpr {
	items := make([]SimpleExpr, len(parts))
	for i, p := range parts {
		items[i] = Val(p)
	}
	return SimpleExpr{kind: exprConcat, items: items}
}

// EqualsColumns builds the "a.x = b.y" shorthand equals(table, col).
func EqualsColumns(leftTable, leftCol, rightTable, rightCol string) SimpleExpr {
	return TableColumn(leftTable, leftCol).Eq(TableColumn(rightTable, rightCol))
}

// ---- binary/unary builder methods (chainable) ----

func binary(left SimpleExpr, op BinOper, right SimpleExpr) SimpleExpr {
	return SimpleExpr{kind: exprBinary, left: cp(left), op: op, right: cp(right)}
}

func (e SimpleExpr) Eq(other any) SimpleExpr  { return binary(e, OpEq, Val(other)) }
func (e SimpleExpr) Ne(other any) SimpleExpr  { return binary(e, OpNe, Val(other)) }
func (e SimpleExpr) Gt(other any) SimpleExpr  { return binary(e, OpGt, Val(other)) }
func (e SimpleExpr) Lt(other any) SimpleExpr  { return binary(e, OpLt, Val(other)) }
func (e SimpleExpr) Gte(other any) SimpleExpr { return binary(e, OpGte, Val(other)) }
func (e SimpleExpr) Lte(other any) SimpleExpr { return binary(e, OpLte, Val(other)) }

func (e SimpleExpr) Add(other any) SimpleExpr { return binary(e, OpAdd, Val(other)) }
func (e SimpleExpr) Sub(other any) SimpleExpr { return binary(e, OpSub, Val(other)) }
func (e SimpleExpr) Mul(other any) SimpleExpr { return binary(e, OpMul, Val(other)) }
func (e SimpleExpr) Div(other any) SimpleExpr { return binary(e, OpDiv, Val(other)) }

func (e SimpleExpr) And(other any) SimpleExpr { return binary(e, OpAnd, Val(other)) }
func (e SimpleExpr) Or(other any) SimpleExpr  { return binary(e, OpOr, Val(other)) }

func (e SimpleExpr) Like(pattern any) SimpleExpr    { return binary(e, OpLike, Val(pattern)) }
func (e SimpleExpr) NotLike(pattern any) SimpleExpr { return binary(e, OpNotLike, Val(pattern)) }

// In builds "e IN (v1, v2, ...)".
func (e SimpleExpr) In(values ...any) SimpleExpr {
	return binary(e, OpIn, TupleOf(values...))
}

// NotIn builds "e NOT IN (v1, v2, ...)".
func (e SimpleExpr) NotIn(values ...any) SimpleExpr {
	return binary(e, OpNotIn, TupleOf(values...))
}

// InSubquery builds "e IN (<select>)".
func (e SimpleExpr) InSubquery(s *SelectStatement) SimpleExpr {
	return binary(e, OpIn, SubQuery(s))
}

// NotInSubquery builds "e NOT IN (<select>)".
func (e SimpleExpr) NotInSubquery(s *SelectStatement) SimpleExpr {
	return binary(e, OpNotIn, SubQuery(s))
}

// Not negates a condition-shaped expression: NOT (e).
func (e SimpleExpr) Not() SimpleExpr {
	return SimpleExpr{kind: exprUnaryNot, operand: cp(e)}
}

// Neg builds unary minus: -e.
func (e SimpleExpr) Neg() SimpleExpr {
	return SimpleExpr{kind: exprUnaryNeg, operand: cp(e)}
}

// IsNull builds "e IS NULL".
func (e SimpleExpr) IsNull() SimpleExpr {
	return SimpleExpr{kind: exprIsNull, operand: cp(e)}
}

// IsNotNull builds "e IS NOT NULL".
func (e SimpleExpr) IsNotNull() SimpleExpr {
	return SimpleExpr{kind: exprIsNotNull, operand: cp(e)}
}

// Between builds "e BETWEEN lo AND hi".
func (e SimpleExpr) Between(lo, hi any) SimpleExpr {
	return SimpleExpr{kind: exprBetween, operand: cp(e), items: []SimpleExpr{Val(lo), Val(hi)}}
}

// NotBetween builds "e NOT BETWEEN lo AND hi".
func (e SimpleExpr) NotBetween(lo, hi any) SimpleExpr {
	return SimpleExpr{kind: exprBetween, operand: cp(e), items: []SimpleExpr{Val(lo), Val(hi)}, notFlag: true}
}

// As attaches an alias, producing a SelectExpr for use in a select list.
func (e SimpleExpr) As(alias string) SelectExpr {
	return SelectExpr{Expr: e, Alias: alias}
}

// ---- precedence / rendering ----

func (e *SimpleExpr) precedence() int {
	switch e.kind {
	case exprBinary:
		return e.op.precedence()
	case exprUnaryNot:
		return precNot
	case exprUnaryNeg:
		return precUnary
	case exprIsNull, exprIsNotNull, exprBetween:
		return precComparison
	default:
		return precAtom
	}
}

// isOperator reports whether the node's own top-level form is an
// operator application, as opposed to an atom (literal, column, function
// call, tuple, sub-query, raw fragment), all of which are
// self-parenthesizing and never need extra parens.
func (e *SimpleExpr) isOperator() bool {
	switch e.kind {
	case exprBinary, exprUnaryNot, exprUnaryNeg, exprIsNull, exprIsNotNull, exprBetween:
		return true
	default:
		return false
	}
}

// render is the recursive-descent renderer parameterized by the parent's
// precedence. parentPrec governs only whether e itself is wrapped in
// parens; e's own precedence governs how its children are wrapped.
func (e *SimpleExpr) render(w *Writer, b Backend, parentPrec int, mode renderMode, col *Collector) {
	prec := e.precedence()
	wrap := e.isOperator() && prec <= parentPrec
	if wrap {
		w.WriteByte('(')
	}
	switch e.kind {
	case exprColumn:
		if e.column.table != "" {
			w.WriteIdent(b, e.column.table)
			w.WriteByte('.')
		}
		w.WriteIdent(b, e.column.name)
	case exprAsterisk:
		w.WriteByte('*')
	case exprTableAsterisk:
		w.WriteIdent(b, e.column.table)
		w.WriteString(".*")
	case exprValueNode:
		if mode == modePlaceholder {
			e.value.placeholderEmit(w, b, col)
		} else {
			e.value.inline(w, b)
		}
	case exprTuple:
		w.WriteByte('(')
		for i := range e.items {
			if i > 0 {
				w.WriteString(", ")
			}
			e.items[i].render(w, b, precNone, mode, col)
		}
		w.WriteByte(')')
	case exprSubQuery:
		w.WriteByte('(')
		renderSelect(w, b, e.sub, col)
		w.WriteByte(')')
	case exprBinary:
		e.left.render(w, b, prec, mode, col)
		w.WriteByte(' ')
		w.WriteString(e.op.token())
		w.WriteByte(' ')
		e.right.render(w, b, prec, mode, col)
	case exprUnaryNot:
		w.WriteString("NOT ")
		e.operand.render(w, b, prec, mode, col)
	case exprUnaryNeg:
		w.WriteByte('-')
		e.operand.render(w, b, prec, mode, col)
	case exprIsNull:
		e.operand.render(w, b, prec, mode, col)
		w.WriteString(" IS NULL")
	case exprIsNotNull:
		e.operand.render(w, b, prec, mode, col)
		w.WriteString(" IS NOT NULL")
	case exprBetween:
		e.operand.render(w, b, prec, mode, col)
		if e.notFlag {
			w.WriteString(" NOT BETWEEN ")
		} else {
			w.WriteString(" BETWEEN ")
		}
		e.items[0].render(w, b, precComparison, mode, col)
		w.WriteString(" AND ")
		e.items[1].render(w, b, precComparison, mode, col)
	case exprFunc:
		if e.funcName == "CAST" {
			w.WriteString("CAST(")
			e.items[0].render(w, b, precNone, mode, col)
			w.WriteString(" AS ")
			w.WriteString(e.raw)
			w.WriteByte(')')
			break
		}
		w.WriteString(e.funcName)
		w.WriteByte('(')
		for i := range e.items {
			if i > 0 {
				w.WriteString(", ")
			}
			e.items[i].render(w, b, precNone, mode, col)
		}
		w.WriteByte(')')
	case exprWindow:
		w.WriteString(e.funcName)
		w.WriteByte('(')
		for i := range e.items {
			if i > 0 {
				w.WriteString(", ")
			}
			e.items[i].render(w, b, precNone, mode, col)
		}
		w.WriteString(") OVER (")
		wrote := false
		if len(e.windowPartition) > 0 {
			w.WriteString("PARTITION BY ")
			for i := range e.windowPartition {
				if i > 0 {
					w.WriteString(", ")
				}
				e.windowPartition[i].render(w, b, precNone, mode, col)
			}
			wrote = true
		}
		if len(e.windowOrder) > 0 {
			if wrote {
				w.WriteByte(' ')
			}
			w.WriteString("ORDER BY ")
			renderOrderList(w, b, e.windowOrder, mode, col)
		}
		w.WriteByte(')')
	case exprRaw:
		renderRawFragment(w, b, e.raw, e.rawArgs, mode, col)
	case exprConcat:
		tok, _ := mapping.Lookup(mapping.OperatorMap, b.Dialect().String(), "CONCAT")
		if tok == "CONCAT" {
			w.WriteString("CONCAT(")
			for i := range e.items {
				if i > 0 {
					w.WriteString(", ")
				}
				e.items[i].render(w, b, precNone, mode, col)
			}
			w.WriteByte(')')
			break
		}
		w.WriteByte('(')
		for i := range e.items {
			if i > 0 {
				w.WriteByte(' ')
				w.WriteString(tok)
				w.WriteByte(' ')
			}
			e.items[i].render(w, b, precNone, mode, col)
		}
		w.WriteByte(')')
	}
	if wrap {
		w.WriteByte(')')
	}
}

// renderRawFragment splices a Cust() fragment's own "?" markers for its
// bound arguments, independent of the backend's own placeholder spelling.
func renderRawFragment(w *Writer, b Backend, raw string, args []Value, mode renderMode, col *Collector) {
	if len(args) == 0 {
		w.WriteString(raw)
		return
	}
	parts := strings.Split(raw, "?")
	for i, p := range parts {
		w.WriteString(p)
		if i < len(args) {
			if mode == modePlaceholder {
				args[i].placeholderEmit(w, b, col)
			} else {
				args[i].inline(w, b)
			}
		}
	}
}

func renderExprString(b Backend, e SimpleExpr, mode renderMode, col *Collector) string {
	return renderToString(func(w *Writer) { e.render(w, b, precNone, mode, col) })
}
