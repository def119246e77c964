package sqlgen

// CondType discriminates an ALL (AND) node from an ANY (OR) node in the
// condition tree.
type CondType int

const (
	CondAll CondType = iota
	CondAny
)

// CondPart is anything that can appear as a member of a Cond tree: a leaf
// SimpleExpr or a nested Cond.
type CondPart interface {
	condRender(w *Writer, b Backend, parentPrec int, mode renderMode, col *Collector) (wrote bool)
}

// Cond is the condition tree node type: a possibly-negated ALL/ANY
// collection of CondPart members. Empty members and empty nested Conds
// are elided from the rendered output rather than producing an error.
type Cond struct {
	kind    CondType
	negated bool
	parts   []CondPart
}

// All builds an empty ALL (AND) condition node.
func All() *Cond { return &Cond{kind: CondAll} }

// Any builds an empty ANY (OR) condition node.
func Any() *Cond { return &Cond{kind: CondAny} }

// Add appends members, returning the receiver for chaining.
func (c *Cond) Add(parts ...CondPart) *Cond {
	c.parts = append(c.parts, parts...)
	return c
}

// AddExpr is a convenience wrapper for appending a SimpleExpr.
func (c *Cond) AddExpr(e SimpleExpr) *Cond {
	c.parts = append(c.parts, exprCondPart{e})
	return c
}

// Not negates the whole node: it renders as NOT (<node>) unless the node
// is empty, in which case negation is moot and nothing is written.
func (c *Cond) Not() *Cond {
	c.negated = !c.negated
	return c
}

func (c *Cond) isEmpty() bool {
	return c == nil || len(c.parts) == 0
}

func (c *Cond) precedence() int {
	if c.kind == CondAny {
		return precOr
	}
	return precAnd
}

// condRender implements CondPart for *Cond, allowing nesting. It writes
// nothing and reports wrote=false when the node (after eliding any empty
// children) has no content.
func (c *Cond) condRender(w *Writer, b Backend, parentPrec int, mode renderMode, col *Collector) bool {
	if c.isEmpty() {
		return false
	}

	joinWord := " AND "
	if c.kind == CondAny {
		joinWord = " OR "
	}
	myPrec := c.precedence()

	body := renderToString(func(bw *Writer) {
		first := true
		for _, p := range c.parts {
			frag := renderToString(func(fw *Writer) {
				p.condRender(fw, b, myPrec, mode, col)
			})
			if frag == "" {
				continue
			}
			if !first {
				bw.WriteString(joinWord)
			}
			bw.WriteString(frag)
			first = false
		}
	})
	if body == "" {
		return false
	}

	if c.negated {
		w.WriteString("NOT (")
		w.WriteString(body)
		w.WriteByte(')')
		return true
	}

	wrap := myPrec <= parentPrec && len(c.parts) > 1
	if wrap {
		w.WriteByte('(')
	}
	w.WriteString(body)
	if wrap {
		w.WriteByte(')')
	}
	return true
}

// exprCondPart adapts a leaf SimpleExpr to the CondPart interface.
type exprCondPart struct{ e SimpleExpr }

func (p exprCondPart) condRender(w *Writer, b Backend, parentPrec int, mode renderMode, col *Collector) bool {
	p.e.render(w, b, parentPrec, mode, col)
	return true
}

// renderCond renders a top-level *Cond (nil treated as empty, rendering
// nothing) at precedence precNone.
func renderCond(w *Writer, b Backend, c *Cond, mode renderMode, col *Collector) bool {
	if c == nil {
		return false
	}
	return c.condRender(w, b, precNone, mode, col)
}

// ---- legacy linear chain ----

type chainLink int

const (
	chainNone chainLink = iota
	chainAnd
	chainOr
)

// linearChain is the legacy linear AND/OR chain. Unlike Cond, it does not
// nest, and it panics the moment a caller mixes AND and OR within the
// same chain rather than silently picking an associativity.
type linearChain struct {
	exprs []SimpleExpr
	link  chainLink
}

func (h *linearChain) add(want chainLink, e SimpleExpr) {
	if len(h.exprs) > 0 {
		if h.link == chainNone {
			h.link = want
		} else if h.link != want {
			panic("sqlgen: cannot mix AND and OR in a ConditionHolder's legacy linear chain")
		}
	} else {
		h.link = want
	}
	h.exprs = append(h.exprs, e)
}

func (h *linearChain) isEmpty() bool { return h == nil || len(h.exprs) == 0 }

func (h *linearChain) render(w *Writer, b Backend, mode renderMode, col *Collector) bool {
	if h.isEmpty() {
		return false
	}
	joinWord := " AND "
	prec := precAnd
	if h.link == chainOr {
		joinWord = " OR "
		prec = precOr
	}
	for i := range h.exprs {
		if i > 0 {
			w.WriteString(joinWord)
		}
		h.exprs[i].render(w, b, prec, mode, col)
	}
	return true
}

// holderForm discriminates which of the two co-existing condition forms a
// ConditionHolder has committed to.
type holderForm int

const (
	holderUnset holderForm = iota
	holderTree
	holderLinear
)

// ConditionHolder is the field type every statement's where/having clause
// holds: either the tree form (*Cond, arbitrary nesting) or the legacy
// linear form (and_where/or_where chaining), never both. The first
// builder call used on a fresh holder commits it to that form for the
// statement's lifetime.
type ConditionHolder struct {
	form   holderForm
	tree   *Cond
	linear linearChain
}

// SetTree commits the holder to the tree form. Panics if the holder has
// already committed to the legacy linear form.
func (h *ConditionHolder) SetTree(c *Cond) {
	if h.form == holderLinear {
		panic("sqlgen: ConditionHolder already committed to the legacy linear form")
	}
	h.form = holderTree
	h.tree = c
}

// AndAlso commits the holder to the legacy linear form (if not already
// committed) and appends e with AND semantics.
func (h *ConditionHolder) AndAlso(e SimpleExpr) {
	h.commitLinear()
	h.linear.add(chainAnd, e)
}

// OrElse commits the holder to the legacy linear form (if not already
// committed) and appends e with OR semantics.
func (h *ConditionHolder) OrElse(e SimpleExpr) {
	h.commitLinear()
	h.linear.add(chainOr, e)
}

func (h *ConditionHolder) commitLinear() {
	if h.form == holderTree {
		panic("sqlgen: ConditionHolder already committed to the tree form")
	}
	h.form = holderLinear
}

func (h *ConditionHolder) isEmpty() bool {
	if h == nil {
		return true
	}
	switch h.form {
	case holderTree:
		return h.tree.isEmpty()
	case holderLinear:
		return h.linear.isEmpty()
	default:
		return true
	}
}

// render writes the holder's content with no leading keyword, reporting
// whether anything was written.
func (h *ConditionHolder) render(w *Writer, b Backend, mode renderMode, col *Collector) bool {
	if h == nil {
		return false
	}
	switch h.form {
	case holderTree:
		return renderCond(w, b, h.tree, mode, col)
	case holderLinear:
		return h.linear.render(w, b, mode, col)
	default:
		return false
	}
}
