package sqlgen

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ValueKind discriminates the closed set of SQL-compatible scalars a Value
// can carry. KindNull is SQL NULL; a value of any other kind always
// carries data (ValueFrom maps nil and nil pointers to Null()).
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	// KindOpaque holds a literal that is already valid SQL text: a
	// date-time formatted by NewTime, or a caller-supplied raw literal
	// (decimal, UUID, ...). NewJSON produces a KindString value. It is written
	// verbatim in inline mode and passed through unchanged to the
	// collector in placeholder mode.
	KindOpaque
)

// Value is a tagged union of every literal that can appear in SQL text.
// It is immutable once constructed and safe to share across goroutines.
type Value struct {
	kind      ValueKind
	isNull    bool
	boolVal   bool
	intVal    int64
	uintVal   uint64
	floatVal  float64
	floatBits int // 32 or 64, for round-trip formatting precision
	strVal    string
	bytesVal  []byte
}

// Null returns the SQL NULL value.
func Null() Value { return Value{kind: KindNull, isNull: true} }

func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

func Int(i int64) Value   { return Value{kind: KindInt, intVal: i} }
func Int8(i int8) Value   { return Int(int64(i)) }
func Int16(i int16) Value { return Int(int64(i)) }
func Int32(i int32) Value { return Int(int64(i)) }
func Int64(i int64) Value { return Int(i) }

func Uint(u uint64) Value   { return Value{kind: KindUint, uintVal: u} }
func Uint8(u uint8) Value   { return Uint(uint64(u)) }
func Uint16(u uint16) Value { return Uint(uint64(u)) }
func Uint32(u uint32) Value { return Uint(uint64(u)) }
func Uint64(u uint64) Value { return Uint(u) }

func Float32(f float32) Value {
	return Value{kind: KindFloat, floatVal: float64(f), floatBits: 32}
}
func Float64(f float64) Value {
	return Value{kind: KindFloat, floatVal: f, floatBits: 64}
}

func Str(s string) Value { return Value{kind: KindString, strVal: s} }

func Bytes(b []byte) Value { return Value{kind: KindBytes, bytesVal: b} }

// Opaque wraps text that is already valid SQL literal syntax (including any
// quoting the caller needs) and carries it through rendering unchanged.
func Opaque(text string) Value { return Value{kind: KindOpaque, strVal: text} }

// NewTime formats t as a quoted SQL datetime literal. The Value itself
// only ever sees an opaque, already-quoted string.
func NewTime(t time.Time) Value {
	return Opaque("'" + t.UTC().Format("2006-01-02 15:04:05") + "'")
}

// NewJSON marshals v and wraps the result as a quoted SQL string literal.
func NewJSON(v any) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, err
	}
	return Str(string(data)), nil
}

// IsNull reports whether the value carries no data.
func (v Value) IsNull() bool { return v.isNull || v.kind == KindNull }

// ValueFrom converts a host-language primitive into a Value. Builder
// methods accept `any` and call this to normalize the argument.
func ValueFrom(x any) Value {
	switch t := x.(type) {
	case Value:
		return t
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int8(t)
	case int16:
		return Int16(t)
	case int32:
		return Int32(t)
	case int64:
		return Int64(t)
	case uint:
		return Uint(uint64(t))
	case uint8:
		return Uint8(t)
	case uint16:
		return Uint16(t)
	case uint32:
		return Uint32(t)
	case uint64:
		return Uint64(t)
	case float32:
		return Float32(t)
	case float64:
		return Float64(t)
	case string:
		return Str(t)
	case []byte:
		return Bytes(t)
	case time.Time:
		return NewTime(t)
	case *string:
		if t == nil {
			return Null()
		}
		return Str(*t)
	case *int:
		if t == nil {
			return Null()
		}
		return Int(int64(*t))
	case *int64:
		if t == nil {
			return Null()
		}
		return Int64(*t)
	case *float64:
		if t == nil {
			return Null()
		}
		return Float64(*t)
	case *bool:
		if t == nil {
			return Null()
		}
		return Bool(*t)
	default:
		panic("sqlgen: unsupported value type")
	}
}

// inline writes the dialect-independent SQL text form of v: decimal
// numerics, single-quoted escaped strings, NULL when empty. Boolean and
// blob literals delegate to the backend since their spelling is
// dialect-specific.
func (v Value) inline(w *Writer, b Backend) {
	if v.IsNull() {
		w.WriteString("NULL")
		return
	}
	switch v.kind {
	case KindBool:
		w.WriteString(b.BoolLiteral(v.boolVal))
	case KindInt:
		w.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindUint:
		w.WriteString(strconv.FormatUint(v.uintVal, 10))
	case KindFloat:
		w.WriteString(strconv.FormatFloat(v.floatVal, 'g', -1, v.floatBits))
	case KindString:
		w.WriteString(quoteSQLString(v.strVal))
	case KindBytes:
		w.WriteString(b.BlobLiteral(v.bytesVal))
	case KindOpaque:
		w.WriteString(v.strVal)
	default:
		w.WriteString("NULL")
	}
}

// placeholderEmit pushes v onto col and writes the backend's parameter
// marker for the resulting 1-based position.
func (v Value) placeholderEmit(w *Writer, b Backend, col *Collector) {
	n := col.Push(v)
	w.WriteString(b.Placeholder(n))
}

func quoteSQLString(s string) string {
	var buf strings.Builder
	buf.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			buf.WriteString("''")
		} else {
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('\'')
	return buf.String()
}

// Collector is the external sink parameter values are pushed into during
// placeholder rendering.
type Collector struct {
	Values []Value
}

// Push appends v and returns its 1-based position in the collector.
func (c *Collector) Push(v Value) int {
	c.Values = append(c.Values, v)
	return len(c.Values)
}
