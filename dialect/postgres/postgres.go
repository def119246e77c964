// Package postgres is the PostgreSQL dialect backend. It implements
// sqlgen.Backend, following the one-file-per-dialect layout and
// mapping-table-driven lookup of type names used across this module's
// dialect/ subpackages.
package postgres

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/sqlgen/sqlgen"
	"github.com/sqlgen/sqlgen/mapping"
)

// Backend is the PostgreSQL implementation of sqlgen.Backend.
type Backend struct {
	defaultVarcharLength int
}

// Option configures a Backend at construction time.
type Option func(*Backend)

// WithDefaultVarcharLength sets the VARCHAR length substituted for an
// unbounded ColTypeString column when no length is given.
func WithDefaultVarcharLength(n int) Option {
	return func(b *Backend) { b.defaultVarcharLength = n }
}

// New constructs a PostgreSQL backend.
func New(opts ...Option) *Backend {
	b := &Backend{defaultVarcharLength: 255}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Dialect() sqlgen.Dialect { return sqlgen.PostgresDialect }

func (b *Backend) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (b *Backend) BoolLiteral(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (b *Backend) BlobLiteral(data []byte) string {
	return "'\\x" + hex.EncodeToString(data) + "'"
}

func (b *Backend) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (b *Backend) SupportsReturning() bool { return true }

// RenderOrderExpr uses Postgres's native NULLS FIRST/LAST.
func (b *Backend) RenderOrderExpr(exprSQL string, dir sqlgen.Direction, nulls sqlgen.NullsOrder) string {
	sql := exprSQL + " " + dirKeyword(dir)
	switch nulls {
	case sqlgen.NullsFirst:
		sql += " NULLS FIRST"
	case sqlgen.NullsLast:
		sql += " NULLS LAST"
	}
	return sql
}

func dirKeyword(dir sqlgen.Direction) string {
	if dir == sqlgen.Desc {
		return "DESC"
	}
	return "ASC"
}

func (b *Backend) ColumnTypeSQL(col *sqlgen.ColumnDef) string {
	// SERIAL/BIGSERIAL fold auto-increment into the type name itself,
	// so AutoIncrementKeyword returns "" and this check must happen
	// before the general lookup.
	if col.HasSpec(sqlgen.SpecAutoIncrement) {
		switch col.Type.Kind {
		case sqlgen.ColTypeBigInt:
			return "bigserial"
		default:
			return "serial"
		}
	}
	key, ok := columnTypeKey(col)
	if ok {
		if name, ok := mapping.Lookup(mapping.TypeMap, "PostgreSQL", key); ok {
			return name
		}
	}
	return b.literalColumnType(col)
}

func columnTypeKey(col *sqlgen.ColumnDef) (string, bool) {
	switch col.Type.Kind {
	case sqlgen.ColTypeInteger:
		return "INT", true
	case sqlgen.ColTypeSmallInt:
		return "SMALLINT", true
	case sqlgen.ColTypeBigInt:
		return "BIGINT", true
	case sqlgen.ColTypeText:
		return "TEXT", true
	case sqlgen.ColTypeFloat:
		return "FLOAT", true
	case sqlgen.ColTypeDouble:
		return "DOUBLE", true
	case sqlgen.ColTypeBoolean:
		return "BOOLEAN", true
	case sqlgen.ColTypeBlob:
		return "BLOB", true
	case sqlgen.ColTypeDate:
		return "DATE", true
	case sqlgen.ColTypeDateTime:
		return "DATETIME", true
	case sqlgen.ColTypeJSON:
		return "JSON", true
	default:
		return "", false
	}
}

func (b *Backend) literalColumnType(col *sqlgen.ColumnDef) string {
	switch col.Type.Kind {
	case sqlgen.ColTypeString:
		if col.Type.Len > 0 {
			return "varchar(" + strconv.Itoa(col.Type.Len) + ")"
		}
		return "varchar(" + strconv.Itoa(b.defaultVarcharLength) + ")"
	case sqlgen.ColTypeDecimal:
		return "numeric(" + strconv.Itoa(col.Type.Precision) + "," + strconv.Itoa(col.Type.Scale) + ")"
	default:
		return "text"
	}
}

// AutoIncrementKeyword returns "" because Postgres folds auto-increment
// into the SERIAL/BIGSERIAL type name instead.
func (b *Backend) AutoIncrementKeyword() string { return "" }

func (b *Backend) SupportsCascadeDrop() bool { return true }

func (b *Backend) SupportsModifyColumn() bool { return true }

func (b *Backend) SupportsDropColumn() bool { return true }

func (b *Backend) RenderAlterOption(w *sqlgen.Writer, opt sqlgen.TableAlterOption) {
	switch opt.Kind() {
	case sqlgen.AlterAddColumn:
		w.WriteString("ADD COLUMN ")
		w.WriteString(sqlgen.RenderColumnDefSQL(b, opt.Column()))
	case sqlgen.AlterModifyColumn:
		col := opt.Column()
		w.WriteString("ALTER COLUMN ")
		w.WriteIdent(b, col.Name)
		w.WriteString(" TYPE ")
		w.WriteString(b.ColumnTypeSQL(&col))
		if def, ok := col.DefaultExprSQL(b); ok {
			w.WriteString(", ALTER COLUMN ")
			w.WriteIdent(b, col.Name)
			w.WriteString(" SET DEFAULT ")
			w.WriteString(def)
		}
	case sqlgen.AlterRenameColumn:
		w.WriteString("RENAME COLUMN ")
		w.WriteIdent(b, opt.OldName())
		w.WriteString(" TO ")
		w.WriteIdent(b, opt.NewName())
	case sqlgen.AlterDropColumn:
		w.WriteString("DROP COLUMN ")
		w.WriteIdent(b, opt.DroppedColumn())
	}
}
