// Package mysql is the MySQL dialect backend. It implements sqlgen.Backend,
// following the one-file-per-dialect layout and mapping-table-driven
// lookup of type names used across this module's dialect/ subpackages.
package mysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlgen/sqlgen"
	"github.com/sqlgen/sqlgen/mapping"
)

// Backend is the MySQL implementation of sqlgen.Backend.
type Backend struct {
	defaultVarcharLength int
}

// Option configures a Backend at construction time.
type Option func(*Backend)

// WithDefaultVarcharLength sets the VARCHAR length substituted for an
// ColTypeString column that carries no explicit length (default 255).
func WithDefaultVarcharLength(n int) Option {
	return func(b *Backend) { b.defaultVarcharLength = n }
}

// New constructs a MySQL backend.
func New(opts ...Option) *Backend {
	b := &Backend{defaultVarcharLength: 255}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Dialect() sqlgen.Dialect { return sqlgen.MySQLDialect }

func (b *Backend) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (b *Backend) BoolLiteral(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (b *Backend) BlobLiteral(data []byte) string {
	return "X'" + fmt.Sprintf("%X", data) + "'"
}

func (b *Backend) Placeholder(n int) string { return "?" }

func (b *Backend) SupportsReturning() bool { return false }

// RenderOrderExpr emulates NULLS FIRST/LAST (unsupported by MySQL) by
// emitting an extra "<expr> IS NULL" pre-sort key.
func (b *Backend) RenderOrderExpr(exprSQL string, dir sqlgen.Direction, nulls sqlgen.NullsOrder) string {
	dirSQL := dirKeyword(dir)
	switch nulls {
	case sqlgen.NullsFirst:
		return exprSQL + " IS NULL DESC, " + exprSQL + " " + dirSQL
	case sqlgen.NullsLast:
		return exprSQL + " IS NULL ASC, " + exprSQL + " " + dirSQL
	default:
		return exprSQL + " " + dirSQL
	}
}

func dirKeyword(dir sqlgen.Direction) string {
	if dir == sqlgen.Desc {
		return "DESC"
	}
	return "ASC"
}

func (b *Backend) ColumnTypeSQL(col *sqlgen.ColumnDef) string {
	key, ok := columnTypeKey(col)
	if ok {
		if name, ok := mapping.Lookup(mapping.TypeMap, "MySQL", key); ok {
			return name
		}
	}
	return b.literalColumnType(col)
}

// columnTypeKey maps a ColumnTypeKind to the mapping-table key covering
// it, for the kinds whose spelling is a plain table lookup. Kinds that
// carry parameters (VARCHAR length, DECIMAL precision/scale) render
// directly instead (literalColumnType).
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
		return "decimal(" + strconv.Itoa(col.Type.Precision) + "," + strconv.Itoa(col.Type.Scale) + ")"
	default:
		return "text"
	}
}

func (b *Backend) AutoIncrementKeyword() string { return "AUTO_INCREMENT" }

func (b *Backend) SupportsCascadeDrop() bool { return false }

func (b *Backend) SupportsModifyColumn() bool { return true }

func (b *Backend) SupportsDropColumn() bool { return true }

func (b *Backend) RenderAlterOption(w *sqlgen.Writer, opt sqlgen.TableAlterOption) {
	switch opt.Kind() {
	case sqlgen.AlterAddColumn:
		w.WriteString("ADD COLUMN ")
		w.WriteString(sqlgen.RenderColumnDefSQL(b, opt.Column()))
	case sqlgen.AlterModifyColumn:
		w.WriteString("MODIFY COLUMN ")
		w.WriteString(sqlgen.RenderColumnDefSQL(b, opt.Column()))
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
