// Package sqlite is the SQLite dialect backend. It implements
// sqlgen.Backend, following the one-file-per-dialect layout and
// mapping-table-driven lookup of type names used across this module's
// dialect/ subpackages.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/sqlgen/sqlgen"
	"github.com/sqlgen/sqlgen/mapping"
)

// Backend is the SQLite implementation of sqlgen.Backend.
type Backend struct{}

// Option configures a Backend at construction time. SQLite's type model
// is untyped enough that no backend-level option is needed yet; the type
// exists so callers can write dialect-agnostic New(opts...) call sites.
type Option func(*Backend)

// New constructs a SQLite backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Dialect() sqlgen.Dialect { return sqlgen.SQLiteDialect }

func (b *Backend) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
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

func (b *Backend) SupportsReturning() bool { return true }

// RenderOrderExpr emulates NULLS FIRST/LAST the same way MySQL does: an
// extra "<expr> IS NULL" pre-sort key.
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
		if name, ok := mapping.Lookup(mapping.TypeMap, "SQLite", key); ok {
			return name
		}
	}
	return "text"
}

func columnTypeKey(col *sqlgen.ColumnDef) (string, bool) {
	switch col.Type.Kind {
	case sqlgen.ColTypeInteger:
		return "INT", true
	case sqlgen.ColTypeSmallInt:
		return "SMALLINT", true
	case sqlgen.ColTypeBigInt:
		return "BIGINT", true
	case sqlgen.ColTypeString, sqlgen.ColTypeText:
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
	case sqlgen.ColTypeDecimal:
		return "DECIMAL", true
	case sqlgen.ColTypeJSON:
		return "JSON", true
	default:
		return "", false
	}
}

func (b *Backend) AutoIncrementKeyword() string { return "AUTOINCREMENT" }

func (b *Backend) SupportsCascadeDrop() bool { return false }

func (b *Backend) SupportsModifyColumn() bool { return false }

func (b *Backend) SupportsDropColumn() bool { return false }

// RenderAlterOption supports only AddColumn and RenameColumn; the
// TableAlterStatement renderer already panics for ModifyColumn/DropColumn
// before calling this, via the SupportsModifyColumn/SupportsDropColumn
// guards above, so only those two cases are ever reached here.
func (b *Backend) RenderAlterOption(w *sqlgen.Writer, opt sqlgen.TableAlterOption) {
	switch opt.Kind() {
	case sqlgen.AlterAddColumn:
		w.WriteString("ADD COLUMN ")
		w.WriteString(sqlgen.RenderColumnDefSQL(b, opt.Column()))
	case sqlgen.AlterRenameColumn:
		w.WriteString("RENAME COLUMN ")
		w.WriteIdent(b, opt.OldName())
		w.WriteString(" TO ")
		w.WriteIdent(b, opt.NewName())
	}
}
