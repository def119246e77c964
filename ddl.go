package sqlgen

// ColumnTypeKind is the closed set of logical column types a ColumnDef can
// carry. Each backend maps a kind to its own spelling via ColumnTypeSQL.
type ColumnTypeKind int

const (
	ColTypeInteger ColumnTypeKind = iota
	ColTypeSmallInt
	ColTypeBigInt
	ColTypeString // varchar(N) when Len > 0, else the backend's default length (SQLite: text)
	ColTypeText
	ColTypeFloat
	ColTypeDouble
	ColTypeBoolean
	ColTypeBlob
	ColTypeDate
	ColTypeDateTime
	ColTypeDecimal
	ColTypeJSON
)

// ColumnType is a logical column type plus its parameters.
type ColumnType struct {
	Kind      ColumnTypeKind
	Len       int // varchar(N); 0 means no explicit length
	Precision int // decimal(P,S)
	Scale     int
}

func Integer() ColumnType       { return ColumnType{Kind: ColTypeInteger} }
func SmallInt() ColumnType      { return ColumnType{Kind: ColTypeSmallInt} }
func BigInt() ColumnType        { return ColumnType{Kind: ColTypeBigInt} }
func VarChar(n int) ColumnType  { return ColumnType{Kind: ColTypeString, Len: n} }
func TextType() ColumnType      { return ColumnType{Kind: ColTypeText} }
func FloatType() ColumnType     { return ColumnType{Kind: ColTypeFloat} }
func DoubleType() ColumnType    { return ColumnType{Kind: ColTypeDouble} }
func BooleanType() ColumnType   { return ColumnType{Kind: ColTypeBoolean} }
func BlobType() ColumnType      { return ColumnType{Kind: ColTypeBlob} }
func DateType() ColumnType      { return ColumnType{Kind: ColTypeDate} }
func DateTimeType() ColumnType  { return ColumnType{Kind: ColTypeDateTime} }
func DecimalType(p, s int) ColumnType {
	return ColumnType{Kind: ColTypeDecimal, Precision: p, Scale: s}
}
func JSONType() ColumnType { return ColumnType{Kind: ColTypeJSON} }

// ColumnSpecKind discriminates the kinds of column-spec entry.
type ColumnSpecKind int

const (
	SpecNotNull ColumnSpecKind = iota
	SpecDefault
	SpecPrimaryKey
	SpecAutoIncrement
	SpecUnique
	SpecCheck
	SpecExtra
)

// ColumnSpec is one modifier on a ColumnDef, rendered in insertion order
// after the type name.
type ColumnSpec struct {
	kind    ColumnSpecKind
	expr    SimpleExpr
	extraSQL string
}

func NotNull() ColumnSpec      { return ColumnSpec{kind: SpecNotNull} }
func PrimaryKey() ColumnSpec   { return ColumnSpec{kind: SpecPrimaryKey} }
func AutoIncrement() ColumnSpec { return ColumnSpec{kind: SpecAutoIncrement} }
func Unique() ColumnSpec       { return ColumnSpec{kind: SpecUnique} }

func DefaultExpr(e any) ColumnSpec { return ColumnSpec{kind: SpecDefault, expr: Val(e)} }
func CheckExpr(e any) ColumnSpec   { return ColumnSpec{kind: SpecCheck, expr: Val(e)} }
func Extra(sql string) ColumnSpec  { return ColumnSpec{kind: SpecExtra, extraSQL: sql} }

// ColumnDef is one CREATE/ALTER TABLE column descriptor.
type ColumnDef struct {
	Name  string
	Type  ColumnType
	specs []ColumnSpec
}

// Col constructs a ColumnDef with the given name, type, and specs.
func Col(name string, typ ColumnType, specs ...ColumnSpec) ColumnDef {
	return ColumnDef{Name: name, Type: typ, specs: specs}
}

func (c *ColumnDef) hasSpec(kind ColumnSpecKind) bool {
	for _, s := range c.specs {
		if s.kind == kind {
			return true
		}
	}
	return false
}

// HasSpec reports whether col carries the given spec kind, for dialect
// backends that fold a spec into the type name itself (Postgres
// SERIAL/BIGSERIAL for SpecAutoIncrement).
func (c ColumnDef) HasSpec(kind ColumnSpecKind) bool { return c.hasSpec(kind) }

// DefaultExprSQL renders col's DEFAULT expression, if any, reporting
// ok=false when the column carries no SpecDefault.
func (c ColumnDef) DefaultExprSQL(b Backend) (string, bool) {
	for _, s := range c.specs {
		if s.kind == SpecDefault {
			return renderToString(func(w *Writer) { s.expr.render(w, b, precNone, modeInline, nil) }), true
		}
	}
	return "", false
}

func renderColumnDef(w *Writer, b Backend, c *ColumnDef, mode renderMode, col *Collector) {
	w.WriteIdent(b, c.Name)
	w.WriteByte(' ')
	w.WriteString(b.ColumnTypeSQL(c))

	for _, s := range c.specs {
		switch s.kind {
		case SpecNotNull:
			w.WriteString(" NOT NULL")
		case SpecPrimaryKey:
			w.WriteString(" PRIMARY KEY")
		case SpecAutoIncrement:
			if kw := b.AutoIncrementKeyword(); kw != "" {
				w.WriteByte(' ')
				w.WriteString(kw)
			}
		case SpecUnique:
			w.WriteString(" UNIQUE")
		case SpecDefault:
			w.WriteString(" DEFAULT ")
			s.expr.render(w, b, precNone, mode, col)
		case SpecCheck:
			w.WriteString(" CHECK (")
			s.expr.render(w, b, precNone, mode, col)
			w.WriteByte(')')
		case SpecExtra:
			w.WriteByte(' ')
			w.WriteString(s.extraSQL)
		}
	}
}

// FKAction is a referential-action keyword for ON DELETE / ON UPDATE.
type FKAction int

const (
	FKRestrict FKAction = iota
	FKCascade
	FKSetNull
	FKNoAction
	FKSetDefault
)

func (a FKAction) sql() string {
	switch a {
	case FKCascade:
		return "CASCADE"
	case FKSetNull:
		return "SET NULL"
	case FKNoAction:
		return "NO ACTION"
	case FKSetDefault:
		return "SET DEFAULT"
	default:
		return "RESTRICT"
	}
}

// ForeignKeyDef is a foreign-key constraint, usable either nested inside a
// CREATE TABLE body or as a standalone ForeignKeyCreateStatement.
type ForeignKeyDef struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   FKAction
	OnUpdate   FKAction
	hasDelete  bool
	hasUpdate  bool
}

func ForeignKey(columns []string, refTable string, refColumns []string) ForeignKeyDef {
	return ForeignKeyDef{Columns: columns, RefTable: refTable, RefColumns: refColumns}
}

func (f ForeignKeyDef) OnDeleteAction(a FKAction) ForeignKeyDef {
	f.OnDelete = a
	f.hasDelete = true
	return f
}

func (f ForeignKeyDef) OnUpdateAction(a FKAction) ForeignKeyDef {
	f.OnUpdate = a
	f.hasUpdate = true
	return f
}

func renderForeignKeyDef(w *Writer, b Backend, f *ForeignKeyDef) {
	w.WriteString("FOREIGN KEY (")
	for i, c := range f.Columns {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteIdent(b, c)
	}
	w.WriteString(") REFERENCES ")
	w.WriteIdent(b, f.RefTable)
	w.WriteString(" (")
	for i, c := range f.RefColumns {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteIdent(b, c)
	}
	w.WriteByte(')')
	if f.hasDelete {
		w.WriteString(" ON DELETE ")
		w.WriteString(f.OnDelete.sql())
	}
	if f.hasUpdate {
		w.WriteString(" ON UPDATE ")
		w.WriteString(f.OnUpdate.sql())
	}
}

// ---- CREATE TABLE ----

// TableCreateStatement is the CREATE TABLE statement AST.
type TableCreateStatement struct {
	table       string
	ifNotExists bool
	columns     []ColumnDef
	primaryKey  []string // composite PK; single-column PK uses PrimaryKey() spec instead
	foreignKeys []ForeignKeyDef
	engine      string // MySQL table option
	charset     string // MySQL table option
}

func NewTableCreate(table string) *TableCreateStatement {
	return &TableCreateStatement{table: table}
}

func (s *TableCreateStatement) IfNotExists() *TableCreateStatement {
	s.ifNotExists = true
	return s
}

func (s *TableCreateStatement) Column(c ColumnDef) *TableCreateStatement {
	s.columns = append(s.columns, c)
	return s
}

func (s *TableCreateStatement) PrimaryKey(columns ...string) *TableCreateStatement {
	s.primaryKey = columns
	return s
}

func (s *TableCreateStatement) ForeignKey(fk ForeignKeyDef) *TableCreateStatement {
	s.foreignKeys = append(s.foreignKeys, fk)
	return s
}

// Engine sets the MySQL-only `ENGINE=` table option; other dialects
// ignore it at render time.
func (s *TableCreateStatement) Engine(name string) *TableCreateStatement {
	s.engine = name
	return s
}

func (s *TableCreateStatement) Charset(name string) *TableCreateStatement {
	s.charset = name
	return s
}

func (s *TableCreateStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) { renderTableCreate(w, b, s) })
}

func renderTableCreate(w *Writer, b Backend, s *TableCreateStatement) {
	w.WriteString("CREATE TABLE ")
	if s.ifNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	w.WriteIdent(b, s.table)
	w.WriteString(" (")

	first := true
	for i := range s.columns {
		if !first {
			w.WriteString(", ")
		}
		renderColumnDef(w, b, &s.columns[i], modeInline, nil)
		first = false
	}

	if len(s.primaryKey) > 0 {
		if !first {
			w.WriteString(", ")
		}
		w.WriteString("PRIMARY KEY (")
		for i, c := range s.primaryKey {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteIdent(b, c)
		}
		w.WriteByte(')')
		first = false
	}

	for i := range s.foreignKeys {
		if !first {
			w.WriteString(", ")
		}
		renderForeignKeyDef(w, b, &s.foreignKeys[i])
		first = false
	}

	w.WriteByte(')')

	if b.Dialect() == MySQLDialect {
		if s.engine != "" {
			w.WriteString(" ENGINE=")
			w.WriteString(s.engine)
		}
		if s.charset != "" {
			w.WriteString(" DEFAULT CHARSET=")
			w.WriteString(s.charset)
		}
	}
}

// ---- ALTER TABLE ----

// AlterOptionKind discriminates the single alter-option a TableAlterStatement
// carries.
type AlterOptionKind int

const (
	AlterAddColumn AlterOptionKind = iota
	AlterModifyColumn
	AlterRenameColumn
	AlterDropColumn
)

// TableAlterOption is the one mutation a TableAlterStatement carries.
type TableAlterOption struct {
	kind    AlterOptionKind
	column  ColumnDef
	oldName string
	newName string
	drop    string
}

func AddColumn(c ColumnDef) TableAlterOption {
	return TableAlterOption{kind: AlterAddColumn, column: c}
}

func ModifyColumn(c ColumnDef) TableAlterOption {
	return TableAlterOption{kind: AlterModifyColumn, column: c}
}

func RenameColumn(oldName, newName string) TableAlterOption {
	return TableAlterOption{kind: AlterRenameColumn, oldName: oldName, newName: newName}
}

func DropColumn(name string) TableAlterOption {
	return TableAlterOption{kind: AlterDropColumn, drop: name}
}

// Kind reports which of the four alter forms opt carries.
func (opt TableAlterOption) Kind() AlterOptionKind { return opt.kind }

// Column returns the column descriptor for AddColumn/ModifyColumn options.
func (opt TableAlterOption) Column() ColumnDef { return opt.column }

// OldName returns the existing column name for a RenameColumn option.
func (opt TableAlterOption) OldName() string { return opt.oldName }

// NewName returns the target column name for a RenameColumn option.
func (opt TableAlterOption) NewName() string { return opt.newName }

// DroppedColumn returns the column name for a DropColumn option.
func (opt TableAlterOption) DroppedColumn() string { return opt.drop }

// RenderColumnDefSQL renders col's full "<name> <type> <specs...>" text,
// for dialect backends composing ADD/MODIFY COLUMN clauses outside the
// CREATE TABLE body.
func RenderColumnDefSQL(b Backend, col ColumnDef) string {
	return renderToString(func(w *Writer) { renderColumnDef(w, b, &col, modeInline, nil) })
}

// TableAlterStatement carries exactly one TableAlterOption.
type TableAlterStatement struct {
	table  string
	option *TableAlterOption
}

func NewTableAlter(table string) *TableAlterStatement {
	return &TableAlterStatement{table: table}
}

func (s *TableAlterStatement) Option(opt TableAlterOption) *TableAlterStatement {
	s.option = &opt
	return s
}

func (s *TableAlterStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) { renderTableAlter(w, b, s) })
}

func renderTableAlter(w *Writer, b Backend, s *TableAlterStatement) {
	if s.option == nil {
		panic("No alter option found")
	}
	switch s.option.kind {
	case AlterModifyColumn:
		if !b.SupportsModifyColumn() {
			panic("Sqlite not support modifying table column")
		}
	case AlterDropColumn:
		if !b.SupportsDropColumn() {
			panic("Sqlite not support dropping table column")
		}
	}
	w.WriteString("ALTER TABLE ")
	w.WriteIdent(b, s.table)
	w.WriteByte(' ')
	b.RenderAlterOption(w, *s.option)
}

// ---- DROP / TRUNCATE / RENAME ----

// TableDropStatement is the DROP TABLE statement AST.
type TableDropStatement struct {
	tables   []string
	ifExists bool
	cascade  bool
}

func NewTableDrop(tables ...string) *TableDropStatement {
	return &TableDropStatement{tables: tables}
}

func (s *TableDropStatement) IfExists() *TableDropStatement {
	s.ifExists = true
	return s
}

func (s *TableDropStatement) Cascade() *TableDropStatement {
	s.cascade = true
	return s
}

func (s *TableDropStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) { renderTableDrop(w, b, s) })
}

func renderTableDrop(w *Writer, b Backend, s *TableDropStatement) {
	w.WriteString("DROP TABLE ")
	if s.ifExists {
		w.WriteString("IF EXISTS ")
	}
	for i, t := range s.tables {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteIdent(b, t)
	}
	if s.cascade && b.SupportsCascadeDrop() {
		w.WriteString(" CASCADE")
	}
}

// TableTruncateStatement is the TRUNCATE TABLE statement AST.
type TableTruncateStatement struct {
	table string
}

func NewTableTruncate(table string) *TableTruncateStatement {
	return &TableTruncateStatement{table: table}
}

func (s *TableTruncateStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) {
		w.WriteString("TRUNCATE TABLE ")
		w.WriteIdent(b, s.table)
	})
}

// TableRenameStatement is the ALTER TABLE ... RENAME TO statement AST.
type TableRenameStatement struct {
	from string
	to   string
}

func NewTableRename(from, to string) *TableRenameStatement {
	return &TableRenameStatement{from: from, to: to}
}

func (s *TableRenameStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) {
		w.WriteString("ALTER TABLE ")
		w.WriteIdent(b, s.from)
		w.WriteString(" RENAME TO ")
		w.WriteIdent(b, s.to)
	})
}

// ---- INDEX / FOREIGN KEY as standalone statements ----

// IndexCreateStatement is the CREATE INDEX statement AST.
type IndexCreateStatement struct {
	name    string
	table   string
	columns []string
	unique  bool
}

func NewIndexCreate(name, table string, columns ...string) *IndexCreateStatement {
	return &IndexCreateStatement{name: name, table: table, columns: columns}
}

func (s *IndexCreateStatement) Unique() *IndexCreateStatement {
	s.unique = true
	return s
}

func (s *IndexCreateStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) {
		w.WriteString("CREATE ")
		if s.unique {
			w.WriteString("UNIQUE ")
		}
		w.WriteString("INDEX ")
		w.WriteIdent(b, s.name)
		w.WriteString(" ON ")
		w.WriteIdent(b, s.table)
		w.WriteString(" (")
		for i, c := range s.columns {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteIdent(b, c)
		}
		w.WriteByte(')')
	})
}

// ForeignKeyCreateStatement is the standalone ALTER TABLE ... ADD
// CONSTRAINT ... FOREIGN KEY statement AST.
type ForeignKeyCreateStatement struct {
	name  string
	table string
	fk    ForeignKeyDef
}

func NewForeignKeyCreate(name, table string, fk ForeignKeyDef) *ForeignKeyCreateStatement {
	return &ForeignKeyCreateStatement{name: name, table: table, fk: fk}
}

func (s *ForeignKeyCreateStatement) ToSQL(b Backend) string {
	return renderToString(func(w *Writer) {
		w.WriteString("ALTER TABLE ")
		w.WriteIdent(b, s.table)
		w.WriteString(" ADD CONSTRAINT ")
		w.WriteIdent(b, s.name)
		w.WriteByte(' ')
		renderForeignKeyDef(w, b, &s.fk)
	})
}
