// Package sqlgen is a dialect-aware, embeddable SQL query builder. It lets
// callers construct SELECT, INSERT, UPDATE, DELETE, and DDL statements as
// in-memory abstract syntax trees and render them into dialect-correct SQL
// text for MySQL, PostgreSQL, and SQLite, either inline or with values
// substituted by placeholder parameters collected for prepared-statement
// execution. It does not open a database connection, parse SQL, or
// validate a statement against a live schema; see the dialect/ packages
// for the three bundled backends.
package sqlgen

// Select constructs a blank SELECT statement.
func Select() *SelectStatement { return NewSelect() }

// Insert constructs a blank INSERT statement.
func Insert() *InsertStatement { return NewInsert() }

// Update constructs a blank UPDATE statement.
func Update() *UpdateStatement { return NewUpdate() }

// Delete constructs a blank DELETE statement.
func Delete() *DeleteStatement { return NewDelete() }

// CreateTable constructs a blank CREATE TABLE statement.
func CreateTable(table string) *TableCreateStatement { return NewTableCreate(table) }

// AlterTable constructs a blank ALTER TABLE statement.
func AlterTable(table string) *TableAlterStatement { return NewTableAlter(table) }

// DropTable constructs a DROP TABLE statement targeting the given tables.
func DropTable(tables ...string) *TableDropStatement { return NewTableDrop(tables...) }

// TruncateTable constructs a TRUNCATE TABLE statement.
func TruncateTable(table string) *TableTruncateStatement { return NewTableTruncate(table) }

// RenameTable constructs an ALTER TABLE ... RENAME TO statement.
func RenameTable(from, to string) *TableRenameStatement { return NewTableRename(from, to) }

// CreateIndex constructs a CREATE INDEX statement.
func CreateIndex(name, table string, columns ...string) *IndexCreateStatement {
	return NewIndexCreate(name, table, columns...)
}

// AddForeignKey constructs a standalone ALTER TABLE ... ADD CONSTRAINT
// FOREIGN KEY statement.
func AddForeignKey(name, table string, fk ForeignKeyDef) *ForeignKeyCreateStatement {
	return NewForeignKeyCreate(name, table, fk)
}
