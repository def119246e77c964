package sqlite_test

import (
	"testing"

	"github.com/sqlgen/sqlgen"
	"github.com/sqlgen/sqlgen/dialect/sqlite"
)

// No pure-Go SQLite parser is wired in here (see SPEC_FULL.md's Test
// tooling section) — these cases rely on literal string comparison only.

func TestSelectLiteralSQLite(t *testing.T) {
	s := sqlgen.Select().
		Select(sqlgen.Column("character"), sqlgen.Column("size_w"), sqlgen.Column("size_h")).
		FromTable("character").
		Limit(10).
		Offset(100)

	got := s.ToSQL(sqlite.New())
	want := `SELECT "character", "size_w", "size_h" FROM "character" LIMIT 10 OFFSET 100`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInsertReturningLiteralSQLite(t *testing.T) {
	s := sqlgen.Insert().
		IntoTable("glyph").
		Columns("image", "aspect").
		Values("deadbeef", 1.5).
		Returning(sqlgen.Column("id"))

	got := s.ToSQL(sqlite.New())
	want := `INSERT INTO "glyph" ("image", "aspect") VALUES ('deadbeef', 1.5) RETURNING "id"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCreateTableWithForeignKeyLiteralSQLite(t *testing.T) {
	s := sqlgen.CreateTable("character").
		Column(sqlgen.Col("id", sqlgen.Integer(), sqlgen.PrimaryKey())).
		Column(sqlgen.Col("font_id", sqlgen.Integer(), sqlgen.NotNull())).
		ForeignKey(sqlgen.ForeignKey([]string{"font_id"}, "font", []string{"id"}).
			OnDeleteAction(sqlgen.FKCascade).
			OnUpdateAction(sqlgen.FKCascade))

	got := s.ToSQL(sqlite.New())
	want := `CREATE TABLE "character" ("id" integer PRIMARY KEY, "font_id" integer NOT NULL, FOREIGN KEY ("font_id") REFERENCES "font" ("id") ON DELETE CASCADE ON UPDATE CASCADE)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAlterTableAddAndRenameColumnLiteralSQLite(t *testing.T) {
	add := sqlgen.AlterTable("character").
		Option(sqlgen.AddColumn(sqlgen.Col("nickname", sqlgen.TextType()))).
		ToSQL(sqlite.New())
	wantAdd := `ALTER TABLE "character" ADD COLUMN "nickname" text`
	if add != wantAdd {
		t.Fatalf("got %q, want %q", add, wantAdd)
	}

	rename := sqlgen.AlterTable("character").
		Option(sqlgen.RenameColumn("nickname", "display_name")).
		ToSQL(sqlite.New())
	wantRename := `ALTER TABLE "character" RENAME COLUMN "nickname" TO "display_name"`
	if rename != wantRename {
		t.Fatalf("got %q, want %q", rename, wantRename)
	}
}

func TestDropTableCascadeSilentlyOmittedSQLite(t *testing.T) {
	got := sqlgen.DropTable("character").IfExists().Cascade().ToSQL(sqlite.New())
	want := `DROP TABLE IF EXISTS "character"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAutoIncrementKeywordSQLite(t *testing.T) {
	got := sqlgen.CreateTable("character").
		Column(sqlgen.Col("id", sqlgen.Integer(), sqlgen.PrimaryKey(), sqlgen.AutoIncrement())).
		ToSQL(sqlite.New())
	want := `CREATE TABLE "character" ("id" integer PRIMARY KEY AUTOINCREMENT)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBlobLiteralSQLite(t *testing.T) {
	got := sqlgen.Select().Select(sqlgen.Val([]byte{0xDE, 0xAD, 0xBE, 0xEF})).ToSQL(sqlite.New())
	want := "SELECT X'DEADBEEF'"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
