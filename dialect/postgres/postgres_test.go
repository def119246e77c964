package postgres_test

import (
	"testing"

	pgquery "github.com/pganalyze/pg_query_go/v5"

	"github.com/sqlgen/sqlgen"
	"github.com/sqlgen/sqlgen/dialect/postgres"
)

// mustParse fails the test if sql is not syntactically valid Postgres SQL,
// per libpg_query's own parser bound through pg_query_go. A test-only
// dependency: it never appears in this module's non-test import graph.
func mustParse(t *testing.T, sql string) {
	t.Helper()
	if _, err := pgquery.Parse(sql); err != nil {
		t.Fatalf("pg_query_go rejected rendered SQL %q: %v", sql, err)
	}
}

func TestSelectRendersValidPostgres(t *testing.T) {
	s := sqlgen.Select().
		Select(sqlgen.Column("image"), sqlgen.Column("aspect")).
		FromTable("glyph").
		AndWhere(sqlgen.Column("aspect").Gte(1.0)).
		OrderByExprNulls(sqlgen.Column("aspect"), sqlgen.Desc, sqlgen.NullsLast).
		Limit(10).
		Offset(100)

	sql := s.ToSQL(postgres.New())
	mustParse(t, sql)
}

func TestUpdateWithReturningRendersValidPostgres(t *testing.T) {
	s := sqlgen.Update().
		TableName("glyph").
		Set("aspect", 2.1345).
		AndWhere(sqlgen.Column("id").Eq(1)).
		Returning(sqlgen.Column("id"), sqlgen.Column("aspect"))

	sql := s.ToSQL(postgres.New())
	want := `UPDATE "glyph" SET "aspect" = 2.1345 WHERE "id" = 1 RETURNING "id", "aspect"`
	if sql != want {
		t.Fatalf("got %q, want %q", sql, want)
	}
	mustParse(t, sql)
}

func TestDeleteWithReturningRendersValidPostgres(t *testing.T) {
	sql := sqlgen.Delete().
		From("glyph").
		AndWhere(sqlgen.Column("id").Eq(1)).
		Returning(sqlgen.Column("id")).
		ToSQL(postgres.New())
	mustParse(t, sql)
}

func TestCreateTableWithSerialRendersValidPostgres(t *testing.T) {
	sql := sqlgen.CreateTable("widget").
		Column(sqlgen.Col("id", sqlgen.BigInt(), sqlgen.PrimaryKey(), sqlgen.AutoIncrement())).
		Column(sqlgen.Col("name", sqlgen.VarChar(64), sqlgen.NotNull())).
		ToSQL(postgres.New())
	want := `CREATE TABLE "widget" ("id" bigserial PRIMARY KEY, "name" varchar(64) NOT NULL)`
	if sql != want {
		t.Fatalf("got %q, want %q", sql, want)
	}
	mustParse(t, sql)
}

func TestAlterTableModifyColumnWithDefaultRendersValidPostgres(t *testing.T) {
	sql := sqlgen.AlterTable("widget").
		Option(sqlgen.ModifyColumn(sqlgen.Col("name", sqlgen.TextType(), sqlgen.DefaultExpr("unnamed")))).
		ToSQL(postgres.New())
	want := `ALTER TABLE "widget" ALTER COLUMN "name" TYPE text, ALTER COLUMN "name" SET DEFAULT 'unnamed'`
	if sql != want {
		t.Fatalf("got %q, want %q", sql, want)
	}
	mustParse(t, sql)
}

func TestAlterTableDropColumnRendersValidPostgres(t *testing.T) {
	sql := sqlgen.AlterTable("widget").
		Option(sqlgen.DropColumn("name")).
		ToSQL(postgres.New())
	mustParse(t, sql)
}

func TestDropTableCascadeRendersValidPostgres(t *testing.T) {
	sql := sqlgen.DropTable("widget").IfExists().Cascade().ToSQL(postgres.New())
	want := `DROP TABLE IF EXISTS "widget" CASCADE`
	if sql != want {
		t.Fatalf("got %q, want %q", sql, want)
	}
	mustParse(t, sql)
}

func TestUnionStackRendersValidPostgres(t *testing.T) {
	a := sqlgen.Select().Select(sqlgen.Column("id")).FromTable("cats")
	b := sqlgen.Select().Select(sqlgen.Column("id")).FromTable("dogs")
	a.UnionAll(b)

	sql := a.ToSQL(postgres.New())
	mustParse(t, sql)
}

func TestWindowFunctionRendersValidPostgres(t *testing.T) {
	win := sqlgen.WindowFunc("ROW_NUMBER", nil,
		[]sqlgen.SimpleExpr{sqlgen.Column("font_id")},
		[]sqlgen.OrderExpr{{Expr: sqlgen.Column("id"), Dir: sqlgen.Asc}})

	sql := sqlgen.Select().SelectAs(win, "rn").FromTable("character").ToSQL(postgres.New())
	mustParse(t, sql)
}

func TestRowLockingRendersValidPostgres(t *testing.T) {
	sql := sqlgen.Select().
		Select(sqlgen.Asterisk()).
		FromTable("glyph").
		AndWhere(sqlgen.Column("id").Eq(1)).
		LockMode(sqlgen.LockForUpdate).
		ToSQL(postgres.New())
	want := `SELECT * FROM "glyph" WHERE "id" = 1 FOR UPDATE`
	if sql != want {
		t.Fatalf("got %q, want %q", sql, want)
	}
	mustParse(t, sql)
}
