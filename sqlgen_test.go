package sqlgen_test

import (
	"testing"

	"github.com/sqlgen/sqlgen"
	"github.com/sqlgen/sqlgen/dialect/mysql"
	"github.com/sqlgen/sqlgen/dialect/postgres"
	"github.com/sqlgen/sqlgen/dialect/sqlite"
)

func TestValueInlineFormatting(t *testing.T) {
	my := mysql.New()
	pg := postgres.New()

	cases := []struct {
		name string
		v    sqlgen.Value
		b    sqlgen.Backend
		want string
	}{
		{"null", sqlgen.Null(), my, "NULL"},
		{"bool true mysql", sqlgen.Bool(true), my, "1"},
		{"bool false mysql", sqlgen.Bool(false), my, "0"},
		{"bool true postgres", sqlgen.Bool(true), pg, "TRUE"},
		{"bool false postgres", sqlgen.Bool(false), pg, "FALSE"},
		{"int", sqlgen.Int(-42), my, "-42"},
		{"uint", sqlgen.Uint(42), my, "42"},
		{"float", sqlgen.Float64(2.1345), my, "2.1345"},
		{"string", sqlgen.Str("o'brien"), my, "'o''brien'"},
		{"bytes mysql", sqlgen.Bytes([]byte{0xAB, 0xCD}), my, "X'ABCD'"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := sqlgen.Select().Select(c.v).ToSQL(c.b)
			want := "SELECT " + c.want
			if got != want {
				t.Fatalf("got %q, want %q", got, want)
			}
		})
	}
}

func TestValuePlaceholderMarkers(t *testing.T) {
	s := sqlgen.Select().
		Select(sqlgen.Column("id")).
		FromTable("t").
		AndWhere(sqlgen.Column("a").Eq(1)).
		AndWhere(sqlgen.Column("b").Eq(2))

	sql, values := s.Build(mysql.New())
	want := "SELECT `id` FROM `t` WHERE `a` = ? AND `b` = ?"
	if sql != want {
		t.Fatalf("got %q, want %q", sql, want)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 collected values, got %d", len(values))
	}

	pgSQL, _ := s.Build(postgres.New())
	wantPG := `SELECT "id" FROM "t" WHERE "a" = $1 AND "b" = $2`
	if pgSQL != wantPG {
		t.Fatalf("got %q, want %q", pgSQL, wantPG)
	}
}

func TestExpressionPrecedenceParenthesization(t *testing.T) {
	my := mysql.New()

	t.Run("and binds tighter than or, no parens needed", func(t *testing.T) {
		e := sqlgen.Column("a").Eq(1).And(sqlgen.Column("b").Eq(2)).Or(sqlgen.Column("c").Eq(3))
		got := sqlgen.Select().Select(e).ToSQL(my)
		want := "SELECT `a` = 1 AND `b` = 2 OR `c` = 3"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("or nested inside and requires parens", func(t *testing.T) {
		or := sqlgen.Column("b").Eq(2).Or(sqlgen.Column("c").Eq(3))
		e := sqlgen.Column("a").Eq(1).And(or)
		got := sqlgen.Select().Select(e).ToSQL(my)
		want := "SELECT `a` = 1 AND (`b` = 2 OR `c` = 3)"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("mul binds tighter than add, no parens needed", func(t *testing.T) {
		e := sqlgen.Column("a").Add(sqlgen.Column("b").Mul(sqlgen.Column("c")))
		got := sqlgen.Select().Select(e).ToSQL(my)
		want := "SELECT `a` + `b` * `c`"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("add nested inside mul requires parens", func(t *testing.T) {
		e := sqlgen.Column("a").Add(sqlgen.Column("b")).Mul(sqlgen.Column("c"))
		got := sqlgen.Select().Select(e).ToSQL(my)
		want := "SELECT (`a` + `b`) * `c`"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("not wraps its operand", func(t *testing.T) {
		e := sqlgen.Column("a").Eq(1).And(sqlgen.Column("b").Eq(2)).Not()
		got := sqlgen.Select().Select(e).ToSQL(my)
		want := "SELECT NOT (`a` = 1 AND `b` = 2)"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("atoms never gain extra parens", func(t *testing.T) {
		e := sqlgen.Func("COALESCE", sqlgen.Column("a"), sqlgen.Val(0)).Eq(0)
		got := sqlgen.Select().Select(e).ToSQL(my)
		want := "SELECT COALESCE(`a`, 0) = 0"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})
}

func TestConcatDialectSpelling(t *testing.T) {
	e := sqlgen.Concat(sqlgen.Column("first"), sqlgen.Val(" "), sqlgen.Column("last"))

	gotMySQL := sqlgen.Select().Select(e).ToSQL(mysql.New())
	wantMySQL := "SELECT CONCAT(`first`, ' ', `last`)"
	if gotMySQL != wantMySQL {
		t.Fatalf("got %q, want %q", gotMySQL, wantMySQL)
	}

	gotPG := sqlgen.Select().Select(e).ToSQL(postgres.New())
	wantPG := `SELECT ("first" || ' ' || "last")`
	if gotPG != wantPG {
		t.Fatalf("got %q, want %q", gotPG, wantPG)
	}
}

func TestConditionTreeEmptyElision(t *testing.T) {
	c := sqlgen.All().Add(sqlgen.Any())
	got := sqlgen.Select().Select(sqlgen.Asterisk()).FromTable("t").Where(c).ToSQL(mysql.New())
	want := "SELECT * FROM `t`"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConditionTreeNegationAndNesting(t *testing.T) {
	inner := sqlgen.Any().AddExpr(sqlgen.Column("a").Eq(1)).AddExpr(sqlgen.Column("b").Eq(2))
	outer := sqlgen.All().Add(inner).AddExpr(sqlgen.Column("c").Eq(3)).Not()

	got := sqlgen.Select().Select(sqlgen.Asterisk()).FromTable("t").Where(outer).ToSQL(mysql.New())
	want := "SELECT * FROM `t` WHERE NOT ((`a` = 1 OR `b` = 2) AND `c` = 3)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConditionHolderFormExclusivityPanics(t *testing.T) {
	t.Run("linear after tree panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic, got none")
			}
		}()
		s := sqlgen.Select().FromTable("t").Where(sqlgen.All())
		s.AndWhere(sqlgen.Column("a").Eq(1))
	})

	t.Run("tree after linear panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic, got none")
			}
		}()
		s := sqlgen.Select().FromTable("t").AndWhere(sqlgen.Column("a").Eq(1))
		s.Where(sqlgen.All())
	})

	t.Run("mixing and/or in legacy chain panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic, got none")
			}
		}()
		sqlgen.Select().FromTable("t").
			AndWhere(sqlgen.Column("a").Eq(1)).
			OrWhere(sqlgen.Column("b").Eq(2))
	})
}

func TestInsertArityMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	sqlgen.Insert().
		IntoTable("t").
		Columns("a", "b").
		Values(1).
		ToSQL(mysql.New())
}

func TestAlterTableMissingOptionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	sqlgen.AlterTable("t").ToSQL(mysql.New())
}

func TestSQLiteModifyColumnPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	sqlgen.AlterTable("t").
		Option(sqlgen.ModifyColumn(sqlgen.Col("a", sqlgen.Integer()))).
		ToSQL(sqlite.New())
}

func TestSQLiteDropColumnPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	sqlgen.AlterTable("t").
		Option(sqlgen.DropColumn("a")).
		ToSQL(sqlite.New())
}

func TestMySQLAlterAddAndRenameColumn(t *testing.T) {
	add := sqlgen.AlterTable("t").
		Option(sqlgen.AddColumn(sqlgen.Col("nickname", sqlgen.VarChar(64)))).
		ToSQL(mysql.New())
	wantAdd := "ALTER TABLE `t` ADD COLUMN `nickname` varchar(64)"
	if add != wantAdd {
		t.Fatalf("got %q, want %q", add, wantAdd)
	}

	rename := sqlgen.AlterTable("t").
		Option(sqlgen.RenameColumn("old", "new")).
		ToSQL(mysql.New())
	wantRename := "ALTER TABLE `t` RENAME COLUMN `old` TO `new`"
	if rename != wantRename {
		t.Fatalf("got %q, want %q", rename, wantRename)
	}
}

func TestPostgresSerialColumn(t *testing.T) {
	s := sqlgen.CreateTable("widget").
		Column(sqlgen.Col("id", sqlgen.Integer(), sqlgen.PrimaryKey(), sqlgen.AutoIncrement())).
		ToSQL(postgres.New())
	want := `CREATE TABLE "widget" ("id" serial PRIMARY KEY)`
	if s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

func TestMySQLReturningSilentlyOmitted(t *testing.T) {
	s := sqlgen.Update().TableName("t").Set("a", 1).Returning(sqlgen.Column("id")).ToSQL(mysql.New())
	want := "UPDATE `t` SET `a` = 1"
	if s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

func TestPostgresReturningEmitted(t *testing.T) {
	s := sqlgen.Update().TableName("t").Set("a", 1).Returning(sqlgen.Column("id")).ToSQL(postgres.New())
	want := `UPDATE "t" SET "a" = 1 RETURNING "id"`
	if s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

func TestJoinsAndNullsOrdering(t *testing.T) {
	on := sqlgen.All().AddExpr(sqlgen.EqualsColumns("u", "id", "p", "user_id"))
	s := sqlgen.Select().
		Select(sqlgen.TableColumn("u", "name")).
		FromTable("u").
		LeftJoin(sqlgen.Table("p"), on).
		OrderByExprNulls(sqlgen.Column("name"), sqlgen.Asc, sqlgen.NullsLast)

	got := s.ToSQL(mysql.New())
	want := "SELECT `u`.`name` FROM `u` LEFT JOIN `p` ON `u`.`id` = `p`.`user_id` ORDER BY `name` IS NULL ASC, `name` ASC"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	gotPG := s.ToSQL(postgres.New())
	wantPG := `SELECT "u"."name" FROM "u" LEFT JOIN "p" ON "u"."id" = "p"."user_id" ORDER BY "name" ASC NULLS LAST`
	if gotPG != wantPG {
		t.Fatalf("got %q, want %q", gotPG, wantPG)
	}
}
