package sqlgen_test

import (
	"testing"

	"github.com/sqlgen/sqlgen"
	"github.com/sqlgen/sqlgen/dialect/mysql"
	"github.com/sqlgen/sqlgen/dialect/sqlite"
)

// TestScenarioS1 exercises spec.md §8 scenario S1.
func TestScenarioS1(t *testing.T) {
	s := sqlgen.Select().
		Select(sqlgen.Column("character"), sqlgen.Column("size_w"), sqlgen.Column("size_h")).
		FromTable("character").
		Limit(10).
		Offset(100)

	got := s.ToSQL(mysql.New())
	want := "SELECT `character`, `size_w`, `size_h` FROM `character` LIMIT 10 OFFSET 100"
	if got != want {
		t.Fatalf("S1 mismatch:\n got:  %s\nwant: %s", got, want)
	}
}

// TestScenarioS2 exercises spec.md §8 scenario S2.
func TestScenarioS2(t *testing.T) {
	inner := sqlgen.Select().
		Select(sqlgen.Column("image"), sqlgen.Column("aspect")).
		FromTable("glyph")

	outer := sqlgen.Select().
		Select(sqlgen.Column("image")).
		FromSubquery(inner, "subglyph")

	got := outer.ToSQL(mysql.New())
	want := "SELECT `image` FROM (SELECT `image`, `aspect` FROM `glyph`) AS `subglyph`"
	if got != want {
		t.Fatalf("S2 mismatch:\n got:  %s\nwant: %s", got, want)
	}
}

// TestScenarioS3 exercises spec.md §8 scenario S3.
func TestScenarioS3(t *testing.T) {
	s := sqlgen.Update().
		TableName("glyph").
		Set("aspect", 2.1345).
		Set("image", "24B0E11951B03B07F8300FD003983F03F0780060").
		AndWhere(sqlgen.Column("id").Eq(1)).
		OrderByExpr(sqlgen.Column("id"), sqlgen.Asc).
		Limit(1)

	got := s.ToSQL(mysql.New())
	want := "UPDATE `glyph` SET `aspect` = 2.1345, `image` = '24B0E11951B03B07F8300FD003983F03F0780060' WHERE `id` = 1 ORDER BY `id` ASC LIMIT 1"
	if got != want {
		t.Fatalf("S3 mismatch:\n got:  %s\nwant: %s", got, want)
	}
}

// TestScenarioS4 exercises spec.md §8 scenario S4.
func TestScenarioS4(t *testing.T) {
	s := sqlgen.Delete().
		From("glyph").
		AndWhere(sqlgen.Column("id").Eq(1)).
		OrderByExpr(sqlgen.Column("id"), sqlgen.Asc).
		Limit(1)

	got := s.ToSQL(mysql.New())
	want := "DELETE FROM `glyph` WHERE `id` = 1 ORDER BY `id` ASC LIMIT 1"
	if got != want {
		t.Fatalf("S4 mismatch:\n got:  %s\nwant: %s", got, want)
	}
}

// TestScenarioS5 exercises spec.md §8 scenario S5: Build of the S3 update
// emits placeholders in the SET and WHERE clauses and collects three values.
func TestScenarioS5(t *testing.T) {
	s := sqlgen.Update().
		TableName("glyph").
		Set("aspect", 2.1345).
		Set("image", "24B0E11951B03B07F8300FD003983F03F0780060").
		AndWhere(sqlgen.Column("id").Eq(1))

	sql, values := s.Build(mysql.New())

	wantFragment := "SET `aspect` = ?, `image` = ? WHERE `id` = ?"
	if indexOf(sql, wantFragment) < 0 {
		t.Fatalf("S5 placeholder fragment not found.\n got: %s\nwant fragment: %s", sql, wantFragment)
	}
	if len(values) != 3 {
		t.Fatalf("S5 expected 3 collected values, got %d", len(values))
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// TestScenarioS6 exercises spec.md §8 scenario S6.
func TestScenarioS6(t *testing.T) {
	s := sqlgen.CreateTable("character").
		Column(sqlgen.Col("id", sqlgen.Integer(), sqlgen.PrimaryKey())).
		Column(sqlgen.Col("font_id", sqlgen.Integer(), sqlgen.NotNull())).
		ForeignKey(sqlgen.ForeignKey([]string{"font_id"}, "font", []string{"id"}).
			OnDeleteAction(sqlgen.FKCascade).
			OnUpdateAction(sqlgen.FKCascade))

	got := s.ToSQL(sqlite.New())
	wantFragment := `FOREIGN KEY ("font_id") REFERENCES "font" ("id") ON DELETE CASCADE ON UPDATE CASCADE`
	if indexOf(got, wantFragment) < 0 {
		t.Fatalf("S6: expected fragment not found.\n got: %s\nwant fragment: %s", got, wantFragment)
	}
}
