// Package mapping holds the per-dialect lookup tables the dialect/
// backends consult for type names and operator spellings. It carries no
// dependency on the sqlgen package itself so that both sqlgen and every
// dialect/* package can import it without risk of a cycle.
package mapping

// TypeMap maps a logical column-type key to its dialect-specific spelling.
// Usage: TypeMap["PostgreSQL"]["INT"] returns "integer".
var TypeMap = map[string]map[string]string{
	"MySQL": {
		"INT":      "int",
		"SMALLINT": "smallint",
		"BIGINT":   "bigint",
		"TEXT":     "text",
		"FLOAT":    "float",
		"DOUBLE":   "double",
		"BOOLEAN":  "boolean",
		"BLOB":     "blob",
		"DATE":     "date",
		"DATETIME": "datetime",
		"DECIMAL":  "decimal",
		"JSON":     "json",
	},
	"PostgreSQL": {
		"INT":      "integer",
		"SMALLINT": "smallint",
		"BIGINT":   "bigint",
		"TEXT":     "text",
		"FLOAT":    "real",
		"DOUBLE":   "double precision",
		"BOOLEAN":  "boolean",
		"BLOB":     "bytea",
		"DATE":     "date",
		"DATETIME": "timestamp",
		"DECIMAL":  "numeric",
		"JSON":     "jsonb",
	},
	"SQLite": {
		"INT":      "integer",
		"SMALLINT": "integer",
		"BIGINT":   "integer",
		"TEXT":     "text",
		"FLOAT":    "real",
		"DOUBLE":   "real",
		"BOOLEAN":  "integer",
		"BLOB":     "blob",
		"DATE":     "date",
		"DATETIME": "datetime",
		"DECIMAL":  "real",
		"JSON":     "text",
	},
}

// OperatorMap maps a logical operator key to its dialect-specific token or
// function spelling. Usage: OperatorMap["MySQL"]["CONCAT"] returns
// "CONCAT" (a function), while OperatorMap["PostgreSQL"]["CONCAT"] returns
// "||" (an infix operator). Callers branch on whether the result looks
// like an identifier or a symbol.
var OperatorMap = map[string]map[string]string{
	"MySQL": {
		"CONCAT":       "CONCAT",
		"ILIKE":        "LIKE", // MySQL LIKE is case-insensitive by default collation
		"STR_CONTAINS": "LOCATE",
	},
	"PostgreSQL": {
		"CONCAT":       "||",
		"ILIKE":        "ILIKE",
		"STR_CONTAINS": "POSITION",
	},
	"SQLite": {
		"CONCAT":       "||",
		"ILIKE":        "LIKE",
		"STR_CONTAINS": "INSTR",
	},
}

// Lookup returns m[dialect][key], reporting ok=false when either the
// dialect or the key is absent.
func Lookup(m map[string]map[string]string, dialect, key string) (string, bool) {
	tbl, ok := m[dialect]
	if !ok {
		return "", false
	}
	v, ok := tbl[key]
	return v, ok
}
