package postgres

import (
	"io/fs"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/migrations"
)

// The stores are unit-tested against mocks, so nothing else catches a query
// referencing a column the migrations never create. These tests parse the
// embedded schema and check every column the SQL statements name against it.

var createTableRegex = regexp.MustCompile(`(?s)CREATE TABLE (\w+) \(\n(.*?)\n\);`)

// sqlKeywords are line-leading tokens inside a CREATE TABLE body that do not
// declare a column.
var sqlKeywords = map[string]bool{
	"CHECK": true, "CONSTRAINT": true, "PRIMARY": true,
	"FOREIGN": true, "UNIQUE": true,
}

// loadSchema parses the embedded migrations into a table -> column set map.
func loadSchema(t *testing.T) map[string]map[string]bool {
	t.Helper()

	schema := map[string]map[string]bool{}
	entries, err := fs.ReadDir(migrations.FS, ".")
	require.NoError(t, err)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := fs.ReadFile(migrations.FS, entry.Name())
		require.NoError(t, err)

		for _, match := range createTableRegex.FindAllStringSubmatch(string(content), -1) {
			table, body := match[1], match[2]
			columns := map[string]bool{}
			for _, line := range strings.Split(body, "\n") {
				fields := strings.Fields(line)
				if len(fields) == 0 || sqlKeywords[fields[0]] {
					continue
				}
				columns[fields[0]] = true
			}
			require.NotEmpty(t, columns, "no columns parsed for table %s", table)
			schema[table] = columns
		}
	}
	require.Contains(t, schema, "services")
	require.Contains(t, schema, "appointments")
	return schema
}

// normalizeColumn strips cast suffixes and surrounding whitespace from a
// column reference in a query.
func normalizeColumn(raw string) string {
	col := strings.TrimSpace(raw)
	if i := strings.Index(col, "::"); i >= 0 {
		col = col[:i]
	}
	return col
}

var columnNameRegex = regexp.MustCompile(`^[a-z_]+$`)

func TestSelectColumnsMatchSchema(t *testing.T) {
	t.Parallel()
	schema := loadSchema(t)

	t.Run("service columns", func(t *testing.T) {
		t.Parallel()
		for _, raw := range strings.Split(serviceColumns, ",") {
			col := normalizeColumn(raw)
			assert.Contains(t, schema["services"], col, "serviceColumns names %q", col)
		}
	})

	t.Run("appointment join columns", func(t *testing.T) {
		t.Parallel()
		aliases := map[string]string{"a": "appointments", "s": "services", "u": "users"}
		refs := regexp.MustCompile(`\b([asu])\.(\w+)`).FindAllStringSubmatch(appointmentQuery, -1)
		require.NotEmpty(t, refs)
		for _, ref := range refs {
			table, col := aliases[ref[1]], ref[2]
			assert.Contains(t, schema[table], col, "appointmentQuery names %s.%s", ref[1], col)
		}
	})
}

var (
	insertRegex    = regexp.MustCompile(`INSERT INTO (\w+)\s*\(([^)]+)\)`)
	updateRegex    = regexp.MustCompile(`(?s)UPDATE (\w+)\s+SET\s+(.+?)\s+WHERE`)
	setColumnRegex = regexp.MustCompile(`(\w+)\s*=`)
)

// TestWriteStatementsMatchSchema scans the store sources for INSERT and
// UPDATE statements and checks each named column against the migrations.
func TestWriteStatementsMatchSchema(t *testing.T) {
	t.Parallel()
	schema := loadSchema(t)

	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	checked := 0
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), "_store.go") {
			continue
		}
		content, err := os.ReadFile(entry.Name())
		require.NoError(t, err)
		source := string(content)

		for _, match := range insertRegex.FindAllStringSubmatch(source, -1) {
			table, list := match[1], match[2]
			require.Contains(t, schema, table, "%s inserts into unknown table %s", entry.Name(), table)
			for _, raw := range strings.Split(list, ",") {
				col := normalizeColumn(raw)
				if !columnNameRegex.MatchString(col) {
					continue
				}
				assert.Contains(t, schema[table], col, "%s inserts column %q into %s", entry.Name(), col, table)
				checked++
			}
		}

		for _, match := range updateRegex.FindAllStringSubmatch(source, -1) {
			table, setClause := match[1], match[2]
			require.Contains(t, schema, table, "%s updates unknown table %s", entry.Name(), table)
			for _, ref := range setColumnRegex.FindAllStringSubmatch(setClause, -1) {
				col := ref[1]
				assert.Contains(t, schema[table], col, "%s updates column %q of %s", entry.Name(), col, table)
				checked++
			}
		}
	}
	require.NotZero(t, checked, "no INSERT or UPDATE statements found in store sources")
}
