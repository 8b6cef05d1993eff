package postgres

import (
	"os"
	"regexp"
	"sync"
	"testing"

	"bazaar/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile("../../../../migrations/postgres/" + name)
	require.NoError(t, err)

	return string(data)
}

func TestMigration_CreatesEveryTable(t *testing.T) {
	up := readMigration(t, "000001_catalog_location.up.sql")

	for _, table := range []string{"categories", "users", "products"} {
		assert.Regexp(t, regexp.MustCompile(`CREATE TABLE IF NOT EXISTS `+table+` \(`), up, table)
	}
	assert.NotContains(t, up, "ALTER TABLE")
	assert.NotContains(t, up, "uuid_generate_v7", "only built-in uuid defaults are available on a fresh database")
}

func TestMigration_CoversModelColumns(t *testing.T) {
	up := readMigration(t, "000001_catalog_location.up.sql")

	for _, m := range []any{&model.ProductModel{}, &model.UserModel{}} {
		s, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, field := range s.Fields {
			if field.DBName == "" || field.IgnoreMigration {
				continue
			}
			assert.Regexp(t, regexp.MustCompile(`(?m)^\s+`+field.DBName+`\s`), up, "%s.%s", s.Table, field.DBName)
		}
	}
}

func TestMigration_DownDropsEveryTable(t *testing.T) {
	down := readMigration(t, "000001_catalog_location.down.sql")

	for _, table := range []string{"products", "users", "categories"} {
		assert.Contains(t, down, "DROP TABLE IF EXISTS "+table+";")
	}
}
