package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/inkwellhq/inkwell/pkg/internal/cache"
	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	database.C = db
}

func setupTestCache(t *testing.T) {
	t.Helper()
	require.NoError(t, cache.NewStore())
}

func createTestAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := services.NewAccount(name, name, "secret-"+name)
	require.NoError(t, err)
	return account
}

func createTestGroup(t *testing.T, alias string) models.Group {
	t.Helper()

	group, err := services.NewGroup(alias, "The "+alias+" group", "")
	require.NoError(t, err)
	return group
}
