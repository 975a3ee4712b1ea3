package restaurant

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	dbpkg "github.com/ReserveAquiServices/api-reservas/internal/db"
	infra "github.com/ReserveAquiServices/api-reservas/internal/infra/repository"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, tableCount int) *models.Restaurant {
	t.Helper()

	owner := models.User{
		Name:         "Dono",
		Email:        "dono@reserveaqui.com.br",
		PasswordHash: "x",
		Role:         "owner",
	}
	require.NoError(t, db.Create(&owner).Error)

	rest := models.Restaurant{
		Name:       "Cantina da Esquina",
		Email:      "cantina@reserveaqui.com.br",
		OwnerID:    owner.ID,
		TableCount: tableCount,
		Timezone:   "UTC",
		Active:     true,
	}
	require.NoError(t, db.Create(&rest).Error)

	return &rest
}

func newProvisionUC(db *gorm.DB) *ProvisionTables {
	repo := infra.NewRestaurantGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return NewProvisionTables(repo, dispatcher)
}

func TestProvisionTablesCreatesMissingTables(t *testing.T) {
	db := setupDB(t)
	rest := seedRestaurant(t, db, 5)
	uc := newProvisionUC(db)

	created, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	var tables []models.Table
	require.NoError(t, db.
		Where("restaurant_id = ?", rest.ID).
		Order("number ASC").
		Find(&tables).Error)

	require.Len(t, tables, 5)
	for i, table := range tables {
		assert.Equal(t, i+1, table.Number)
		assert.Equal(t, 4, table.Capacity)
		assert.Equal(t, "available", table.Status)
		assert.True(t, table.Active)
	}
}

func TestProvisionTablesIsIdempotent(t *testing.T) {
	db := setupDB(t)
	rest := seedRestaurant(t, db, 5)
	uc := newProvisionUC(db)

	_, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)

	created, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var count int64
	db.Model(&models.Table{}).Where("restaurant_id = ?", rest.ID).Count(&count)
	assert.EqualValues(t, 5, count)
}

func TestProvisionTablesFillsGapsAroundManualTables(t *testing.T) {
	db := setupDB(t)
	rest := seedRestaurant(t, db, 5)
	uc := newProvisionUC(db)

	_, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)

	// Mesa criada manualmente dentro da faixa alvo futura.
	manual := models.Table{
		RestaurantID: rest.ID,
		Number:       8,
		Capacity:     4,
		Status:       "available",
		Active:       true,
	}
	require.NoError(t, db.Create(&manual).Error)

	rest.TableCount = 8
	require.NoError(t, db.Save(rest).Error)

	// Só os números ausentes (6 e 7) são criados; a mesa 8 manual fica.
	created, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	var numbers []int
	db.Model(&models.Table{}).
		Where("restaurant_id = ?", rest.ID).
		Order("number ASC").
		Pluck("number", &numbers)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, numbers)

	created, err = uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestProvisionTablesTopsUpAfterTableCountRaise(t *testing.T) {
	db := setupDB(t)
	rest := seedRestaurant(t, db, 5)
	uc := newProvisionUC(db)

	_, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)

	rest.TableCount = 8
	require.NoError(t, db.Save(rest).Error)

	created, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	var numbers []int
	db.Model(&models.Table{}).
		Where("restaurant_id = ?", rest.ID).
		Order("number ASC").
		Pluck("number", &numbers)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, numbers)
}

func TestProvisionTablesNeverRemovesTables(t *testing.T) {
	db := setupDB(t)
	rest := seedRestaurant(t, db, 5)
	uc := newProvisionUC(db)

	_, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)

	// Reduzir o alvo não apaga mesas existentes.
	rest.TableCount = 2
	require.NoError(t, db.Save(rest).Error)

	created, err := uc.Execute(context.Background(), rest.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var count int64
	db.Model(&models.Table{}).Where("restaurant_id = ?", rest.ID).Count(&count)
	assert.EqualValues(t, 5, count)
}
