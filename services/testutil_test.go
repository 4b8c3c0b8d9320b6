package services

import (
	"path/filepath"
	"testing"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.SetupJoinTable(&entity.Menu{}, "Categories", &entity.MenuCategory{}))
	require.NoError(t, db.AutoMigrate(
		&entity.Operator{},
		&entity.Restaurant{},
		&entity.Item{}, &entity.ItemOption{}, &entity.ItemExtra{}, &entity.ItemAddon{}, &entity.ItemAllergy{},
		&entity.Category{}, &entity.CategoryExtra{}, &entity.CategoryAddon{},
		&entity.Menu{}, &entity.MenuCategory{},
		&entity.Translation{},
	))
	return db
}

func makeCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()
	cat := &entity.Category{Name: name}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func makeItem(t *testing.T, db *gorm.DB, name string, categoryID *uint, order int) *entity.Item {
	t.Helper()
	item := &entity.Item{Name: name, Price: 950, IsActive: true, CategoryID: categoryID, MenuOrder: order}
	require.NoError(t, db.Create(item).Error)
	return item
}

func makeMenu(t *testing.T, db *gorm.DB, name string, categoryIDs ...uint) *entity.Menu {
	t.Helper()
	menu := &entity.Menu{
		Name:          name,
		Slug:          name,
		Type:          entity.MenuTypeWeb,
		IsActive:      true,
		PublishStatus: entity.PublishStatusDraft,
	}
	require.NoError(t, db.Create(menu).Error)
	for pos, catID := range categoryIDs {
		require.NoError(t, db.Create(&entity.MenuCategory{MenuID: menu.ID, CategoryID: catID, Position: pos}).Error)
	}
	return menu
}

func itemByID(t *testing.T, db *gorm.DB, id uint) *entity.Item {
	t.Helper()
	var item entity.Item
	require.NoError(t, db.First(&item, id).Error)
	return &item
}

func categoryItemIDs(t *testing.T, db *gorm.DB, categoryID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&entity.Item{}).
		Where("category_id = ?", categoryID).
		Order("menu_order ASC, id ASC").
		Pluck("id", &ids).Error)
	return ids
}

// checkGraph asserts the bidirectional reference invariants: every
// assigned item points at a live category, and no two items in one
// category share an ordinal slot with the same id twice.
func checkGraph(t *testing.T, db *gorm.DB) {
	t.Helper()
	var items []entity.Item
	require.NoError(t, db.Find(&items).Error)
	for _, it := range items {
		if it.CategoryID == nil {
			continue
		}
		var count int64
		require.NoError(t, db.Model(&entity.Category{}).Where("id = ?", *it.CategoryID).Count(&count).Error)
		require.Equalf(t, int64(1), count, "item %d points at missing category %d", it.ID, *it.CategoryID)
	}
	var joins []entity.MenuCategory
	require.NoError(t, db.Find(&joins).Error)
	for _, j := range joins {
		var count int64
		require.NoError(t, db.Model(&entity.Category{}).Where("id = ?", j.CategoryID).Count(&count).Error)
		require.Equalf(t, int64(1), count, "menu %d lists missing category %d", j.MenuID, j.CategoryID)
	}
}
