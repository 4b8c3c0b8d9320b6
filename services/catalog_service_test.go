package services

import (
	"testing"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemRecalculatesFlags(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	item := &entity.Item{
		Name: "burger", Price: 1200, IsActive: true,
		Options: []entity.ItemOption{{Name: "single"}, {Name: "double", Price: 300}},
		// authored flags are ignored; derivation wins
		HasAddons: true,
	}
	require.NoError(t, svc.CreateItem(item))

	got, err := svc.Sync.Items.FindByID(item.ID)
	require.NoError(t, err)
	assert.True(t, got.HasOptions)
	assert.False(t, got.HasExtras)
	assert.False(t, got.HasAddons)
}

func TestCreateItemNegativePriceRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	err := svc.CreateItem(&entity.Item{Name: "bad", Price: -1})
	assert.True(t, apperr.IsValidation(err))

	var count int64
	require.NoError(t, db.Model(&entity.Item{}).Count(&count).Error)
	assert.Zero(t, count, "nothing partially applied")
}

func TestCreateItemAppendsToCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	c1 := makeCategory(t, db, "mains")
	makeItem(t, db, "existing", &c1.ID, 0)

	item := &entity.Item{Name: "new", Price: 900, IsActive: true, CategoryID: &c1.ID}
	require.NoError(t, svc.CreateItem(item))
	assert.Equal(t, 1, itemByID(t, db, item.ID).MenuOrder)
}

func TestUpdateItemPartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	c1 := makeCategory(t, db, "mains")
	item := makeItem(t, db, "soup", &c1.ID, 0)

	newPrice := int64(1050)
	updated, err := svc.UpdateItem(item.ID, UpdateItemCommand{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, int64(1050), updated.Price)
	assert.Equal(t, "soup", updated.Name, "unset fields untouched")
}

func TestUpdateItemReplacesOptionsAndPrunesTranslations(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	item := &entity.Item{
		Name: "burger", Price: 1200, IsActive: true,
		Options: []entity.ItemOption{{Name: "single"}, {Name: "double", Price: 300}},
	}
	item.RecalcFlags()
	require.NoError(t, db.Create(item).Error)
	keptRow := item.Options[0]
	droppedRow := item.Options[1]

	for _, row := range []entity.ItemOption{keptRow, droppedRow} {
		require.NoError(t, db.Create(&entity.Translation{
			EntityType: entity.EntityTypeItem, EntityID: item.ID,
			Language: "de", Field: entity.FieldOption, RowID: row.ID, Text: "übersetzt",
		}).Error)
	}

	// drop the second option, keep the first by id
	_, err := svc.UpdateItem(item.ID, UpdateItemCommand{
		Options: &[]entity.ItemOption{keptRow},
	})
	require.NoError(t, err)

	var rows []entity.ItemOption
	require.NoError(t, db.Where("item_id = ?", item.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, keptRow.ID, rows[0].ID)

	var kept, dropped int64
	require.NoError(t, db.Model(&entity.Translation{}).Where("row_id = ?", keptRow.ID).Count(&kept).Error)
	require.NoError(t, db.Model(&entity.Translation{}).Where("row_id = ?", droppedRow.ID).Count(&dropped).Error)
	assert.Equal(t, int64(1), kept, "translation for the surviving row stays")
	assert.Zero(t, dropped, "translation for the deleted row is pruned")
}

func TestUpdateItemClearingOptionsClearsFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	item := &entity.Item{
		Name: "burger", Price: 1200, IsActive: true,
		Options: []entity.ItemOption{{Name: "single"}},
	}
	item.RecalcFlags()
	require.NoError(t, db.Create(item).Error)

	empty := []entity.ItemOption{}
	updated, err := svc.UpdateItem(item.ID, UpdateItemCommand{Options: &empty})
	require.NoError(t, err)
	assert.False(t, updated.HasOptions)
}

func TestCreateMenuDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	menu := &entity.Menu{Name: "Summer Menu"}
	require.NoError(t, svc.CreateMenu(menu))

	assert.Equal(t, entity.MenuTypeWeb, menu.Type)
	assert.Equal(t, entity.PublishStatusDraft, menu.PublishStatus)
	assert.Equal(t, "summer-menu", menu.Slug)

	// same name again: the derived slug is taken, so it gets a suffix
	second := &entity.Menu{Name: "Summer Menu"}
	require.NoError(t, svc.CreateMenu(second))
	assert.NotEqual(t, menu.Slug, second.Slug)
	assert.Contains(t, second.Slug, "summer-menu-")
}

func TestCreateMenuSlugAvoidsSoftDeletedMenu(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	sync := NewSyncService(db)

	first := &entity.Menu{Name: "Summer Menu"}
	require.NoError(t, svc.CreateMenu(first))
	require.NoError(t, sync.DeleteMenu(first.ID))

	// the deleted row still occupies the unique index
	again := &entity.Menu{Name: "Summer Menu"}
	require.NoError(t, svc.CreateMenu(again))
	assert.Contains(t, again.Slug, "summer-menu-")
}

func TestCreateItemHonorsExplicitOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	c1 := makeCategory(t, db, "mains")
	makeItem(t, db, "soup", &c1.ID, 0)

	item := &entity.Item{Name: "stew", Price: 900, IsActive: true, CategoryID: &c1.ID, MenuOrder: 5}
	require.NoError(t, svc.CreateItem(item))
	assert.Equal(t, 5, itemByID(t, db, item.ID).MenuOrder)
}

func TestUpdateMenuRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	m := makeMenu(t, db, "dinner")
	bad := "poster"
	_, err := svc.UpdateMenu(m.ID, UpdateMenuCommand{Type: &bad})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateCategoryReplacesExtras(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	cat := &entity.Category{
		Name:   "mains",
		Extras: []entity.CategoryExtra{{Name: "bread", Price: 200}},
	}
	require.NoError(t, svc.CreateCategory(cat))
	old := cat.Extras[0]

	updated, err := svc.UpdateCategory(cat.ID, UpdateCategoryCommand{
		Extras: &[]entity.CategoryExtra{{Name: "olives", Price: 300}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Extras, 1)
	assert.Equal(t, "olives", updated.Extras[0].Name)

	var count int64
	require.NoError(t, db.Model(&entity.CategoryExtra{}).Where("id = ?", old.ID).Count(&count).Error)
	assert.Zero(t, count)
}
