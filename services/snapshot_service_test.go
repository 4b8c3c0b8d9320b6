package services

import (
	"testing"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotService(t *testing.T) *SnapshotService {
	t.Helper()
	db := newTestDB(t)
	return NewSnapshotService(db, artifact.NewLocalStore(t.TempDir(), "http://example.test"))
}

func TestSnapshotFollowsReorderedSequence(t *testing.T) {
	svc := newSnapshotService(t)
	db := svc.DB
	order := NewOrderService(db)

	c1 := makeCategory(t, db, "mains")
	i1 := makeItem(t, db, "i1", &c1.ID, 0)
	i2 := makeItem(t, db, "i2", &c1.ID, 1)
	i3 := makeItem(t, db, "i3", &c1.ID, 2)
	m := makeMenu(t, db, "dinner", c1.ID)

	require.NoError(t, order.ReorderItems(c1.ID, []uint{i3.ID, i1.ID, i2.ID}))

	menu, err := svc.Menus.FindByID(m.ID)
	require.NoError(t, err)
	doc, err := svc.Build(db, menu, nil, 1)
	require.NoError(t, err)

	require.Len(t, doc.Categories, 1)
	got := make([]uint, 0, 3)
	for _, it := range doc.Categories[0].Items {
		got = append(got, it.ID)
	}
	assert.Equal(t, []uint{i3.ID, i1.ID, i2.ID}, got,
		"snapshot order follows the reorder, not creation time")
}

func TestSnapshotExcludesInactiveItems(t *testing.T) {
	svc := newSnapshotService(t)
	db := svc.DB

	c1 := makeCategory(t, db, "mains")
	active := makeItem(t, db, "active", &c1.ID, 0)
	inactive := makeItem(t, db, "hidden", &c1.ID, 1)
	require.NoError(t, db.Model(&entity.Item{}).Where("id = ?", inactive.ID).
		Update("is_active", false).Error)
	m := makeMenu(t, db, "dinner", c1.ID)

	menu, err := svc.Menus.FindByID(m.ID)
	require.NoError(t, err)
	doc, err := svc.Build(db, menu, nil, 1)
	require.NoError(t, err)

	require.Len(t, doc.Categories[0].Items, 1)
	assert.Equal(t, active.ID, doc.Categories[0].Items[0].ID)
}

func TestSnapshotCategoriesFollowMenuOrder(t *testing.T) {
	svc := newSnapshotService(t)
	db := svc.DB

	c1 := makeCategory(t, db, "starters")
	c2 := makeCategory(t, db, "mains")
	c3 := makeCategory(t, db, "desserts")
	m := makeMenu(t, db, "dinner", c2.ID, c3.ID, c1.ID)

	menu, err := svc.Menus.FindByID(m.ID)
	require.NoError(t, err)
	doc, err := svc.Build(db, menu, nil, 1)
	require.NoError(t, err)

	require.Len(t, doc.Categories, 3)
	assert.Equal(t, c2.ID, doc.Categories[0].ID)
	assert.Equal(t, c3.ID, doc.Categories[1].ID)
	assert.Equal(t, c1.ID, doc.Categories[2].ID)
}

func TestSnapshotCarriesChildListsAndRestaurant(t *testing.T) {
	svc := newSnapshotService(t)
	db := svc.DB

	c1 := makeCategory(t, db, "mains")
	require.NoError(t, db.Create(&entity.CategoryExtra{CategoryID: c1.ID, Name: "side salad", Price: 350}).Error)

	item := &entity.Item{
		Name: "burger", Price: 1200, IsActive: true, IsVegetarian: true,
		CategoryID: &c1.ID,
		Options:    []entity.ItemOption{{Name: "single", Price: 0}, {Name: "double", Price: 300}},
		Allergies:  []entity.ItemAllergy{{Name: "gluten"}},
	}
	item.RecalcFlags()
	require.NoError(t, db.Create(item).Error)

	m := makeMenu(t, db, "dinner", c1.ID)
	restaurant := &entity.Restaurant{Name: "Sebastians", Phone: "012345"}

	menu, err := svc.Menus.FindByID(m.ID)
	require.NoError(t, err)
	doc, err := svc.Build(db, menu, restaurant, 3)
	require.NoError(t, err)

	assert.Equal(t, "Sebastians", doc.Restaurant.Name)
	assert.Equal(t, 3, doc.Metadata.Version)
	require.Len(t, doc.Categories[0].Extras, 1)
	assert.Equal(t, int64(350), doc.Categories[0].Extras[0].Price)

	gi := doc.Categories[0].Items[0]
	require.Len(t, gi.Options, 2)
	assert.Equal(t, "single", gi.Options[0].Name)
	assert.Equal(t, []string{"gluten"}, gi.Allergies)
	assert.True(t, gi.Flags.Vegetarian)
}
