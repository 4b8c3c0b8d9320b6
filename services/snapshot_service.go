// services/snapshot_service.go
package services

import (
	"encoding/json"
	"time"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/Networkcaretaker/sebastians-sub000/repository"
	"gorm.io/gorm"
)

// SnapshotService projects the live graph into the self-contained public
// document. Categories come out in the menu's list order, items in
// menu_order ascending with id as tiebreak, inactive items excluded.
type SnapshotService struct {
	DB    *gorm.DB
	Menus *repository.MenuRepository
	Items *repository.ItemRepository
	Store artifact.Store
}

func NewSnapshotService(db *gorm.DB, store artifact.Store) *SnapshotService {
	return &SnapshotService{
		DB:    db,
		Menus: repository.NewMenuRepository(db),
		Items: repository.NewItemRepository(db),
		Store: store,
	}
}

// Build assembles the document for a menu at the given version without
// persisting anything.
func (s *SnapshotService) Build(tx *gorm.DB, menu *entity.Menu, restaurant *entity.Restaurant, version int) (*entity.GeneratedMenu, error) {
	doc := &entity.GeneratedMenu{
		Metadata: entity.GeneratedMetadata{
			ID:          menu.ID,
			Name:        menu.Name,
			Description: menu.Description,
			Type:        menu.Type,
			Slug:        menu.Slug,
			LastUpdated: time.Now().UTC(),
			Version:     version,
		},
		Categories: []entity.GeneratedCategory{},
	}
	if restaurant != nil {
		doc.Restaurant = entity.GeneratedRestaurant{
			Name:    restaurant.Name,
			Address: restaurant.Address,
			Phone:   restaurant.Phone,
			Email:   restaurant.Email,
			Website: restaurant.Website,
			LogoURL: restaurant.LogoURL,
		}
	}

	cats, err := s.Menus.OrderedCategories(tx, menu.ID)
	if err != nil {
		return nil, err
	}
	for _, cat := range cats {
		gc := entity.GeneratedCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Header:      cat.Header,
			Footer:      cat.Footer,
			Extras:      []entity.GeneratedExtra{},
			Addons:      []string{},
			Items:       []entity.GeneratedItem{},
		}
		for _, e := range cat.Extras {
			gc.Extras = append(gc.Extras, entity.GeneratedExtra{Name: e.Name, Price: e.Price})
		}
		for _, a := range cat.Addons {
			gc.Addons = append(gc.Addons, a.Name)
		}

		items, err := s.loadActiveItems(tx, cat.ID)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			gi := entity.GeneratedItem{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
				Options:     []entity.GeneratedExtra{},
				Extras:      []entity.GeneratedExtra{},
				Addons:      []string{},
				Allergies:   []string{},
				Flags: entity.GeneratedFlags{
					Vegetarian: it.IsVegetarian,
					Active:     it.IsActive,
				},
				Order: it.MenuOrder,
			}
			for _, o := range it.Options {
				gi.Options = append(gi.Options, entity.GeneratedExtra{Name: o.Name, Price: o.Price})
			}
			for _, e := range it.Extras {
				gi.Extras = append(gi.Extras, entity.GeneratedExtra{Name: e.Name, Price: e.Price})
			}
			for _, a := range it.Addons {
				gi.Addons = append(gi.Addons, a.Name)
			}
			for _, al := range it.Allergies {
				gi.Allergies = append(gi.Allergies, al.Name)
			}
			gc.Items = append(gc.Items, gi)
		}
		doc.Categories = append(doc.Categories, gc)
	}
	return doc, nil
}

func (s *SnapshotService) loadActiveItems(tx *gorm.DB, categoryID uint) ([]entity.Item, error) {
	var items []entity.Item
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
	err := tx.
		Preload("Options", byPosition).
		Preload("Extras", byPosition).
		Preload("Addons", byPosition).
		Preload("Allergies").
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("menu_order ASC, id ASC").
		Find(&items).Error
	return items, err
}

// ArtifactPath is where a menu's current snapshot lives in the store.
func ArtifactPath(menu *entity.Menu) string {
	return "menus/" + menu.Slug + ".json"
}

// Generate builds the next-version document and writes it through the
// artifact store, returning the document and its public URL. Nothing is
// written to the catalog itself.
func (s *SnapshotService) Generate(tx *gorm.DB, menu *entity.Menu, restaurant *entity.Restaurant) (*entity.GeneratedMenu, string, error) {
	doc, err := s.Build(tx, menu, restaurant, menu.Version+1)
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", err
	}
	url, err := s.Store.Put(ArtifactPath(menu), data)
	if err != nil {
		return nil, "", err
	}
	return doc, url, nil
}
