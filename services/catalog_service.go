// services/catalog_service.go
package services

import (
	"errors"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/Networkcaretaker/sebastians-sub000/utils"
	"gorm.io/gorm"
)

// CatalogService handles entity CRUD. Relationship fields never pass
// through here; controllers route those to SyncService.
type CatalogService struct {
	DB   *gorm.DB
	Sync *SyncService
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db, Sync: NewSyncService(db)}
}

// ---- Items ----

// UpdateItemCommand is a partial update; nil fields are left untouched.
// Child lists are replaced wholesale when present. Rows that keep their
// id keep their translations.
type UpdateItemCommand struct {
	Name         *string                `json:"name"`
	Description  *string                `json:"description"`
	Price        *int64                 `json:"price"`
	IsActive     *bool                  `json:"isActive"`
	IsVegetarian *bool                  `json:"isVegetarian"`
	IsVegan      *bool                  `json:"isVegan"`
	IsSpicy      *bool                  `json:"isSpicy"`
	Options      *[]entity.ItemOption   `json:"options"`
	Extras       *[]entity.ItemExtra    `json:"extras"`
	Addons       *[]entity.ItemAddon    `json:"addons"`
	Allergies    *[]entity.ItemAllergy  `json:"allergies"`
}

func (s *CatalogService) CreateItem(item *entity.Item) error {
	normalizeItemChildren(item)
	item.RecalcFlags()
	if err := entity.ValidateItem(item); err != nil {
		return err
	}
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if item.CategoryID != nil {
			ok, err := s.Sync.Categories.Exists(tx, *item.CategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("category", *item.CategoryID)
			}
			// zero means "no explicit position": append at the end.
			// An explicit slot comes via ReorderItems afterwards.
			if item.MenuOrder == 0 {
				max, err := s.Sync.Items.MaxOrder(tx, *item.CategoryID)
				if err != nil {
					return err
				}
				item.MenuOrder = max + 1
			}
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		ids, err := s.Sync.TouchMenusForItem(tx, item)
		if err != nil {
			return err
		}
		stale = ids
		return nil
	})
	if err != nil {
		return err
	}
	s.Sync.notifyStale(stale)
	return nil
}

func (s *CatalogService) UpdateItem(itemID uint, cmd UpdateItemCommand) (*entity.Item, error) {
	var out *entity.Item
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := loadItem(tx, itemID)
		if err != nil {
			return err
		}
		if cmd.Name != nil {
			item.Name = *cmd.Name
		}
		if cmd.Description != nil {
			item.Description = *cmd.Description
		}
		if cmd.Price != nil {
			item.Price = *cmd.Price
		}
		if cmd.IsActive != nil {
			item.IsActive = *cmd.IsActive
		}
		if cmd.IsVegetarian != nil {
			item.IsVegetarian = *cmd.IsVegetarian
		}
		if cmd.IsVegan != nil {
			item.IsVegan = *cmd.IsVegan
		}
		if cmd.IsSpicy != nil {
			item.IsSpicy = *cmd.IsSpicy
		}

		if cmd.Options != nil {
			item.Options = *cmd.Options
		}
		if cmd.Extras != nil {
			item.Extras = *cmd.Extras
		}
		if cmd.Addons != nil {
			item.Addons = *cmd.Addons
		}
		if cmd.Allergies != nil {
			item.Allergies = *cmd.Allergies
		}
		normalizeItemChildren(item)
		item.RecalcFlags()
		if err := entity.ValidateItem(item); err != nil {
			return err
		}

		if cmd.Options != nil {
			if err := s.replaceItemRows(tx, item, entity.FieldOption); err != nil {
				return err
			}
		}
		if cmd.Extras != nil {
			if err := s.replaceItemRows(tx, item, entity.FieldExtra); err != nil {
				return err
			}
		}
		if cmd.Addons != nil {
			if err := s.replaceItemRows(tx, item, entity.FieldAddon); err != nil {
				return err
			}
		}
		if cmd.Allergies != nil {
			if err := tx.Where("item_id = ?", item.ID).Delete(&entity.ItemAllergy{}).Error; err != nil {
				return err
			}
			for i := range item.Allergies {
				item.Allergies[i].ID = 0
				item.Allergies[i].ItemID = item.ID
				if err := tx.Create(&item.Allergies[i]).Error; err != nil {
					return err
				}
			}
		}

		fields := map[string]interface{}{
			"name":          item.Name,
			"description":   item.Description,
			"price":         item.Price,
			"is_active":     item.IsActive,
			"is_vegetarian": item.IsVegetarian,
			"is_vegan":      item.IsVegan,
			"is_spicy":      item.IsSpicy,
			"has_options":   item.HasOptions,
			"has_extras":    item.HasExtras,
			"has_addons":    item.HasAddons,
		}
		if err := tx.Model(&entity.Item{}).Where("id = ?", item.ID).Updates(fields).Error; err != nil {
			return err
		}
		out = item
		ids, err := s.Sync.TouchMenusForItem(tx, item)
		if err != nil {
			return err
		}
		stale = ids
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Sync.notifyStale(stale)
	return out, nil
}

// replaceItemRows reconciles one of the item's child lists against the
// stored rows: rows missing from the new list are deleted along with
// their translations, surviving rows are updated in place, new rows are
// created. Position follows list order.
func (s *CatalogService) replaceItemRows(tx *gorm.DB, item *entity.Item, field string) error {
	switch field {
	case entity.FieldOption:
		for i := range item.Options {
			row := &item.Options[i]
			row.ItemID = item.ID
			row.Position = i
			if row.ID != 0 {
				fields := map[string]interface{}{"name": row.Name, "price": row.Price, "position": row.Position}
				if err := tx.Model(&entity.ItemOption{}).Where("id = ? AND item_id = ?", row.ID, item.ID).Updates(fields).Error; err != nil {
					return err
				}
			} else if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return s.deleteOrphanRows(tx, item.ID, field, &entity.ItemOption{}, rowIDsFromOptions(item.Options))
	case entity.FieldExtra:
		for i := range item.Extras {
			row := &item.Extras[i]
			row.ItemID = item.ID
			row.Position = i
			if row.ID != 0 {
				fields := map[string]interface{}{"name": row.Name, "price": row.Price, "position": row.Position}
				if err := tx.Model(&entity.ItemExtra{}).Where("id = ? AND item_id = ?", row.ID, item.ID).Updates(fields).Error; err != nil {
					return err
				}
			} else if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return s.deleteOrphanRows(tx, item.ID, field, &entity.ItemExtra{}, rowIDsFromExtras(item.Extras))
	case entity.FieldAddon:
		for i := range item.Addons {
			row := &item.Addons[i]
			row.ItemID = item.ID
			row.Position = i
			if row.ID != 0 {
				fields := map[string]interface{}{"name": row.Name, "position": row.Position}
				if err := tx.Model(&entity.ItemAddon{}).Where("id = ? AND item_id = ?", row.ID, item.ID).Updates(fields).Error; err != nil {
					return err
				}
			} else if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return s.deleteOrphanRows(tx, item.ID, field, &entity.ItemAddon{}, rowIDsFromAddons(item.Addons))
	}
	return nil
}

// deleteOrphanRows removes stored child rows absent from the incoming
// list, plus the translations addressed to them.
func (s *CatalogService) deleteOrphanRows(tx *gorm.DB, itemID uint, field string, model interface{}, kept []uint) error {
	q := tx.Model(model).Where("item_id = ?", itemID)
	if len(kept) > 0 {
		q = q.Where("id NOT IN ?", kept)
	}
	var removed []uint
	if err := q.Pluck("id", &removed).Error; err != nil {
		return err
	}
	if len(removed) == 0 {
		return nil
	}
	if err := tx.Where("id IN ?", removed).Delete(model).Error; err != nil {
		return err
	}
	return s.Sync.Translations.DeleteRows(tx, entity.EntityTypeItem, field, removed)
}

// ---- Categories ----

type UpdateCategoryCommand struct {
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	Header      *string                  `json:"header"`
	Footer      *string                  `json:"footer"`
	Extras      *[]entity.CategoryExtra  `json:"extras"`
	Addons      *[]entity.CategoryAddon  `json:"addons"`
}

func (s *CatalogService) CreateCategory(cat *entity.Category) error {
	for i := range cat.Extras {
		cat.Extras[i].Position = i
	}
	for i := range cat.Addons {
		cat.Addons[i].Position = i
	}
	if err := entity.ValidateCategory(cat); err != nil {
		return err
	}
	return s.DB.Create(cat).Error
}

func (s *CatalogService) UpdateCategory(categoryID uint, cmd UpdateCategoryCommand) (*entity.Category, error) {
	var out *entity.Category
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cat entity.Category
		if err := tx.Preload("Extras").Preload("Addons").First(&cat, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("category", categoryID)
			}
			return err
		}
		if cmd.Name != nil {
			cat.Name = *cmd.Name
		}
		if cmd.Description != nil {
			cat.Description = *cmd.Description
		}
		if cmd.Header != nil {
			cat.Header = *cmd.Header
		}
		if cmd.Footer != nil {
			cat.Footer = *cmd.Footer
		}
		if cmd.Extras != nil {
			cat.Extras = *cmd.Extras
		}
		if cmd.Addons != nil {
			cat.Addons = *cmd.Addons
		}
		for i := range cat.Extras {
			cat.Extras[i].Position = i
		}
		for i := range cat.Addons {
			cat.Addons[i].Position = i
		}
		if err := entity.ValidateCategory(&cat); err != nil {
			return err
		}

		if cmd.Extras != nil {
			if err := s.replaceCategoryExtras(tx, &cat); err != nil {
				return err
			}
		}
		if cmd.Addons != nil {
			if err := s.replaceCategoryAddons(tx, &cat); err != nil {
				return err
			}
		}

		fields := map[string]interface{}{
			"name":        cat.Name,
			"description": cat.Description,
			"header":      cat.Header,
			"footer":      cat.Footer,
		}
		if err := tx.Model(&entity.Category{}).Where("id = ?", cat.ID).Updates(fields).Error; err != nil {
			return err
		}
		out = &cat
		ids, err := s.Sync.touchMenusForCategory(tx, cat.ID)
		if err != nil {
			return err
		}
		stale = ids
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Sync.notifyStale(stale)
	return out, nil
}

func (s *CatalogService) replaceCategoryExtras(tx *gorm.DB, cat *entity.Category) error {
	var all []uint
	for i := range cat.Extras {
		row := &cat.Extras[i]
		row.CategoryID = cat.ID
		if row.ID != 0 {
			fields := map[string]interface{}{"name": row.Name, "price": row.Price, "position": row.Position}
			if err := tx.Model(&entity.CategoryExtra{}).Where("id = ? AND category_id = ?", row.ID, cat.ID).Updates(fields).Error; err != nil {
				return err
			}
		} else if err := tx.Create(row).Error; err != nil {
			return err
		}
	}
	for _, row := range cat.Extras {
		if row.ID != 0 {
			all = append(all, row.ID)
		}
	}
	q := tx.Model(&entity.CategoryExtra{}).Where("category_id = ?", cat.ID)
	if len(all) > 0 {
		q = q.Where("id NOT IN ?", all)
	}
	var removed []uint
	if err := q.Pluck("id", &removed).Error; err != nil {
		return err
	}
	if len(removed) == 0 {
		return nil
	}
	if err := tx.Where("id IN ?", removed).Delete(&entity.CategoryExtra{}).Error; err != nil {
		return err
	}
	return s.Sync.Translations.DeleteRows(tx, entity.EntityTypeCategory, entity.FieldExtra, removed)
}

func (s *CatalogService) replaceCategoryAddons(tx *gorm.DB, cat *entity.Category) error {
	var all []uint
	for i := range cat.Addons {
		row := &cat.Addons[i]
		row.CategoryID = cat.ID
		if row.ID != 0 {
			fields := map[string]interface{}{"name": row.Name, "position": row.Position}
			if err := tx.Model(&entity.CategoryAddon{}).Where("id = ? AND category_id = ?", row.ID, cat.ID).Updates(fields).Error; err != nil {
				return err
			}
		} else if err := tx.Create(row).Error; err != nil {
			return err
		}
	}
	for _, row := range cat.Addons {
		if row.ID != 0 {
			all = append(all, row.ID)
		}
	}
	q := tx.Model(&entity.CategoryAddon{}).Where("category_id = ?", cat.ID)
	if len(all) > 0 {
		q = q.Where("id NOT IN ?", all)
	}
	var removed []uint
	if err := q.Pluck("id", &removed).Error; err != nil {
		return err
	}
	if len(removed) == 0 {
		return nil
	}
	if err := tx.Where("id IN ?", removed).Delete(&entity.CategoryAddon{}).Error; err != nil {
		return err
	}
	return s.Sync.Translations.DeleteRows(tx, entity.EntityTypeCategory, entity.FieldAddon, removed)
}

// ---- Menus ----

type UpdateMenuCommand struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Type         *string  `json:"type"`
	IsActive     *bool    `json:"isActive"`
	DisplayOrder *int     `json:"displayOrder"`
	ImageURL     *string  `json:"imageUrl"`
	ImageRatio   *float64 `json:"imageRatio"`
}

func (s *CatalogService) CreateMenu(menu *entity.Menu) error {
	if menu.Type == "" {
		menu.Type = entity.MenuTypeWeb
	}
	menu.PublishStatus = entity.PublishStatusDraft
	if menu.Slug == "" {
		menu.Slug = utils.Slugify(menu.Name)
		// soft-deleted menus still occupy the unique slug index
		var taken int64
		if err := s.DB.Unscoped().Model(&entity.Menu{}).Where("slug = ?", menu.Slug).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			menu.Slug = utils.UniqueSlug(menu.Name)
		}
	}
	if err := entity.ValidateMenu(menu); err != nil {
		return err
	}
	return s.DB.Create(menu).Error
}

func (s *CatalogService) UpdateMenu(menuID uint, cmd UpdateMenuCommand) (*entity.Menu, error) {
	var out *entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var menu entity.Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("menu", menuID)
			}
			return err
		}
		if cmd.Name != nil {
			menu.Name = *cmd.Name
		}
		if cmd.Description != nil {
			menu.Description = *cmd.Description
		}
		if cmd.Type != nil {
			menu.Type = *cmd.Type
		}
		if cmd.IsActive != nil {
			menu.IsActive = *cmd.IsActive
		}
		if cmd.DisplayOrder != nil {
			menu.DisplayOrder = *cmd.DisplayOrder
		}
		if cmd.ImageURL != nil {
			menu.ImageURL = *cmd.ImageURL
		}
		if cmd.ImageRatio != nil {
			menu.ImageRatio = *cmd.ImageRatio
		}
		if err := entity.ValidateMenu(&menu); err != nil {
			return err
		}
		if err := tx.Save(&menu).Error; err != nil {
			return err
		}
		out = &menu
		return nil
	})
	return out, err
}

// ---- helpers ----

func loadItem(tx *gorm.DB, itemID uint) (*entity.Item, error) {
	var item entity.Item
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
	err := tx.
		Preload("Options", byPosition).
		Preload("Extras", byPosition).
		Preload("Addons", byPosition).
		Preload("Allergies").
		First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item", itemID)
		}
		return nil, err
	}
	return &item, nil
}

func normalizeItemChildren(item *entity.Item) {
	for i := range item.Options {
		item.Options[i].Position = i
	}
	for i := range item.Extras {
		item.Extras[i].Position = i
	}
	for i := range item.Addons {
		item.Addons[i].Position = i
	}
}

func rowIDsFromOptions(rows []entity.ItemOption) []uint {
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		if r.ID != 0 {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func rowIDsFromExtras(rows []entity.ItemExtra) []uint {
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		if r.ID != 0 {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func rowIDsFromAddons(rows []entity.ItemAddon) []uint {
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		if r.ID != 0 {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
