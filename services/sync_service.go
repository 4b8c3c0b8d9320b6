// services/sync_service.go
package services

import (
	"errors"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/Networkcaretaker/sebastians-sub000/repository"
	"gorm.io/gorm"
)

// SyncService owns every mutation that touches a relationship field.
// Each operation computes the complete set of writes needed to keep the
// item<->category and menu<->category references consistent and applies
// them in one transaction.
type SyncService struct {
	DB           *gorm.DB
	Items        *repository.ItemRepository
	Categories   *repository.CategoryRepository
	Menus        *repository.MenuRepository
	Translations *repository.TranslationRepository
	Events       Notifier
}

func NewSyncService(db *gorm.DB) *SyncService {
	return &SyncService{
		DB:           db,
		Items:        repository.NewItemRepository(db),
		Categories:   repository.NewCategoryRepository(db),
		Menus:        repository.NewMenuRepository(db),
		Translations: repository.NewTranslationRepository(db),
	}
}

// SetItemCategory moves an item to another category (or out of any, when
// newCategoryID is nil). The item is appended at the end of the target
// category. Calling it again with the same arguments is a no-op.
func (s *SyncService) SetItemCategory(itemID uint, newCategoryID *uint) error {
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item entity.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("item", itemID)
			}
			return err
		}

		if sameCategory(item.CategoryID, newCategoryID) {
			return nil
		}

		if newCategoryID != nil {
			ok, err := s.Categories.Exists(tx, *newCategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("category", *newCategoryID)
			}
			max, err := s.Items.MaxOrder(tx, *newCategoryID)
			if err != nil {
				return err
			}
			if err := s.Items.AssignCategory(tx, itemID, *newCategoryID, max+1); err != nil {
				return err
			}
		} else {
			if err := tx.Model(&entity.Item{}).
				Where("id = ?", itemID).
				Updates(map[string]interface{}{"category_id": nil, "menu_order": 0}).Error; err != nil {
				return err
			}
		}

		if item.CategoryID != nil {
			ids, err := s.touchMenusForCategory(tx, *item.CategoryID)
			if err != nil {
				return err
			}
			stale = append(stale, ids...)
		}
		if newCategoryID != nil {
			ids, err := s.touchMenusForCategory(tx, *newCategoryID)
			if err != nil {
				return err
			}
			stale = append(stale, ids...)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStale(stale)
	return nil
}

// SetCategoryItems replaces a category's item list with orderedIDs.
// Newly listed items are pulled into the category; items that dropped off
// the list are released with a compare-and-clear, so an item concurrently
// reassigned elsewhere is left alone. The given sequence becomes the
// stored order verbatim.
func (s *SyncService) SetCategoryItems(categoryID uint, orderedIDs []uint) error {
	if err := entity.ValidateIDList("items", orderedIDs); err != nil {
		return err
	}
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Categories.Exists(tx, categoryID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("category", categoryID)
		}

		current, err := s.Items.CategoryItemIDs(tx, categoryID)
		if err != nil {
			return err
		}
		inNew := make(map[uint]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			inNew[id] = true
		}
		inOld := make(map[uint]bool, len(current))
		for _, id := range current {
			inOld[id] = true
		}

		for _, id := range current {
			if !inNew[id] {
				if _, err := s.Items.ClearCategoryIfMatch(tx, id, categoryID); err != nil {
					return err
				}
			}
		}

		// categories the newly listed items were pulled out of; their
		// menus changed content too
		sources := make(map[uint]bool)
		for pos, id := range orderedIDs {
			if inOld[id] {
				if _, err := s.Items.SetOrderIfMember(tx, id, categoryID, pos); err != nil {
					return err
				}
				continue
			}
			var item entity.Item
			if err := tx.First(&item, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("item", id)
				}
				return err
			}
			if item.CategoryID != nil && *item.CategoryID != categoryID {
				sources[*item.CategoryID] = true
			}
			if err := s.Items.AssignCategory(tx, id, categoryID, pos); err != nil {
				return err
			}
		}

		ids, err := s.touchMenusForCategory(tx, categoryID)
		if err != nil {
			return err
		}
		stale = append(stale, ids...)
		for sourceID := range sources {
			ids, err := s.touchMenusForCategory(tx, sourceID)
			if err != nil {
				return err
			}
			stale = append(stale, ids...)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStale(stale)
	return nil
}

// SetMenuCategories replaces a menu's ordered category list. Categories
// are shared across menus, so nothing changes on the category side.
func (s *SyncService) SetMenuCategories(menuID uint, orderedIDs []uint) error {
	if err := entity.ValidateIDList("categories", orderedIDs); err != nil {
		return err
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var menu entity.Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("menu", menuID)
			}
			return err
		}
		for _, catID := range orderedIDs {
			ok, err := s.Categories.Exists(tx, catID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("category", catID)
			}
		}
		if err := s.Menus.ReplaceCategories(tx, menuID, orderedIDs); err != nil {
			return err
		}
		return s.Menus.Touch(tx, []uint{menuID})
	})
	if err != nil {
		return err
	}
	s.notifyStale([]uint{menuID})
	return nil
}

// DeleteCategory clears every item pointing at the category, removes it
// from every menu listing it, drops its translations and child rows, and
// deletes the record. One transaction; re-runnable if it ever fails.
func (s *SyncService) DeleteCategory(categoryID uint) error {
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cat entity.Category
		if err := tx.First(&cat, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("category", categoryID)
			}
			return err
		}

		if err := tx.Model(&entity.Item{}).
			Where("category_id = ?", categoryID).
			Updates(map[string]interface{}{"category_id": nil, "menu_order": 0}).Error; err != nil {
			return err
		}

		menuIDs, err := s.Menus.RemoveCategoryEverywhere(tx, categoryID)
		if err != nil {
			return err
		}

		if err := s.Translations.DeleteForEntity(tx, entity.EntityTypeCategory, categoryID); err != nil {
			return err
		}
		if err := s.Categories.DeleteWithChildren(tx, categoryID); err != nil {
			return err
		}
		if err := s.Menus.Touch(tx, menuIDs); err != nil {
			return err
		}
		stale = menuIDs
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStale(stale)
	return nil
}

// DeleteItem removes the item, its child rows and translations, and
// touches the menus that showed it.
func (s *SyncService) DeleteItem(itemID uint) error {
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item entity.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("item", itemID)
			}
			return err
		}
		for _, child := range []interface{}{
			&entity.ItemOption{}, &entity.ItemExtra{}, &entity.ItemAddon{}, &entity.ItemAllergy{},
		} {
			if err := tx.Where("item_id = ?", itemID).Delete(child).Error; err != nil {
				return err
			}
		}
		if err := s.Translations.DeleteForEntity(tx, entity.EntityTypeItem, itemID); err != nil {
			return err
		}
		if err := tx.Delete(&entity.Item{}, itemID).Error; err != nil {
			return err
		}
		if item.CategoryID != nil {
			ids, err := s.touchMenusForCategory(tx, *item.CategoryID)
			if err != nil {
				return err
			}
			stale = ids
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStale(stale)
	return nil
}

// DeleteMenu removes a menu and its category list. A published menu must
// be unpublished first so its artifact does not outlive it.
func (s *SyncService) DeleteMenu(menuID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var menu entity.Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("menu", menuID)
			}
			return err
		}
		if menu.PublishStatus == entity.PublishStatusPublished {
			return apperr.Conflict("menu is published; unpublish before deleting")
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&entity.MenuCategory{}).Error; err != nil {
			return err
		}
		if err := s.Translations.DeleteForEntity(tx, entity.EntityTypeMenu, menuID); err != nil {
			return err
		}
		return tx.Delete(&entity.Menu{}, menuID).Error
	})
}

// touchMenusForCategory bumps updated_at on every menu listing the
// category so IsStale sees changes made below the menu document. The
// touched ids are returned so callers can notify once the transaction
// has committed.
func (s *SyncService) touchMenusForCategory(tx *gorm.DB, categoryID uint) ([]uint, error) {
	menuIDs, err := s.Menus.MenuIDsForCategory(tx, categoryID)
	if err != nil {
		return nil, err
	}
	return menuIDs, s.Menus.Touch(tx, menuIDs)
}

// notifyStale broadcasts after commit; a rolled-back transaction must
// never announce menus it did not change.
func (s *SyncService) notifyStale(menuIDs []uint) {
	if s.Events == nil {
		return
	}
	seen := make(map[uint]bool, len(menuIDs))
	for _, id := range menuIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		s.Events.Notify(EventMenuStale, id, nil)
	}
}

// TouchMenusForItem propagates an item-level content change up to the
// menus that can show it.
func (s *SyncService) TouchMenusForItem(tx *gorm.DB, item *entity.Item) ([]uint, error) {
	if item.CategoryID == nil {
		return nil, nil
	}
	return s.touchMenusForCategory(tx, *item.CategoryID)
}

func sameCategory(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
