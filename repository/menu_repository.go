// repository/menu_repository.go
package repository

import (
	"time"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Order("display_order ASC, id ASC").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.First(&menu, id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) FindBySlug(slug string) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.Where("slug = ?", slug).First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Save(menu *entity.Menu) error {
	return r.DB.Save(menu).Error
}

// CategoryIDs reads the menu's category list in stored position order.
func (r *MenuRepository) CategoryIDs(tx *gorm.DB, menuID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.MenuCategory{}).
		Where("menu_id = ?", menuID).
		Order("position ASC").
		Pluck("category_id", &ids).Error
	return ids, err
}

// OrderedCategories loads the menu's categories in position order with
// their extras and addons.
func (r *MenuRepository) OrderedCategories(tx *gorm.DB, menuID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := preloadCategoryChildren(tx).
		Joins("JOIN menu_categories mc ON mc.category_id = categories.id").
		Where("mc.menu_id = ?", menuID).
		Order("mc.position ASC").
		Find(&cats).Error
	return cats, err
}

// MenuIDsForCategory lists every menu whose category list contains the
// category. Used for the ancestor touch on category/item mutations.
func (r *MenuRepository) MenuIDsForCategory(tx *gorm.DB, categoryID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.MenuCategory{}).
		Where("category_id = ?", categoryID).
		Pluck("menu_id", &ids).Error
	return ids, err
}

// ReplaceCategories swaps the menu's ordered category list verbatim.
func (r *MenuRepository) ReplaceCategories(tx *gorm.DB, menuID uint, orderedIDs []uint) error {
	if err := tx.Where("menu_id = ?", menuID).Delete(&entity.MenuCategory{}).Error; err != nil {
		return err
	}
	for pos, catID := range orderedIDs {
		row := entity.MenuCategory{MenuID: menuID, CategoryID: catID, Position: pos}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// RemoveCategoryEverywhere drops the category from every menu listing it
// and closes the position gaps it leaves behind.
func (r *MenuRepository) RemoveCategoryEverywhere(tx *gorm.DB, categoryID uint) ([]uint, error) {
	menuIDs, err := r.MenuIDsForCategory(tx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := tx.Where("category_id = ?", categoryID).Delete(&entity.MenuCategory{}).Error; err != nil {
		return nil, err
	}
	for _, menuID := range menuIDs {
		remaining, err := r.CategoryIDs(tx, menuID)
		if err != nil {
			return nil, err
		}
		if err := r.ReplaceCategories(tx, menuID, remaining); err != nil {
			return nil, err
		}
	}
	return menuIDs, nil
}

// Touch bumps updated_at so staleness detection sees content changes made
// below the menu document itself.
func (r *MenuRepository) Touch(tx *gorm.DB, menuIDs []uint) error {
	if len(menuIDs) == 0 {
		return nil
	}
	return tx.Model(&entity.Menu{}).
		Where("id IN ?", menuIDs).
		Update("updated_at", time.Now()).Error
}

// UpdateStatusGuard applies fields only while the menu is still in one of
// the expected publish states. Zero affected rows means the precondition
// no longer holds.
func (r *MenuRepository) UpdateStatusGuard(tx *gorm.DB, menuID uint, fromStatuses []string, fields map[string]interface{}) (int64, error) {
	res := tx.Model(&entity.Menu{}).
		Where("id = ? AND publish_status IN ?", menuID, fromStatuses).
		Updates(fields)
	return res.RowsAffected, res.Error
}
