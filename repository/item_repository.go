// repository/item_repository.go
package repository

import (
	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func preloadItemChildren(q *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
	return q.
		Preload("Options", byPosition).
		Preload("Extras", byPosition).
		Preload("Addons", byPosition).
		Preload("Allergies")
}

func (r *ItemRepository) FindAll() ([]entity.Item, error) {
	var items []entity.Item
	err := preloadItemChildren(r.DB).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var item entity.Item
	err := preloadItemChildren(r.DB).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByCategory returns the category's items in stored order,
// ties broken by id.
func (r *ItemRepository) FindByCategory(categoryID uint) ([]entity.Item, error) {
	var items []entity.Item
	err := preloadItemChildren(r.DB).
		Where("category_id = ?", categoryID).
		Order("menu_order ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindUnassigned() ([]entity.Item, error) {
	var items []entity.Item
	err := preloadItemChildren(r.DB).
		Where("category_id IS NULL").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) Save(item *entity.Item) error {
	return r.DB.Save(item).Error
}

// CategoryItemIDs reads the current membership of a category, in order.
func (r *ItemRepository) CategoryItemIDs(tx *gorm.DB, categoryID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.Item{}).
		Where("category_id = ?", categoryID).
		Order("menu_order ASC, id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// MaxOrder returns the highest menu_order in a category, -1 when empty.
func (r *ItemRepository) MaxOrder(tx *gorm.DB, categoryID uint) (int, error) {
	var max *int
	err := tx.Model(&entity.Item{}).
		Where("category_id = ?", categoryID).
		Select("MAX(menu_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *ItemRepository) AssignCategory(tx *gorm.DB, itemID, categoryID uint, order int) error {
	return tx.Model(&entity.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"category_id": categoryID,
			"menu_order":  order,
		}).Error
}

// ClearCategoryIfMatch clears the pointer only while it still equals the
// expected category. Compare-and-clear, not a transaction; a zero row
// count means another writer got there first.
func (r *ItemRepository) ClearCategoryIfMatch(tx *gorm.DB, itemID, expectCategoryID uint) (int64, error) {
	res := tx.Model(&entity.Item{}).
		Where("id = ? AND category_id = ?", itemID, expectCategoryID).
		Updates(map[string]interface{}{"category_id": nil})
	return res.RowsAffected, res.Error
}

// SetOrderIfMember writes an ordinal only while the item still belongs to
// the category at write time.
func (r *ItemRepository) SetOrderIfMember(tx *gorm.DB, itemID, categoryID uint, order int) (int64, error) {
	res := tx.Model(&entity.Item{}).
		Where("id = ? AND category_id = ?", itemID, categoryID).
		Update("menu_order", order)
	return res.RowsAffected, res.Error
}
