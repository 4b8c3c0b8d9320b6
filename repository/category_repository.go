// repository/category_repository.go
package repository

import (
	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func preloadCategoryChildren(q *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
	return q.
		Preload("Extras", byPosition).
		Preload("Addons", byPosition)
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := preloadCategoryChildren(r.DB).Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	err := preloadCategoryChildren(r.DB).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_order ASC, id ASC")
		}).
		First(&cat, id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Exists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	err := tx.Model(&entity.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Save(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

// DeleteWithChildren removes the category row and its extra/addon rows.
// Callers run this inside the delete cascade transaction.
func (r *CategoryRepository) DeleteWithChildren(tx *gorm.DB, id uint) error {
	if err := tx.Where("category_id = ?", id).Delete(&entity.CategoryExtra{}).Error; err != nil {
		return err
	}
	if err := tx.Where("category_id = ?", id).Delete(&entity.CategoryAddon{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Category{}, id).Error
}
