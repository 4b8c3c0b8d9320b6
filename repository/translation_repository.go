// repository/translation_repository.go
package repository

import (
	"errors"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"gorm.io/gorm"
)

type TranslationRepository struct {
	DB *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{DB: db}
}

func (r *TranslationRepository) ListForEntity(entityType string, entityID uint) ([]entity.Translation, error) {
	var ts []entity.Translation
	err := r.DB.
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("language ASC, field ASC, row_id ASC").
		Find(&ts).Error
	return ts, err
}

// Upsert writes the text for one (entity, language, field, row) tuple.
func (r *TranslationRepository) Upsert(t *entity.Translation) error {
	var existing entity.Translation
	err := r.DB.Where(
		"entity_type = ? AND entity_id = ? AND language = ? AND field = ? AND row_id = ?",
		t.EntityType, t.EntityID, t.Language, t.Field, t.RowID,
	).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(t).Error
	}
	if err != nil {
		return err
	}
	return r.DB.Model(&existing).Update("text", t.Text).Error
}

// DeleteForEntity removes every translation attached to an entity.
// Part of the entity's delete cascade.
func (r *TranslationRepository) DeleteForEntity(tx *gorm.DB, entityType string, entityID uint) error {
	return tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&entity.Translation{}).Error
}

// DeleteRows removes translations for specific option/extra/addon rows
// after those rows are deleted from the base entity.
func (r *TranslationRepository) DeleteRows(tx *gorm.DB, entityType, field string, rowIDs []uint) error {
	if len(rowIDs) == 0 {
		return nil
	}
	return tx.Where("entity_type = ? AND field = ? AND row_id IN ?", entityType, field, rowIDs).
		Delete(&entity.Translation{}).Error
}
