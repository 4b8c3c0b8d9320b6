// services/translation_service.go
package services

import (
	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/Networkcaretaker/sebastians-sub000/repository"
	"gorm.io/gorm"
)

// TranslationService exposes the overlay store to the admin surface.
// Translation content comes from outside; the catalog only guarantees
// that rows stay addressed to live option/extra/addon rows (the delete
// cascades in SyncService and CatalogService handle that).
type TranslationService struct {
	DB   *gorm.DB
	Repo *repository.TranslationRepository
}

func NewTranslationService(db *gorm.DB) *TranslationService {
	return &TranslationService{DB: db, Repo: repository.NewTranslationRepository(db)}
}

func (s *TranslationService) List(entityType string, entityID uint) ([]entity.Translation, error) {
	if err := validEntityType(entityType); err != nil {
		return nil, err
	}
	return s.Repo.ListForEntity(entityType, entityID)
}

func (s *TranslationService) Set(t *entity.Translation) error {
	if err := validEntityType(t.EntityType); err != nil {
		return err
	}
	if t.Language == "" {
		return apperr.Validation("language", "required")
	}
	switch t.Field {
	case entity.FieldName, entity.FieldDescription, entity.FieldHeader, entity.FieldFooter:
		if t.RowID != 0 {
			return apperr.Validation("rowId", "scalar fields take no row id")
		}
	case entity.FieldOption, entity.FieldExtra, entity.FieldAddon:
		if t.RowID == 0 {
			return apperr.Validation("rowId", "required for list fields")
		}
	default:
		return apperr.Validation("field", "unknown field")
	}
	return s.Repo.Upsert(t)
}

func validEntityType(entityType string) error {
	switch entityType {
	case entity.EntityTypeItem, entity.EntityTypeCategory, entity.EntityTypeMenu:
		return nil
	}
	return apperr.Validation("entityType", "unknown entity type")
}
