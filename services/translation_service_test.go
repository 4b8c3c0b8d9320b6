package services

import (
	"testing"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationSetAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranslationService(db)

	c1 := makeCategory(t, db, "mains")

	require.NoError(t, svc.Set(&entity.Translation{
		EntityType: entity.EntityTypeCategory, EntityID: c1.ID,
		Language: "de", Field: entity.FieldName, Text: "Hauptgerichte",
	}))

	// second write for the same tuple replaces, not duplicates
	require.NoError(t, svc.Set(&entity.Translation{
		EntityType: entity.EntityTypeCategory, EntityID: c1.ID,
		Language: "de", Field: entity.FieldName, Text: "Hauptspeisen",
	}))

	ts, err := svc.List(entity.EntityTypeCategory, c1.ID)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "Hauptspeisen", ts[0].Text)
}

func TestTranslationRowIDRules(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranslationService(db)

	// scalar field must not carry a row id
	err := svc.Set(&entity.Translation{
		EntityType: entity.EntityTypeItem, EntityID: 1,
		Language: "de", Field: entity.FieldName, RowID: 7, Text: "x",
	})
	assert.True(t, apperr.IsValidation(err))

	// list field requires one
	err = svc.Set(&entity.Translation{
		EntityType: entity.EntityTypeItem, EntityID: 1,
		Language: "de", Field: entity.FieldOption, Text: "x",
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestTranslationUnknownEntityType(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranslationService(db)

	_, err := svc.List("drink", 1)
	assert.True(t, apperr.IsValidation(err))
}
