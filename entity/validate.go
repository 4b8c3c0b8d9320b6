package entity

import (
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
)

// ValidateItem checks the item invariants. The item must have its derived
// flags recalculated first; flag drift is rejected, not repaired.
func ValidateItem(it *Item) error {
	if it.Name == "" {
		return apperr.Validation("name", "required")
	}
	if it.Price < 0 {
		return apperr.Validation("price", "must not be negative")
	}
	for _, o := range it.Options {
		if o.Name == "" {
			return apperr.Validation("options.name", "required")
		}
		if o.Price < 0 {
			return apperr.Validation("options.price", "must not be negative")
		}
	}
	for _, e := range it.Extras {
		if e.Name == "" {
			return apperr.Validation("extras.name", "required")
		}
		if e.Price < 0 {
			return apperr.Validation("extras.price", "must not be negative")
		}
	}
	for _, a := range it.Addons {
		if a.Name == "" {
			return apperr.Validation("addons.name", "required")
		}
	}
	if it.HasOptions != (len(it.Options) > 0) {
		return apperr.Validation("hasOptions", "out of sync with options")
	}
	if it.HasExtras != (len(it.Extras) > 0) {
		return apperr.Validation("hasExtras", "out of sync with extras")
	}
	if it.HasAddons != (len(it.Addons) > 0) {
		return apperr.Validation("hasAddons", "out of sync with addons")
	}
	return nil
}

func ValidateCategory(cat *Category) error {
	if cat.Name == "" {
		return apperr.Validation("name", "required")
	}
	for _, e := range cat.Extras {
		if e.Name == "" {
			return apperr.Validation("extras.name", "required")
		}
		if e.Price < 0 {
			return apperr.Validation("extras.price", "must not be negative")
		}
	}
	for _, a := range cat.Addons {
		if a.Name == "" {
			return apperr.Validation("addons.name", "required")
		}
	}
	return nil
}

func ValidateMenu(m *Menu) error {
	if m.Name == "" {
		return apperr.Validation("name", "required")
	}
	if m.Type != MenuTypeWeb && m.Type != MenuTypePrintable {
		return apperr.Validation("type", "must be web or printable")
	}
	switch m.PublishStatus {
	case PublishStatusDraft, PublishStatusUnpublished:
	case PublishStatusPublished:
		if m.PublishedURL == "" {
			return apperr.Validation("publishedUrl", "required while published")
		}
		if m.LastPublished == nil {
			return apperr.Validation("lastPublished", "required while published")
		}
	default:
		return apperr.Validation("publishStatus", "unknown status")
	}
	return nil
}

// ValidateIDList rejects duplicate ids in an ordered reference list.
func ValidateIDList(field string, ids []uint) error {
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return apperr.Validation(field, "duplicate id in list")
		}
		seen[id] = true
	}
	return nil
}
