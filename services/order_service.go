// services/order_service.go
package services

import (
	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/Networkcaretaker/sebastians-sub000/repository"
	"gorm.io/gorm"
)

// OrderService assigns the persisted ordinals that make list positions
// survive re-fetching in arbitrary order.
type OrderService struct {
	DB     *gorm.DB
	Items  *repository.ItemRepository
	Menus  *repository.MenuRepository
	Events Notifier
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:    db,
		Items: repository.NewItemRepository(db),
		Menus: repository.NewMenuRepository(db),
	}
}

// ReorderItems rewrites menu_order to 0..n-1 following the given
// sequence. Membership is re-checked against the live rows inside the
// transaction; an id that is no longer in the category means the caller
// worked from a stale read and must retry.
func (s *OrderService) ReorderItems(categoryID uint, orderedIDs []uint) error {
	if err := entity.ValidateIDList("items", orderedIDs); err != nil {
		return err
	}
	var stale []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		current, err := s.Items.CategoryItemIDs(tx, categoryID)
		if err != nil {
			return err
		}
		member := make(map[uint]bool, len(current))
		for _, id := range current {
			member[id] = true
		}
		for _, id := range orderedIDs {
			if !member[id] {
				return apperr.Conflict("item no longer belongs to the category")
			}
		}
		for pos, id := range orderedIDs {
			affected, err := s.Items.SetOrderIfMember(tx, id, categoryID, pos)
			if err != nil {
				return err
			}
			if affected == 0 {
				return apperr.Conflict("item no longer belongs to the category")
			}
		}
		menuIDs, err := s.Menus.MenuIDsForCategory(tx, categoryID)
		if err != nil {
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
	// only after commit; a rollback must not announce anything
	if s.Events != nil {
		for _, id := range stale {
			s.Events.Notify(EventMenuStale, id, nil)
		}
	}
	return nil
}

// NextItemOrder returns the ordinal for appending into a category:
// max + 1, or 0 when the category is empty.
func (s *OrderService) NextItemOrder(categoryID uint) (int, error) {
	max, err := s.Items.MaxOrder(s.DB, categoryID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// ReorderMenus rewrites the admin display order of the menus themselves.
func (s *OrderService) ReorderMenus(orderedIDs []uint) error {
	if err := entity.ValidateIDList("menus", orderedIDs); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range orderedIDs {
			res := tx.Model(&entity.Menu{}).Where("id = ?", id).Update("display_order", pos)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("menu", id)
			}
		}
		return nil
	})
}
