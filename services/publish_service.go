// services/publish_service.go
package services

import (
	"errors"
	"sync"
	"time"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/Networkcaretaker/sebastians-sub000/repository"
	"gorm.io/gorm"
)

// Notifier receives publication lifecycle events. The ws hub implements
// it; tests pass nil.
type Notifier interface {
	Notify(event string, menuID uint, payload interface{})
}

const (
	EventMenuPublished   = "menu.published"
	EventMenuUnpublished = "menu.unpublished"
	EventMenuStale       = "menu.stale"
)

// PublishService drives the draft -> published -> unpublished lifecycle.
// Publishes of the same menu are serialized in-process; the store-level
// status guard catches anything that slips past that.
type PublishService struct {
	DB        *gorm.DB
	Menus     *repository.MenuRepository
	Snapshots *SnapshotService
	Store     artifact.Store
	Events    Notifier

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewPublishService(db *gorm.DB, store artifact.Store, events Notifier) *PublishService {
	return &PublishService{
		DB:        db,
		Menus:     repository.NewMenuRepository(db),
		Snapshots: NewSnapshotService(db, store),
		Store:     store,
		Events:    events,
		locks:     make(map[uint]*sync.Mutex),
	}
}

func (s *PublishService) menuLock(menuID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[menuID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[menuID] = l
	}
	return l
}

// Publish builds and persists a snapshot, then commits the state change.
// The menu must exist and be active. On any failure the menu state is
// unchanged.
func (s *PublishService) Publish(menuID uint) (*entity.Menu, error) {
	return s.publish(menuID, []string{
		entity.PublishStatusDraft,
		entity.PublishStatusUnpublished,
		entity.PublishStatusPublished,
	})
}

// Update re-publishes an already-published menu. Mechanically identical
// to Publish with a narrower precondition.
func (s *PublishService) Update(menuID uint) (*entity.Menu, error) {
	return s.publish(menuID, []string{entity.PublishStatusPublished})
}

func (s *PublishService) publish(menuID uint, fromStatuses []string) (*entity.Menu, error) {
	l := s.menuLock(menuID)
	l.Lock()
	defer l.Unlock()

	var out *entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var menu entity.Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("menu", menuID)
			}
			return err
		}
		if !menu.IsActive {
			return apperr.Conflict("menu is not active")
		}
		if !statusIn(menu.PublishStatus, fromStatuses) {
			return apperr.Conflict("menu is not published")
		}

		restaurant, err := loadRestaurant(tx)
		if err != nil {
			return err
		}
		_, url, err := s.Snapshots.Generate(tx, &menu, restaurant)
		if err != nil {
			return err
		}

		now := time.Now()
		fields := map[string]interface{}{
			"publish_status": entity.PublishStatusPublished,
			"published_url":  url,
			"published_at":   now,
			"last_published": now,
			"version":        menu.Version + 1,
			"updated_at":     menu.UpdatedAt, // publishing is not a content edit
		}
		affected, err := s.Menus.UpdateStatusGuard(tx, menuID, fromStatuses, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("publish state changed concurrently")
		}

		menu.PublishStatus = entity.PublishStatusPublished
		menu.PublishedURL = url
		menu.PublishedAt = &now
		menu.LastPublished = &now
		menu.Version++
		out = &menu
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Events != nil {
		s.Events.Notify(EventMenuPublished, out.ID, map[string]interface{}{
			"url":     out.PublishedURL,
			"version": out.Version,
		})
	}
	return out, nil
}

// Unpublish removes the public artifact and clears the published URL.
// Only a published menu can be unpublished.
func (s *PublishService) Unpublish(menuID uint) (*entity.Menu, error) {
	l := s.menuLock(menuID)
	l.Lock()
	defer l.Unlock()

	var out *entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var menu entity.Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("menu", menuID)
			}
			return err
		}
		if menu.PublishStatus != entity.PublishStatusPublished {
			return apperr.Conflict("menu is not published")
		}

		fields := map[string]interface{}{
			"publish_status": entity.PublishStatusUnpublished,
			"published_url":  "",
			"updated_at":     menu.UpdatedAt,
		}
		affected, err := s.Menus.UpdateStatusGuard(tx, menuID,
			[]string{entity.PublishStatusPublished}, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("publish state changed concurrently")
		}

		// only once the guard holds; a concurrent transition must not
		// cost a live artifact
		if err := s.Store.Delete(ArtifactPath(&menu)); err != nil {
			return err
		}

		menu.PublishStatus = entity.PublishStatusUnpublished
		menu.PublishedURL = ""
		out = &menu
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Events != nil {
		s.Events.Notify(EventMenuUnpublished, out.ID, nil)
	}
	return out, nil
}

// Status reports the menu's publish state with staleness derived on read.
type PublishStatus struct {
	MenuID        uint       `json:"menuId"`
	PublishStatus string     `json:"publishStatus"`
	PublishedURL  string     `json:"publishedUrl"`
	PublishedAt   *time.Time `json:"publishedAt"`
	LastPublished *time.Time `json:"lastPublished"`
	Version       int        `json:"version"`
	IsStale       bool       `json:"isStale"`
}

func (s *PublishService) Status(menuID uint) (*PublishStatus, error) {
	menu, err := s.Menus.FindByID(menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu", menuID)
		}
		return nil, err
	}
	return &PublishStatus{
		MenuID:        menu.ID,
		PublishStatus: menu.PublishStatus,
		PublishedURL:  menu.PublishedURL,
		PublishedAt:   menu.PublishedAt,
		LastPublished: menu.LastPublished,
		Version:       menu.Version,
		IsStale:       menu.IsStale(),
	}, nil
}

func statusIn(status string, set []string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func loadRestaurant(tx *gorm.DB) (*entity.Restaurant, error) {
	var r entity.Restaurant
	err := tx.First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
