package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublishService(t *testing.T) (*PublishService, *artifact.LocalStore) {
	t.Helper()
	db := newTestDB(t)
	store := artifact.NewLocalStore(t.TempDir(), "http://example.test/public/files")
	return NewPublishService(db, store, nil), store
}

func TestPublishLifecycle(t *testing.T) {
	svc, store := newPublishService(t)
	db := svc.DB

	c1 := makeCategory(t, db, "starters")
	makeItem(t, db, "soup", &c1.ID, 0)
	m := makeMenu(t, db, "dinner", c1.ID)

	menu, err := svc.Publish(m.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.PublishStatusPublished, menu.PublishStatus)
	assert.NotEmpty(t, menu.PublishedURL)
	assert.NotNil(t, menu.PublishedAt)
	assert.NotNil(t, menu.LastPublished)
	assert.Equal(t, 1, menu.Version)

	data, err := store.Get(ArtifactPath(menu))
	require.NoError(t, err)
	var doc entity.GeneratedMenu
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Categories, 1)
	assert.Equal(t, c1.ID, doc.Categories[0].ID)
	assert.Equal(t, 1, doc.Metadata.Version)
	assert.Equal(t, "dinner", doc.Metadata.Slug)
}

func TestPublishMissingMenuRejected(t *testing.T) {
	svc, _ := newPublishService(t)
	_, err := svc.Publish(42)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPublishInactiveMenuRejected(t *testing.T) {
	svc, _ := newPublishService(t)
	db := svc.DB

	m := makeMenu(t, db, "dinner")
	require.NoError(t, db.Model(&entity.Menu{}).Where("id = ?", m.ID).
		Update("is_active", false).Error)

	_, err := svc.Publish(m.ID)
	assert.True(t, apperr.IsConflict(err))

	var got entity.Menu
	require.NoError(t, db.First(&got, m.ID).Error)
	assert.Equal(t, entity.PublishStatusDraft, got.PublishStatus, "failed publish leaves state unchanged")
}

func TestUnpublishRemovesArtifact(t *testing.T) {
	svc, store := newPublishService(t)
	db := svc.DB

	c1 := makeCategory(t, db, "starters")
	m := makeMenu(t, db, "dinner", c1.ID)

	published, err := svc.Publish(m.ID)
	require.NoError(t, err)

	menu, err := svc.Unpublish(m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PublishStatusUnpublished, menu.PublishStatus)
	assert.Empty(t, menu.PublishedURL)

	_, err = store.Get(ArtifactPath(published))
	assert.True(t, apperr.IsNotFound(err))

	// only a published menu can be unpublished
	_, err = svc.Unpublish(m.ID)
	assert.True(t, apperr.IsConflict(err))
}

func TestRepublishRequiresPublishedState(t *testing.T) {
	svc, _ := newPublishService(t)
	db := svc.DB

	m := makeMenu(t, db, "dinner")
	_, err := svc.Update(m.ID)
	assert.True(t, apperr.IsConflict(err))
}

func TestUnpublishedMenuCanRepublish(t *testing.T) {
	svc, _ := newPublishService(t)
	db := svc.DB

	m := makeMenu(t, db, "dinner")
	_, err := svc.Publish(m.ID)
	require.NoError(t, err)
	_, err = svc.Unpublish(m.ID)
	require.NoError(t, err)

	menu, err := svc.Publish(m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PublishStatusPublished, menu.PublishStatus)
	assert.Equal(t, 2, menu.Version, "each successful generation bumps the version")
}

func TestStalenessDerivedFromContentChanges(t *testing.T) {
	svc, _ := newPublishService(t)
	db := svc.DB
	catalog := NewCatalogService(db)

	c1 := makeCategory(t, db, "starters")
	item := makeItem(t, db, "soup", &c1.ID, 0)
	m := makeMenu(t, db, "dinner", c1.ID)

	_, err := svc.Publish(m.ID)
	require.NoError(t, err)

	status, err := svc.Status(m.ID)
	require.NoError(t, err)
	assert.False(t, status.IsStale, "fresh publish is not stale")

	time.Sleep(10 * time.Millisecond)

	// item edit cascades a touch to every menu showing the item
	newPrice := int64(1150)
	_, err = catalog.UpdateItem(item.ID, UpdateItemCommand{Price: &newPrice})
	require.NoError(t, err)

	status, err = svc.Status(m.ID)
	require.NoError(t, err)
	assert.True(t, status.IsStale)

	// re-publishing resets staleness
	_, err = svc.Update(m.ID)
	require.NoError(t, err)
	status, err = svc.Status(m.ID)
	require.NoError(t, err)
	assert.False(t, status.IsStale)
}

func TestConflictedUnpublishKeepsArtifact(t *testing.T) {
	svc, store := newPublishService(t)
	db := svc.DB

	c1 := makeCategory(t, db, "starters")
	m := makeMenu(t, db, "dinner", c1.ID)

	published, err := svc.Publish(m.ID)
	require.NoError(t, err)

	// status flipped out from under the caller
	require.NoError(t, db.Model(&entity.Menu{}).Where("id = ?", m.ID).
		Update("publish_status", entity.PublishStatusDraft).Error)

	_, err = svc.Unpublish(m.ID)
	assert.True(t, apperr.IsConflict(err))

	_, err = store.Get(ArtifactPath(published))
	require.NoError(t, err, "a refused unpublish must not cost the live artifact")
}

type brokenStore struct {
	artifact.Store
}

func (brokenStore) Delete(path string) error {
	return apperr.Storage("delete", errBackendDown)
}

var errBackendDown = errors.New("backend down")

func TestFailedArtifactDeleteLeavesMenuPublished(t *testing.T) {
	svc, store := newPublishService(t)
	db := svc.DB

	c1 := makeCategory(t, db, "starters")
	m := makeMenu(t, db, "dinner", c1.ID)

	published, err := svc.Publish(m.ID)
	require.NoError(t, err)

	svc.Store = brokenStore{Store: svc.Store}
	_, err = svc.Unpublish(m.ID)
	assert.True(t, apperr.IsStorage(err))

	var got entity.Menu
	require.NoError(t, db.First(&got, m.ID).Error)
	assert.Equal(t, entity.PublishStatusPublished, got.PublishStatus, "rollback restores the published state")

	_, err = store.Get(ArtifactPath(published))
	require.NoError(t, err)
}
