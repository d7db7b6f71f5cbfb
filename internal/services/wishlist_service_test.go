package services

import (
	"testing"

	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type wishlistTestEnv struct {
	db      *gorm.DB
	service *WishlistService
}

func setupWishlistTestEnv(t *testing.T) wishlistTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.ItemImage{},
		&models.WishlistEntry{},
	)
	require.NoError(t, err)

	service := NewWishlistService(
		repository.NewWishlistRepository(db),
		repository.NewItemRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return wishlistTestEnv{db: db, service: service}
}

func (env wishlistTestEnv) createItem(t *testing.T, title string) *models.Item {
	t.Helper()
	require.NoError(t, env.db.FirstOrCreate(&models.Category{ID: 1, Name: "general"}).Error)
	item := &models.Item{
		Title:      title,
		Condition:  "good",
		OwnerID:    99,
		Status:     true,
		CategoryID: 1,
	}
	require.NoError(t, env.db.Create(item).Error)
	return item
}

// racingWishlistRepository inserts the entry behind the service's back
// after the duplicate pre-check, the way a concurrent add would.
type racingWishlistRepository struct {
	repository.WishlistRepository
	db *gorm.DB
}

func (r racingWishlistRepository) Create(entry *models.WishlistEntry) error {
	rival := &models.WishlistEntry{UserID: entry.UserID, ItemID: entry.ItemID}
	if err := r.db.Create(rival).Error; err != nil {
		return err
	}
	return r.WishlistRepository.Create(entry)
}

func TestWishlistAddConcurrentDuplicate(t *testing.T) {
	env := setupWishlistTestEnv(t)
	item := env.createItem(t, "bicycle")

	service := NewWishlistService(racingWishlistRepository{
		WishlistRepository: repository.NewWishlistRepository(env.db),
		db:                 env.db,
	}, repository.NewItemRepository(env.db))

	_, err := service.Add(1, item.ID)
	require.ErrorIs(t, err, ErrAlreadyWishlisted)
}

func TestWishlistAddAndList(t *testing.T) {
	env := setupWishlistTestEnv(t)
	first := env.createItem(t, "first")
	second := env.createItem(t, "second")

	_, err := env.service.Add(1, first.ID)
	require.NoError(t, err)
	_, err = env.service.Add(1, second.ID)
	require.NoError(t, err)

	entries, err := env.service.List(1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Items come preloaded for rendering.
	for _, entry := range entries {
		require.NotZero(t, entry.Item.ID)
	}

	// Another user's wishlist is empty.
	entries, err = env.service.List(2)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWishlistAddDuplicateConflict(t *testing.T) {
	env := setupWishlistTestEnv(t)
	item := env.createItem(t, "wanted")

	_, err := env.service.Add(1, item.ID)
	require.NoError(t, err)

	_, err = env.service.Add(1, item.ID)
	require.ErrorIs(t, err, ErrAlreadyWishlisted)

	// A different user may wishlist the same item.
	_, err = env.service.Add(2, item.ID)
	require.NoError(t, err)
}

func TestWishlistAddUnknownItem(t *testing.T) {
	env := setupWishlistTestEnv(t)

	_, err := env.service.Add(1, 404)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestWishlistRemove(t *testing.T) {
	env := setupWishlistTestEnv(t)
	item := env.createItem(t, "fleeting")

	_, err := env.service.Add(1, item.ID)
	require.NoError(t, err)

	require.NoError(t, env.service.Remove(1, item.ID))
	require.ErrorIs(t, env.service.Remove(1, item.ID), ErrNotWishlisted)

	entries, err := env.service.List(1)
	require.NoError(t, err)
	require.Empty(t, entries)
}
