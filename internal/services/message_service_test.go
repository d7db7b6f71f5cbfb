package services

import (
	"testing"

	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type messageTestEnv struct {
	db      *gorm.DB
	service *MessageService
	alice   *models.User
	bob     *models.User
}

func setupMessageTestEnv(t *testing.T) messageTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Phone{},
		&models.Category{},
		&models.Item{},
		&models.ItemImage{},
		&models.Message{},
	)
	require.NoError(t, err)

	service := NewMessageService(
		repository.NewMessageRepository(db),
		repository.NewUserRepository(db),
		repository.NewItemRepository(db),
	)

	alice := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", IsActive: true}
	bob := &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return messageTestEnv{db: db, service: service, alice: alice, bob: bob}
}

func TestMessageSend(t *testing.T) {
	env := setupMessageTestEnv(t)

	message, err := env.service.Send(SendInput{
		SenderID:   env.alice.ID,
		ReceiverID: env.bob.ID,
		Content:    "is the bicycle still available?",
	})
	require.NoError(t, err)
	require.False(t, message.IsRead)
	require.Nil(t, message.ItemID)
}

func TestMessageSendValidation(t *testing.T) {
	env := setupMessageTestEnv(t)

	_, err := env.service.Send(SendInput{
		SenderID:   env.alice.ID,
		ReceiverID: env.bob.ID,
		Content:    "   ",
	})
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = env.service.Send(SendInput{
		SenderID:   env.alice.ID,
		ReceiverID: env.alice.ID,
		Content:    "note to self",
	})
	require.ErrorIs(t, err, ErrSelfMessage)

	_, err = env.service.Send(SendInput{
		SenderID:   env.alice.ID,
		ReceiverID: 404,
		Content:    "hello?",
	})
	require.ErrorIs(t, err, ErrReceiverNotFound)

	missingItem := uint64(404)
	_, err = env.service.Send(SendInput{
		SenderID:   env.alice.ID,
		ReceiverID: env.bob.ID,
		Content:    "about that item",
		ItemID:     &missingItem,
	})
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestMessageConversationOrderAndRead(t *testing.T) {
	env := setupMessageTestEnv(t)

	for _, step := range []struct {
		from, to uint64
		content  string
	}{
		{env.alice.ID, env.bob.ID, "hi, still selling?"},
		{env.bob.ID, env.alice.ID, "yes, it is available"},
		{env.alice.ID, env.bob.ID, "great, can we meet?"},
	} {
		_, err := env.service.Send(SendInput{
			SenderID:   step.from,
			ReceiverID: step.to,
			Content:    step.content,
		})
		require.NoError(t, err)
	}

	// Bob opens the conversation: both directions, oldest first, and
	// Alice's messages to him become read.
	messages, err := env.service.Conversation(env.bob.ID, env.alice.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	require.Equal(t, "hi, still selling?", messages[0].Content)
	require.Equal(t, "great, can we meet?", messages[2].Content)

	for _, message := range messages {
		if message.ReceiverID == env.bob.ID {
			require.True(t, message.IsRead)
		}
	}

	var unread int64
	require.NoError(t, env.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", env.bob.ID, false).
		Count(&unread).Error)
	require.Zero(t, unread)

	// Bob's own reply to Alice stays unread until she opens it.
	var aliceUnread int64
	require.NoError(t, env.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", env.alice.ID, false).
		Count(&aliceUnread).Error)
	require.Equal(t, int64(1), aliceUnread)
}
