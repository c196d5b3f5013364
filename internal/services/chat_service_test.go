package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/logging"
)

func TestChatService_CreateOrGetChat(t *testing.T) {
	service := NewChatService(newMemoryChatRepository(), nil, inlineUnitOfWork{}, logging.NewDiscardLogger())
	ctx := context.Background()

	first, created, err := service.CreateOrGetChat(ctx, "A@x.com", "b@x.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "a@x.com", first.User1Email)

	again, created, err := service.CreateOrGetChat(ctx, "b@x.com", "a@x.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
}

func TestChatService_SendMessage(t *testing.T) {
	repo := newMemoryChatRepository()
	publisher := &recordingPublisher{}
	service := NewChatService(repo, publisher, inlineUnitOfWork{}, logging.NewDiscardLogger())
	ctx := context.Background()

	chat, _, err := service.CreateOrGetChat(ctx, "a@x.com", "b@x.com")
	require.NoError(t, err)

	message, err := service.SendMessage(ctx, SendMessageInput{ChatID: chat.ID, SenderEmail: "A@x.com", Content: "oi"})
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultMessageType, message.MessageType)
	assert.Equal(t, "a@x.com", message.SenderEmail)
	assert.Equal(t, 1, repo.touched[chat.ID])
	require.Len(t, publisher.published, 1)
	assert.Equal(t, message.ID, publisher.published[0].ID)

	_, err = service.SendMessage(ctx, SendMessageInput{ChatID: 999, SenderEmail: "a@x.com", Content: "oi"})
	assert.ErrorIs(t, err, errors.ErrChatNotFound)
	assert.Len(t, publisher.published, 1)
}
