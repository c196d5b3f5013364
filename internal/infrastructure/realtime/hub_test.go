package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/logging"
)

func TestHub_PublishReachesOnlyChatSubscribers(t *testing.T) {
	hub := NewHub(logging.NewDiscardLogger())

	first := hub.Subscribe(1)
	second := hub.Subscribe(1)
	other := hub.Subscribe(2)

	hub.PublishMessage(&entities.Message{ID: 10, ChatID: 1, Content: "oi"})

	for _, sub := range []*Subscriber{first, second} {
		select {
		case msg := <-sub.Messages():
			assert.Equal(t, int64(10), msg.ID)
		case <-time.After(time.Second):
			t.Fatal("mensagem não entregue")
		}
	}

	select {
	case msg := <-other.Messages():
		t.Fatalf("chat 2 não deveria receber a mensagem %d", msg.ID)
	default:
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(logging.NewDiscardLogger())
	sub := hub.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.PublishMessage(&entities.Message{ID: int64(i), ChatID: 1})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publicação bloqueou com assinante lento")
	}
	assert.Len(t, sub.Messages(), subscriberBuffer)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(logging.NewDiscardLogger())
	sub := hub.Subscribe(1)
	require.Equal(t, 1, hub.Subscribers(1))

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub)

	assert.Equal(t, 0, hub.Subscribers(1))
	_, open := <-sub.Messages()
	assert.False(t, open, "canal deveria estar fechado")

	// Publicar sem assinantes não falha
	hub.PublishMessage(&entities.Message{ChatID: 1})
}
