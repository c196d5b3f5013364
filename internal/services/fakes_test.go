package services

import (
	"context"
	"sync"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entities.User
}

var _ repositories.UserRepository = (*memoryUserRepository)(nil)

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[int64]*entities.User)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email.String() == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	user, _ := r.FindByEmail(ctx, email)
	if user == nil {
		return 0, nil
	}
	return 1, nil
}

// plainHasher guarda a senha com prefixo fixo
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hash, password string) bool  { return hash == "hashed:"+password }

type staticTokens struct{}

func (staticTokens) Issue(userID int64, email, userType string) (string, error) {
	return "token-" + email, nil
}

func (staticTokens) Parse(token string) (*ports.TokenClaims, error) {
	return nil, errors.ErrUnauthorized
}

// inlineUnitOfWork executa a função sem transação real
type inlineUnitOfWork struct{}

func (inlineUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type memoryChatRepository struct {
	mu       sync.Mutex
	chats    []*entities.Chat
	messages []*entities.Message
	touched  map[int64]int
}

var _ repositories.ChatRepository = (*memoryChatRepository)(nil)

func newMemoryChatRepository() *memoryChatRepository {
	return &memoryChatRepository{touched: make(map[int64]int)}
}

func (r *memoryChatRepository) Create(ctx context.Context, chat *entities.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	chat.ID = int64(len(r.chats) + 1)
	r.chats = append(r.chats, chat)
	return nil
}

func (r *memoryChatRepository) FindByID(ctx context.Context, id int64) (*entities.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, chat := range r.chats {
		if chat.ID == id {
			return chat, nil
		}
	}
	return nil, nil
}

func (r *memoryChatRepository) FindByParticipants(ctx context.Context, emailA, emailB string) (*entities.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, chat := range r.chats {
		if (chat.User1Email == emailA && chat.User2Email == emailB) ||
			(chat.User1Email == emailB && chat.User2Email == emailA) {
			return chat, nil
		}
	}
	return nil, nil
}

func (r *memoryChatRepository) ListByUser(ctx context.Context, userEmail string) ([]*entities.ChatSummary, error) {
	return nil, nil
}

func (r *memoryChatRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = int64(len(r.messages) + 1)
	r.messages = append(r.messages, message)
	return nil
}

func (r *memoryChatRepository) ListMessages(ctx context.Context, chatID int64) ([]*entities.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entities.Message
	for _, message := range r.messages {
		if message.ChatID == chatID {
			out = append(out, message)
		}
	}
	return out, nil
}

func (r *memoryChatRepository) TouchLastMessage(ctx context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.touched[chatID]++
	return nil
}

type recordingPublisher struct {
	published []*entities.Message
}

func (p *recordingPublisher) PublishMessage(message *entities.Message) {
	p.published = append(p.published, message)
}
