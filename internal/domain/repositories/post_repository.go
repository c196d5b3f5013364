package repositories

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// PostRepository define a interface para persistência do feed
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id int64) (*entities.Post, error)
	// List retorna todas as publicações, mais novas primeiro
	List(ctx context.Context) ([]*entities.Post, error)
	UpdateLikes(ctx context.Context, post *entities.Post) error
}
