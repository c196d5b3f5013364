package services

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

// PostService contém a lógica do feed social
type PostService struct {
	postRepo repositories.PostRepository
	logger   ports.Logger
}

// NewPostService cria um novo PostService
func NewPostService(postRepo repositories.PostRepository, logger ports.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// CreatePostInput representa os dados de uma nova publicação
type CreatePostInput struct {
	Author           string
	Content          string
	Time             string
	Type             string
	Image            *string
	MediaType        *string
	TaggedPropertyID *int64
	PostType         string
	PropertyID       *int64
}

// ListPosts retorna o feed completo, mais novo primeiro
func (s *PostService) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	return s.postRepo.List(ctx)
}

// CreatePost publica no feed aplicando os valores padrão
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*entities.Post, error) {
	post := &entities.Post{
		Author:           input.Author,
		Content:          input.Content,
		Time:             input.Time,
		Type:             input.Type,
		Image:            input.Image,
		MediaType:        input.MediaType,
		TaggedPropertyID: input.TaggedPropertyID,
		PostType:         input.PostType,
		PropertyID:       input.PropertyID,
	}
	post.ApplyDefaults()

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created", "post_id", post.ID, "author", post.Author)
	return post, nil
}

// LikePost move o contador em exatamente uma unidade.
// Não há registro por usuário: chamadas repetidas continuam somando.
func (s *PostService) LikePost(ctx context.Context, id int64, liked bool) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	post.ToggleLike(liked)
	if err := s.postRepo.UpdateLikes(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}
