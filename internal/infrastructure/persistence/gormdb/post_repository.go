package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

// PostRepository implementa repositories.PostRepository
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository cria um novo PostRepository
func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	model := toPostModel(post)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	post.ID = model.ID
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*entities.Post, error) {
	var model PostModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toPostEntity(&model), nil
}

func (r *PostRepository) List(ctx context.Context) ([]*entities.Post, error) {
	var models []*PostModel
	if err := conn(ctx, r.db).Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, 0, len(models))
	for _, model := range models {
		posts = append(posts, toPostEntity(model))
	}
	return posts, nil
}

// UpdateLikes grava o contador e a flag; o mapa evita que GORM ignore valores zero
func (r *PostRepository) UpdateLikes(ctx context.Context, post *entities.Post) error {
	return conn(ctx, r.db).Model(&PostModel{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"likes":       post.Likes,
		"liked_by_me": post.LikedByMe,
	}).Error
}

func toPostModel(post *entities.Post) *PostModel {
	return &PostModel{
		ID:               post.ID,
		Author:           post.Author,
		Time:             post.Time,
		Type:             post.Type,
		Content:          post.Content,
		Image:            post.Image,
		MediaType:        post.MediaType,
		TaggedPropertyID: post.TaggedPropertyID,
		PostType:         post.PostType,
		PropertyID:       post.PropertyID,
		Likes:            post.Likes,
		LikedByMe:        post.LikedByMe,
	}
}

func toPostEntity(model *PostModel) *entities.Post {
	return &entities.Post{
		ID:               model.ID,
		Author:           model.Author,
		Time:             model.Time,
		Type:             model.Type,
		Content:          model.Content,
		Image:            model.Image,
		MediaType:        model.MediaType,
		TaggedPropertyID: model.TaggedPropertyID,
		PostType:         model.PostType,
		PropertyID:       model.PropertyID,
		Likes:            model.Likes,
		LikedByMe:        model.LikedByMe,
	}
}
