package dto

import "github.com/rafabene/inhouse-backend/internal/domain/entities"

// CreatePostRequest representa uma nova publicação
type CreatePostRequest struct {
	Author           string  `json:"author" binding:"required"`
	Content          string  `json:"content" binding:"required"`
	Time             string  `json:"time"`
	Type             string  `json:"type"`
	Image            *string `json:"image"`
	MediaType        *string `json:"media_type"`
	TaggedPropertyID *int64  `json:"tagged_property_id"`
	PostType         string  `json:"post_type"`
	PropertyID       *int64  `json:"property_id"`
}

// LikePostRequest carrega o novo estado da curtida
type LikePostRequest struct {
	Liked *bool `json:"liked" binding:"required"`
}

// PostResponse representa uma publicação do feed
type PostResponse struct {
	ID               int64   `json:"id"`
	Author           string  `json:"author"`
	Time             string  `json:"time"`
	Type             string  `json:"type"`
	Content          string  `json:"content"`
	Image            *string `json:"image"`
	MediaType        *string `json:"media_type"`
	TaggedPropertyID *int64  `json:"tagged_property_id"`
	PostType         string  `json:"post_type"`
	PropertyID       *int64  `json:"property_id"`
	Likes            int     `json:"likes"`
	LikedByMe        bool    `json:"liked_by_me"`
}

func ToPostResponse(post *entities.Post) PostResponse {
	return PostResponse{
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

func ToPostResponses(posts []*entities.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
