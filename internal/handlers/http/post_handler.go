package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/services"
)

// PostHandler lida com o feed social
type PostHandler struct {
	postService *services.PostService
	logger      ports.Logger
}

// NewPostHandler cria um novo PostHandler
func NewPostHandler(postService *services.PostService, logger ports.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ListPosts retorna o feed, mais novo primeiro
// @Summary Listar publicações
// @Tags posts
// @Produce json
// @Success 200 {array} dto.PostResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// CreatePost publica no feed
// @Summary Criar publicação
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Publicação"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(c, &req, "validation.author_content_required") {
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), services.CreatePostInput{
		Author:           req.Author,
		Content:          req.Content,
		Time:             req.Time,
		Type:             req.Type,
		Image:            req.Image,
		MediaType:        req.MediaType,
		TaggedPropertyID: req.TaggedPropertyID,
		PostType:         req.PostType,
		PropertyID:       req.PropertyID,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

// LikePost soma ou subtrai uma curtida
// @Summary Curtir publicação
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "ID da publicação"
// @Param request body dto.LikePostRequest true "Estado da curtida"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/like [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.LikePostRequest
	if !bindJSON(c, &req, "validation.liked_required") {
		return
	}

	post, err := h.postService.LikePost(c.Request.Context(), id, *req.Liked)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}
