package post_http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{postService: postService, validate: validate, log: log}
}

type createPostRequestInternal struct {
	Title string `validate:"required"`
}

func (h *CreatePostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var dto model.CreatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := h.validate.Struct(&createPostRequestInternal{Title: dto.Title}); err != nil {
		response.Error(w, http.StatusBadRequest, "Title is required")
		return
	}

	post, err := h.postService.CreatePost(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, post)
}
