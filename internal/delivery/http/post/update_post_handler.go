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

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{postService: postService, validate: validate, log: log}
}

type updatePostRequest struct {
	ID int64 `json:"id"`
	model.UpdatePostDTO
}

type updatePostRequestInternal struct {
	ID int64 `validate:"required,gt=0"`
}

type updatePostResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

func (h *UpdatePostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := h.validate.Struct(&updatePostRequestInternal{ID: req.ID}); err != nil {
		response.Error(w, http.StatusBadRequest, "Missing id parameter")
		return
	}

	if _, err := h.postService.UpdatePost(r.Context(), req.ID, &req.UpdatePostDTO); err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updatePostResponse{ModifiedCount: 1})
}
