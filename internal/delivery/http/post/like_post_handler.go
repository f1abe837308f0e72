package post_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
)

type PostLiker interface {
	LikePost(ctx context.Context, slug string) error
}

type LikePostHandler struct {
	postService PostLiker
	log         *logger.Logger
}

func NewLikePostHandler(postService PostLiker, log *logger.Logger) *LikePostHandler {
	return &LikePostHandler{postService: postService, log: log}
}

type likePostResponse struct {
	Success bool `json:"success"`
}

func (h *LikePostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.Error(w, http.StatusBadRequest, "Missing slug")
		return
	}

	if err := h.postService.LikePost(r.Context(), slug); err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, likePostResponse{Success: true})
}
