package post_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

type PostGetter interface {
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{postService: postService, log: log}
}

func (h *GetPostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.Error(w, http.StatusBadRequest, "Missing slug")
		return
	}

	post, err := h.postService.GetPostBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, post)
}
