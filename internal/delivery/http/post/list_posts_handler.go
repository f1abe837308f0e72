package post_http

import (
	"context"
	"net/http"
	"strconv"

	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/middleware"
	"blog-post-service/internal/model"
	post_service "blog-post-service/internal/service/post"
)

type PostLister interface {
	ListPosts(ctx context.Context, page, limit int, tag *string, includeDrafts bool) (*model.PostPage, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{postService: postService, log: log}
}

func (h *ListPostsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if v := query.Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			page = parsed
		}
	}

	limit := post_service.DefaultPageSize
	if v := query.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	var tag *string
	if v := query.Get("tag"); v != "" {
		tag = &v
	}

	result, err := h.postService.ListPosts(r.Context(), page, limit, tag, middleware.IsAdmin(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
