package post_http

import (
	"context"
	"net/http"
	"strconv"

	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) (int64, error)
}

type DeletePostHandler struct {
	postService PostDeleter
	log         *logger.Logger
}

func NewDeletePostHandler(postService PostDeleter, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{postService: postService, log: log}
}

type deletePostResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (h *DeletePostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		response.Error(w, http.StatusBadRequest, "Missing id parameter")
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	deleted, err := h.postService.DeletePost(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, deletePostResponse{DeletedCount: deleted})
}
