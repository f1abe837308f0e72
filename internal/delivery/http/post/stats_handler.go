package post_http

import (
	"context"
	"net/http"

	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

type StatsGetter interface {
	GetStats(ctx context.Context) (*model.PostStats, error)
}

type StatsHandler struct {
	postService StatsGetter
	log         *logger.Logger
}

func NewStatsHandler(postService StatsGetter, log *logger.Logger) *StatsHandler {
	return &StatsHandler{postService: postService, log: log}
}

func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.postService.GetStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
