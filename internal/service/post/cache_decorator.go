package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-post-service/internal/cache"
	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
	"blog-post-service/internal/model"
)

// PostServiceCacheDecorator caches public list pages in front of the real
// service. Only the unauthenticated listing is cached; every mutation drops
// the whole listing key space. Cache failures degrade to the wrapped service,
// they are never surfaced.
type PostServiceCacheDecorator struct {
	service   Service
	listCache cache.ListCache
	log       *logger.Logger
	metrics   metrics.Provider
}

func NewPostServiceCacheDecorator(
	service Service,
	listCache cache.ListCache,
	log *logger.Logger,
	metrics metrics.Provider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		listCache: listCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, page, limit int, tag *string, includeDrafts bool) (*model.PostPage, error) {
	if includeDrafts {
		return d.service.ListPosts(ctx, page, limit, tag, includeDrafts)
	}

	start := time.Now()
	cached, err := d.listCache.GetPage(ctx, page, limit, tag)
	d.metrics.RecordCacheOperationDuration("list_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post list from cache", slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	result, err := d.service.ListPosts(ctx, page, limit, tag, includeDrafts)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.listCache.SetPage(ctx, page, limit, tag, result); err != nil {
		d.log.Warn("Failed to cache post list", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("list_set", time.Since(setStart))

	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	// Never cached: every read must count a view.
	return d.service.GetPostBySlug(ctx, slug)
}

func (d *PostServiceCacheDecorator) LikePost(ctx context.Context, slug string) error {
	return d.service.LikePost(ctx, slug)
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error) {
	result, err := d.service.CreatePost(ctx, dto)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx)
	return result, nil
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error) {
	result, err := d.service.UpdatePost(ctx, id, dto)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx)
	return result, nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, id int64) (int64, error) {
	deleted, err := d.service.DeletePost(ctx, id)
	if err != nil {
		return 0, err
	}
	d.invalidate(ctx)
	return deleted, nil
}

func (d *PostServiceCacheDecorator) GetStats(ctx context.Context) (*model.PostStats, error) {
	return d.service.GetStats(ctx)
}

func (d *PostServiceCacheDecorator) invalidate(ctx context.Context) {
	if err := d.listCache.InvalidateAll(ctx); err != nil {
		d.log.Warn("Failed to invalidate post list cache", slog.String("error", err.Error()))
	}
}
