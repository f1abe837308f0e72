package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
	"blog-post-service/internal/model"
	post_repository "blog-post-service/internal/repository/post"
	"blog-post-service/internal/slug"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PostService struct {
	postRepo post_repository.Repository
	log      *logger.Logger
	metrics  metrics.Provider
}

func NewPostService(postRepo post_repository.Repository, log *logger.Logger, metrics metrics.Provider) *PostService {
	return &PostService{
		postRepo: postRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) ListPosts(ctx context.Context, page, limit int, tag *string, includeDrafts bool) (*model.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filters := model.PostFilters{Tag: tag}
	if !includeDrafts {
		published := true
		filters.Published = &published
	}

	total, err := s.postRepo.Count(ctx, filters)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to count posts", slog.String("error", err.Error()))
		return nil, err
	}

	offset := (page - 1) * limit
	filters.Limit = &limit
	filters.Offset = &offset

	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	s.metrics.IncrementPostOperations("list", true)
	return &model.PostPage{
		Posts: posts,
		Pagination: model.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *PostService) GetPostBySlug(ctx context.Context, slugValue string) (*model.Post, error) {
	post, err := s.postRepo.GetPublishedBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.metrics.IncrementPostOperations("get_by_slug", false)
			s.log.Debug("Post not found", slog.String("slug", slugValue))
			return nil, custom_errors.ErrPostNotFound
		}
		s.metrics.IncrementPostOperations("get_by_slug", false)
		s.log.Error("Failed to get post by slug", slog.String("slug", slugValue), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("get_by_slug", true)
	return post, nil
}

func (s *PostService) LikePost(ctx context.Context, slugValue string) error {
	if err := s.postRepo.IncrementLikes(ctx, slugValue); err != nil {
		s.metrics.IncrementPostOperations("like", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found during LikePost", slog.String("slug", slugValue))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to increment likes", slog.String("slug", slugValue), slog.String("error", err.Error()))
		return err
	}

	s.metrics.IncrementPostOperations("like", true)
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrPostValidation
	}

	slugValue := ""
	if dto.Slug != nil {
		slugValue = strings.TrimSpace(*dto.Slug)
	}
	if slugValue == "" {
		slugValue = slug.Make(title)
	}
	if slugValue == "" {
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrInvalidSlug
	}

	newPost := &model.Post{
		Title:     title,
		Slug:      slugValue,
		Tags:      []string{},
		Published: false,
	}
	if dto.Content != nil {
		newPost.Content = *dto.Content
	}
	if dto.Excerpt != nil {
		newPost.Excerpt = *dto.Excerpt
	}
	if dto.Published != nil {
		newPost.Published = *dto.Published
	}
	if dto.Tags != nil {
		newPost.Tags = dto.Tags
	}
	newPost.CoverImage = dto.CoverImage

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		if errors.Is(err, custom_errors.ErrSlugTaken) {
			s.log.Debug("Slug already taken", slog.String("slug", slugValue))
			return nil, custom_errors.ErrSlugTaken
		}
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created", slog.Int64("id", createdPost.ID), slog.String("slug", createdPost.Slug))
	return createdPost, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error) {
	if id <= 0 {
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrPostValidation
	}

	// The slug only moves together with the title; a slug supplied on its
	// own is ignored.
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrPostValidation
		}

		slugValue := ""
		if dto.Slug != nil {
			slugValue = strings.TrimSpace(*dto.Slug)
		}
		if slugValue == "" {
			slugValue = slug.Make(title)
		}
		if slugValue == "" {
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrInvalidSlug
		}
		dto.Slug = &slugValue
	} else {
		dto.Slug = nil
	}

	updatedPost, err := s.postRepo.Update(ctx, id, dto)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found during UpdatePost", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrSlugTaken):
			s.log.Debug("Slug already taken during UpdatePost", slog.Int64("id", id))
			return nil, custom_errors.ErrSlugTaken
		default:
			s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, err
		}
	}

	s.metrics.IncrementPostOperations("update", true)
	return updatedPost, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		s.metrics.IncrementPostOperations("delete", false)
		return 0, custom_errors.ErrPostValidation
	}

	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		return 0, err
	}

	s.metrics.IncrementPostOperations("delete", true)
	s.log.Info("Post deleted", slog.Int64("id", id), slog.Int64("deleted_count", deleted))
	return deleted, nil
}

// GetStats fans out the five independent aggregate reads concurrently.
func (s *PostService) GetStats(ctx context.Context) (*model.PostStats, error) {
	published := true
	draft := false

	stats := &model.PostStats{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	run(func() error {
		total, err := s.postRepo.Count(ctx, model.PostFilters{})
		stats.TotalPosts = total
		return err
	})
	run(func() error {
		count, err := s.postRepo.Count(ctx, model.PostFilters{Published: &published})
		stats.PublishedPosts = count
		return err
	})
	run(func() error {
		count, err := s.postRepo.Count(ctx, model.PostFilters{Published: &draft})
		stats.DraftPosts = count
		return err
	})
	run(func() error {
		views, err := s.postRepo.SumViews(ctx)
		stats.TotalViews = views
		return err
	})
	run(func() error {
		likes, err := s.postRepo.SumLikes(ctx)
		stats.TotalLikes = likes
		return err
	})

	wg.Wait()

	if firstErr != nil {
		s.metrics.IncrementPostOperations("stats", false)
		s.log.Error("Failed to gather post stats", slog.String("error", firstErr.Error()))
		return nil, firstErr
	}

	s.metrics.IncrementPostOperations("stats", true)
	return stats, nil
}
