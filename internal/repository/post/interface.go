package post_repository

import (
	"context"

	"blog-post-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg post_repository_mock --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// GetPublishedBySlug retrieves a published post and atomically increments
	// its view counter in the same statement. Drafts and missing slugs are
	// indistinguishable to the caller.
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error)
	IncrementLikes(ctx context.Context, slug string) error
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	Count(ctx context.Context, filters model.PostFilters) (int64, error)
	SumViews(ctx context.Context) (int64, error)
	SumLikes(ctx context.Context) (int64, error)
}
