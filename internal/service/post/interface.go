package post_service

import (
	"context"

	"blog-post-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post_service --outpkg post_service_mock --filename PostService.go
type Service interface {
	// ListPosts returns one page of posts, newest first. Drafts are included
	// only when the caller holds an admin session.
	ListPosts(ctx context.Context, page, limit int, tag *string, includeDrafts bool) (*model.PostPage, error)
	// GetPostBySlug returns a published post and counts the view.
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	LikePost(ctx context.Context, slug string) error
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) (int64, error)
	GetStats(ctx context.Context) (*model.PostStats, error)
}
