package cache

import (
	"context"

	"blog-post-service/internal/model"
)

// ListCache stores rendered pages of the public post listing. Admin listings
// are never cached so drafts cannot leak through a shared key space.
type ListCache interface {
	GetPage(ctx context.Context, page, limit int, tag *string) (*model.PostPage, error)
	SetPage(ctx context.Context, page, limit int, tag *string, result *model.PostPage) error
	InvalidateAll(ctx context.Context) error
}
