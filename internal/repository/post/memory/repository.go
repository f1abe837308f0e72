package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

// PostRepository is an in-memory implementation used by tests. It mirrors the
// postgres behaviour, including slug uniqueness and atomic counters.
type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func clonePost(post *model.Post) *model.Post {
	result := *post
	result.Tags = append([]string{}, post.Tags...)
	if post.CoverImage != nil {
		cover := *post.CoverImage
		result.CoverImage = &cover
	}
	return &result
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.posts {
		if existing.Slug == post.Slug {
			return nil, custom_errors.ErrSlugTaken
		}
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := clonePost(post)
	newPost.ID = p.nextID
	newPost.Likes = 0
	newPost.Views = 0
	newPost.CreatedAt = now
	newPost.UpdatedAt = now
	p.nextID++

	p.posts[newPost.ID] = newPost

	return clonePost(newPost), nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	return clonePost(post), nil
}

func (p *PostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, post := range p.posts {
		if post.Slug == slug && post.Published {
			post.Views++
			return clonePost(post), nil
		}
	}

	p.log.Debug("Published post not found by slug", slog.String("slug", slug))
	return nil, custom_errors.ErrPostNotFound
}

func (p *PostRepository) IncrementLikes(ctx context.Context, slug string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, post := range p.posts {
		if post.Slug == slug {
			post.Likes++
			return nil
		}
	}

	p.log.Debug("Post not found by slug during IncrementLikes", slog.String("slug", slug))
	return custom_errors.ErrPostNotFound
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Slug != nil {
		for otherID, other := range p.posts {
			if otherID != id && other.Slug == *update.Slug {
				return nil, custom_errors.ErrSlugTaken
			}
		}
		post.Slug = *update.Slug
	}
	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Excerpt != nil {
		post.Excerpt = *update.Excerpt
	}
	if update.Published != nil {
		post.Published = *update.Published
	}
	if update.Tags != nil {
		post.Tags = append([]string{}, update.Tags...)
	}
	if update.CoverImage != nil {
		cover := *update.CoverImage
		post.CoverImage = &cover
	}
	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	return clonePost(post), nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return 0, nil
	}
	delete(p.posts, id)
	return 1, nil
}

func (p *PostRepository) matching(filters model.PostFilters) []*model.Post {
	var result []*model.Post
	for _, post := range p.posts {
		if filters.Published != nil && post.Published != *filters.Published {
			continue
		}
		if filters.Tag != nil {
			found := false
			for _, tag := range post.Tags {
				if tag == *filters.Tag {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, post)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Time.Equal(result[j].CreatedAt.Time) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.Time.After(result[j].CreatedAt.Time)
	})

	return result
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	matched := p.matching(filters)

	offset := 0
	if filters.Offset != nil {
		offset = *filters.Offset
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]

	if filters.Limit != nil && *filters.Limit < len(matched) {
		matched = matched[:*filters.Limit]
	}

	result := make([]*model.Post, 0, len(matched))
	for _, post := range matched {
		result = append(result, clonePost(post))
	}
	return result, nil
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return int64(len(p.matching(filters))), nil
}

func (p *PostRepository) SumViews(ctx context.Context) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var sum int64
	for _, post := range p.posts {
		sum += post.Views
	}
	return sum, nil
}

func (p *PostRepository) SumLikes(ctx context.Context) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var sum int64
	for _, post := range p.posts {
		sum += post.Likes
	}
	return sum, nil
}
