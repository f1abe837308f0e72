package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func TestPostRepository_Create(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	t.Run("assigns id, zeroes counters and sets timestamps", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{
			Title:     "Hello World",
			Slug:      "hello-world",
			Content:   "body",
			Published: true,
			Tags:      []string{"go"},
			Likes:     99,
			Views:     99,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, int64(0), created.Likes)
		assert.Equal(t, int64(0), created.Views)
		assert.True(t, created.CreatedAt.Valid)
		assert.True(t, created.UpdatedAt.Valid)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		repo := NewPostRepository(log)

		_, err := repo.Create(ctx, &model.Post{Title: "First", Slug: "same-slug"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &model.Post{Title: "Second", Slug: "same-slug"})
		assert.ErrorIs(t, err, custom_errors.ErrSlugTaken)
	})

	t.Run("returned post is detached from the store", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{Title: "Detached", Slug: "detached", Tags: []string{"a"}})
		require.NoError(t, err)

		created.Title = "mutated"
		created.Tags[0] = "mutated"

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Detached", stored.Title)
		assert.Equal(t, []string{"a"}, stored.Tags)
	})
}

func TestPostRepository_GetPublishedBySlug(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	t.Run("increments views on every read", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{Title: "Viewed", Slug: "viewed", Published: true})
		require.NoError(t, err)

		first, err := repo.GetPublishedBySlug(ctx, "viewed")
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.Views)

		second, err := repo.GetPublishedBySlug(ctx, "viewed")
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.Views)

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stored.Views)
	})

	t.Run("draft is indistinguishable from missing", func(t *testing.T) {
		repo := NewPostRepository(log)

		_, err := repo.Create(ctx, &model.Post{Title: "Draft", Slug: "draft", Published: false})
		require.NoError(t, err)

		_, err = repo.GetPublishedBySlug(ctx, "draft")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

		_, err = repo.GetPublishedBySlug(ctx, "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("draft views stay untouched", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{Title: "Draft", Slug: "draft", Published: false})
		require.NoError(t, err)

		_, _ = repo.GetPublishedBySlug(ctx, "draft")

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored.Views)
	})
}

func TestPostRepository_IncrementLikes(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	t.Run("likes a draft as well as a published post", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{Title: "Draft", Slug: "draft", Published: false})
		require.NoError(t, err)

		require.NoError(t, repo.IncrementLikes(ctx, "draft"))

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.Likes)
	})

	t.Run("unknown slug", func(t *testing.T) {
		repo := NewPostRepository(log)
		err := repo.IncrementLikes(ctx, "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("concurrent likes are all counted", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{Title: "Popular", Slug: "popular", Published: true})
		require.NoError(t, err)

		const workers = 50
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_ = repo.IncrementLikes(ctx, "popular")
			}()
		}
		wg.Wait()

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(workers), stored.Likes)
	})
}

func TestPostRepository_Update(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{
			Title:   "Original",
			Slug:    "original",
			Content: "original content",
			Tags:    []string{"go", "blog"},
		})
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		updated, err := repo.Update(ctx, created.ID, &model.UpdatePostDTO{Published: boolPtr(true)})
		require.NoError(t, err)

		assert.True(t, updated.Published)
		assert.True(t, updated.UpdatedAt.Time.After(created.UpdatedAt.Time))
		assert.True(t, updated.CreatedAt.Time.Equal(created.CreatedAt.Time))
		assert.Equal(t, "Original", updated.Title)
		assert.Equal(t, "original", updated.Slug)
		assert.Equal(t, "original content", updated.Content)
		assert.Equal(t, []string{"go", "blog"}, updated.Tags)
	})

	t.Run("slug conflict with another post", func(t *testing.T) {
		repo := NewPostRepository(log)

		_, err := repo.Create(ctx, &model.Post{Title: "First", Slug: "first"})
		require.NoError(t, err)
		second, err := repo.Create(ctx, &model.Post{Title: "Second", Slug: "second"})
		require.NoError(t, err)

		_, err = repo.Update(ctx, second.ID, &model.UpdatePostDTO{Slug: strPtr("first")})
		assert.ErrorIs(t, err, custom_errors.ErrSlugTaken)
	})

	t.Run("keeping own slug is not a conflict", func(t *testing.T) {
		repo := NewPostRepository(log)

		created, err := repo.Create(ctx, &model.Post{Title: "Self", Slug: "self"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, &model.UpdatePostDTO{
			Title: strPtr("Self Updated"),
			Slug:  strPtr("self"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Self Updated", updated.Title)
		assert.Equal(t, "self", updated.Slug)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := NewPostRepository(log)
		_, err := repo.Update(ctx, 42, &model.UpdatePostDTO{Title: strPtr("Nope")})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	repo := NewPostRepository(log)
	created, err := repo.Create(ctx, &model.Post{Title: "Doomed", Slug: "doomed"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestPostRepository_ListAndCount(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	seed := func(t *testing.T, repo *PostRepository) {
		t.Helper()
		for i := 1; i <= 5; i++ {
			published := i%2 == 1
			tags := []string{"go"}
			if i > 3 {
				tags = []string{"life"}
			}
			_, err := repo.Create(ctx, &model.Post{
				Title:     fmt.Sprintf("Post %d", i),
				Slug:      fmt.Sprintf("post-%d", i),
				Published: published,
				Tags:      tags,
			})
			require.NoError(t, err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		repo := NewPostRepository(log)
		seed(t, repo)

		posts, err := repo.List(ctx, model.PostFilters{})
		require.NoError(t, err)
		require.Len(t, posts, 5)
		assert.Equal(t, "post-5", posts[0].Slug)
		assert.Equal(t, "post-1", posts[4].Slug)
	})

	t.Run("published filter", func(t *testing.T) {
		repo := NewPostRepository(log)
		seed(t, repo)

		count, err := repo.Count(ctx, model.PostFilters{Published: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		posts, err := repo.List(ctx, model.PostFilters{Published: boolPtr(true)})
		require.NoError(t, err)
		for _, post := range posts {
			assert.True(t, post.Published)
		}
	})

	t.Run("tag filter", func(t *testing.T) {
		repo := NewPostRepository(log)
		seed(t, repo)

		posts, err := repo.List(ctx, model.PostFilters{Tag: strPtr("life")})
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("limit and offset", func(t *testing.T) {
		repo := NewPostRepository(log)
		seed(t, repo)

		posts, err := repo.List(ctx, model.PostFilters{Limit: intPtr(2), Offset: intPtr(2)})
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "post-3", posts[0].Slug)
		assert.Equal(t, "post-2", posts[1].Slug)
	})

	t.Run("offset past the end", func(t *testing.T) {
		repo := NewPostRepository(log)
		seed(t, repo)

		posts, err := repo.List(ctx, model.PostFilters{Limit: intPtr(10), Offset: intPtr(100)})
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_Sums(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	repo := NewPostRepository(log)

	views, err := repo.SumViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), views)

	_, err = repo.Create(ctx, &model.Post{Title: "A", Slug: "a", Published: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Post{Title: "B", Slug: "b", Published: true})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = repo.GetPublishedBySlug(ctx, "a")
		require.NoError(t, err)
	}
	_, err = repo.GetPublishedBySlug(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, repo.IncrementLikes(ctx, "a"))
	require.NoError(t, repo.IncrementLikes(ctx, "b"))

	views, err = repo.SumViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), views)

	likes, err := repo.SumLikes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), likes)
}
