package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
	"blog-post-service/internal/model"
	"blog-post-service/internal/repository/postgres/db"
)

const postColumns = "id, title, slug, content, excerpt, published, tags, cover_image, likes, views, created_at, updated_at"

const uniqueViolationCode = "23505"

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.Published,
		&post.Tags,
		&post.CoverImage,
		&post.Likes,
		&post.Views,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.String("slug", post.Slug), slog.String("title", post.Title))

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"title":       post.Title,
		"slug":        post.Slug,
		"content":     post.Content,
		"excerpt":     post.Excerpt,
		"published":   post.Published,
		"tags":        post.Tags,
		"cover_image": post.CoverImage,
		"created_at":  now,
		"updated_at":  now,
	}

	query := `
		INSERT INTO posts (title, slug, content, excerpt, published, tags, cover_image, likes, views, created_at, updated_at)
		VALUES (@title, @slug, @content, @excerpt, @published, @tags, @cover_image, 0, 0, @created_at, @updated_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
		if isUniqueViolation(err) {
			p.log.Debug("Slug already exists", slog.String("slug", post.Slug))
			return nil, custom_errors.ErrSlugTaken
		}
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	p.log.Debug("Successfully created post", slog.Int64("id", createdPost.ID), slog.String("slug", createdPost.Slug))
	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	return post, nil
}

// GetPublishedBySlug is the conflated read: the view counter is bumped and the
// post-increment row returned in one atomic statement, so a draft or missing
// slug both come back as not-found without leaking which it was.
func (p *PostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	start := time.Now()

	args := pgx.NamedArgs{"slug": slug}
	query := `
		UPDATE posts SET views = views + 1
		WHERE slug = @slug AND published = TRUE
		RETURNING ` + postColumns

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_slug", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_slug", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Published post not found by slug", slog.String("slug", slug))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_slug", true)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_slug", time.Since(start))
	return post, nil
}

func (p *PostRepository) IncrementLikes(ctx context.Context, slug string) error {
	start := time.Now()

	args := pgx.NamedArgs{"slug": slug}
	query := `UPDATE posts SET likes = likes + 1 WHERE slug = @slug`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_increment_likes", false)
		p.metrics.RecordDatabaseQueryDuration("post_increment_likes", time.Since(start))
		p.log.Error("Error incrementing likes", slog.String("slug", slug), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_increment_likes", true)
	p.metrics.RecordDatabaseQueryDuration("post_increment_likes", time.Since(start))

	if result.RowsAffected() == 0 {
		p.log.Debug("Post not found by slug during IncrementLikes", slog.String("slug", slug))
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Slug != nil {
		setClauses = append(setClauses, "slug = @slug")
		args["slug"] = *update.Slug
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.Excerpt != nil {
		setClauses = append(setClauses, "excerpt = @excerpt")
		args["excerpt"] = *update.Excerpt
	}
	if update.Published != nil {
		setClauses = append(setClauses, "published = @published")
		args["published"] = *update.Published
	}
	if update.Tags != nil {
		setClauses = append(setClauses, "tags = @tags")
		args["tags"] = update.Tags
	}
	if update.CoverImage != nil {
		setClauses = append(setClauses, "cover_image = @cover_image")
		args["cover_image"] = *update.CoverImage
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_update", false)
		p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		if isUniqueViolation(err) {
			p.log.Debug("Slug already exists during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrSlugTaken
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_update", true)
	p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
	return updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) (int64, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_delete", true)
	p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
	return result.RowsAffected(), nil
}

func buildFilterClauses(filters model.PostFilters, args pgx.NamedArgs) []string {
	whereClauses := []string{}
	if filters.Published != nil {
		whereClauses = append(whereClauses, "published = @published")
		args["published"] = *filters.Published
	}
	if filters.Tag != nil {
		whereClauses = append(whereClauses, "@tag = ANY(tags)")
		args["tag"] = *filters.Tag
	}
	return whereClauses
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	start := time.Now()

	args := pgx.NamedArgs{}
	baseQuery := `SELECT ` + postColumns + ` FROM posts`

	if whereClauses := buildFilterClauses(filters, args); len(whereClauses) > 0 {
		baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	// Secondary sort on id keeps pagination stable for posts created in the
	// same instant.
	baseQuery += " ORDER BY created_at DESC, id DESC"

	if filters.Limit != nil {
		baseQuery += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		baseQuery += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, baseQuery, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	return posts, nil
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int64, error) {
	start := time.Now()

	args := pgx.NamedArgs{}
	query := `SELECT COUNT(*) FROM posts`

	if whereClauses := buildFilterClauses(filters, args); len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var count int64
	if err := p.db.QueryRow(ctx, query, args).Scan(&count); err != nil {
		p.metrics.IncrementDatabaseQueries("post_count", false)
		p.metrics.RecordDatabaseQueryDuration("post_count", time.Since(start))
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_count", true)
	p.metrics.RecordDatabaseQueryDuration("post_count", time.Since(start))
	return count, nil
}

func (p *PostRepository) SumViews(ctx context.Context) (int64, error) {
	return p.sumColumn(ctx, "views", "post_sum_views")
}

func (p *PostRepository) SumLikes(ctx context.Context) (int64, error) {
	return p.sumColumn(ctx, "likes", "post_sum_likes")
}

func (p *PostRepository) sumColumn(ctx context.Context, column, queryType string) (int64, error) {
	start := time.Now()

	query := `SELECT COALESCE(SUM(` + column + `), 0) FROM posts`

	var sum int64
	if err := p.db.QueryRow(ctx, query).Scan(&sum); err != nil {
		p.metrics.IncrementDatabaseQueries(queryType, false)
		p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		p.log.Error("Error summing posts column", slog.String("column", column), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries(queryType, true)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
	return sum, nil
}
