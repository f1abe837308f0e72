package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID         int64              `json:"id"`
	Title      string             `json:"title"`
	Slug       string             `json:"slug"`
	Content    string             `json:"content"`
	Excerpt    string             `json:"excerpt"`
	Published  bool               `json:"published"`
	Tags       []string           `json:"tags"`
	CoverImage *string            `json:"coverImage,omitempty"`
	Likes      int64              `json:"likes"`
	Views      int64              `json:"views"`
	CreatedAt  pgtype.Timestamptz `json:"createdAt"`
	UpdatedAt  pgtype.Timestamptz `json:"updatedAt"`
}
