package model

type CreatePostDTO struct {
	Title      string   `json:"title"`
	Slug       *string  `json:"slug,omitempty"`
	Content    *string  `json:"content,omitempty"`
	Excerpt    *string  `json:"excerpt,omitempty"`
	Published  *bool    `json:"published,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage *string  `json:"coverImage,omitempty"`
}
