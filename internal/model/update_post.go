package model

// UpdatePostDTO carries a partial update. Nil fields are left untouched;
// a nil Tags slice means "not supplied", an empty one clears the tags.
type UpdatePostDTO struct {
	Title      *string  `json:"title,omitempty"`
	Slug       *string  `json:"slug,omitempty"`
	Content    *string  `json:"content,omitempty"`
	Excerpt    *string  `json:"excerpt,omitempty"`
	Published  *bool    `json:"published,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage *string  `json:"coverImage,omitempty"`
}
