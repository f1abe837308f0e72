package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "mixed case with punctuation",
			title: "Next.js App Router: Deep Dive!",
			want:  "nextjs-app-router-deep-dive",
		},
		{
			name:  "whitespace runs collapse",
			title: "a   lot \t of   space",
			want:  "a-lot-of-space",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			title: "  -- dashed title -- ",
			want:  "dashed-title",
		},
		{
			name:  "hyphens inside words preserved",
			title: "Go 1.24 pre-release notes",
			want:  "go-124-pre-release-notes",
		},
		{
			name:  "only symbols yields empty slug",
			title: "!!! ???",
			want:  "",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	title := "Some Long Title, With Commas & Symbols"
	first := Make(title)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Make(title))
	}
}
