package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, TypeMarkdown, TypeOf(".md"))
	assert.Equal(t, TypeMarkdown, TypeOf(".markdown"))
	assert.Equal(t, TypeMarkdown, TypeOf(".MKDN"))
	assert.Equal(t, TypeTextile, TypeOf(".textile"))
	assert.Equal(t, TypeOther, TypeOf(".html"))
	assert.Equal(t, TypeOther, TypeOf(""))
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]any
		body string
		typ  Type
		slug string
		want string
	}{
		{
			name: "metadata title verbatim",
			meta: map[string]any{"title": "  exact title  "},
			body: "# Not This\n",
			typ:  TypeMarkdown,
			slug: "not-this-either",
			want: "  exact title  ",
		},
		{
			name: "non-string metadata title is stringified",
			meta: map[string]any{"title": 42},
			typ:  TypeMarkdown,
			slug: "x",
			want: "42",
		},
		{
			name: "null metadata title falls through to the body",
			meta: map[string]any{"title": nil},
			body: "# From Heading\n",
			typ:  TypeMarkdown,
			slug: "not-this",
			want: "From Heading",
		},
		{
			name: "atx heading",
			meta: map[string]any{},
			body: "# Hello World\n\nbody text",
			typ:  TypeMarkdown,
			slug: "x",
			want: "Hello World",
		},
		{
			name: "atx heading with trailing hashes",
			meta: map[string]any{},
			body: "## Hello ##\n",
			typ:  TypeMarkdown,
			slug: "x",
			want: "Hello",
		},
		{
			name: "atx heading after blank lines",
			meta: map[string]any{},
			body: "\n\n# Late Start\n",
			typ:  TypeMarkdown,
			slug: "x",
			want: "Late Start",
		},
		{
			name: "setext heading with equals",
			meta: map[string]any{},
			body: "Hello World\n===========\n\nbody",
			typ:  TypeMarkdown,
			slug: "x",
			want: "Hello World",
		},
		{
			name: "setext heading with dashes",
			meta: map[string]any{},
			body: "Hello World\n---\n",
			typ:  TypeMarkdown,
			slug: "x",
			want: "Hello World",
		},
		{
			name: "textile heading",
			meta: map[string]any{},
			body: "h1. Hello World\n\nbody",
			typ:  TypeTextile,
			slug: "x",
			want: "Hello World",
		},
		{
			name: "markdown heuristic ignores textile markers",
			meta: map[string]any{},
			body: "h1. Hello World\n",
			typ:  TypeMarkdown,
			slug: "my-great-post",
			want: "My Great Post",
		},
		{
			name: "no heading falls back to humanized slug",
			meta: map[string]any{},
			body: "just a paragraph\n",
			typ:  TypeMarkdown,
			slug: "my-great-post",
			want: "My Great Post",
		},
		{
			name: "unknown type skips heading heuristics",
			meta: map[string]any{},
			body: "# Looks Like Markdown\n",
			typ:  TypeOther,
			slug: "plain-page",
			want: "Plain Page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.meta, tt.body, tt.typ, tt.slug))
		})
	}
}

func TestHumanizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-great-post", "My Great Post"},
		{"hello", "Hello"},
		{"", ""},
		{"a--b", "A  B"},
		{"123-things", "123 Things"},
		{"éclair-recipes", "Éclair Recipes"},
		{"ALREADY-UP", "ALREADY UP"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanizeSlug(tt.in), "slug %q", tt.in)
	}
}
