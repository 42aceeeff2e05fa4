package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ParsedName
	}{
		{
			name: "date only",
			in:   "2008-11-05-hello-world.md",
			want: ParsedName{
				Date: time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local),
				Slug: "hello-world",
				Ext:  ".md",
			},
		},
		{
			name: "date and time",
			in:   "2008-11-05_14-30-hello.md",
			want: ParsedName{
				Date: time.Date(2008, 11, 5, 14, 30, 0, 0, time.Local),
				Slug: "hello",
				Ext:  ".md",
			},
		},
		{
			name: "embedded directories become topics",
			in:   "ruby/rails/2009-01-31-first.textile",
			want: ParsedName{
				Topics: []string{"ruby", "rails"},
				Date:   time.Date(2009, 1, 31, 0, 0, 0, 0, time.Local),
				Slug:   "first",
				Ext:    ".textile",
			},
		},
		{
			name: "single digit month and day",
			in:   "2010-1-2-short.md",
			want: ParsedName{
				Date: time.Date(2010, 1, 2, 0, 0, 0, 0, time.Local),
				Slug: "short",
				Ext:  ".md",
			},
		},
		{
			name: "empty slug is allowed by the pattern",
			in:   "2008-11-05-.md",
			want: ParsedName{
				Date: time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local),
				Slug: "",
				Ext:  ".md",
			},
		},
		{
			name: "dots in the slug stay with the slug",
			in:   "2008-11-05-release-1.2.3.md",
			want: ParsedName{
				Date: time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local),
				Slug: "release-1.2.3",
				Ext:  ".md",
			},
		},
		{
			name: "hyphenated digits without underscore belong to the slug",
			in:   "2008-11-05-14-30-hello.md",
			want: ParsedName{
				Date: time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local),
				Slug: "14-30-hello",
				Ext:  ".md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ValidName(tt.in))
			got, err := ParseName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidNameRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"hello.md",
		"2008-11-05-hello",
		"2008-11-hello.md",
		"notes.txt",
		"2008-11-05-hello.",
		".md",
	} {
		assert.False(t, ValidName(in), "%q should not be a valid post name", in)
	}
}

func TestParseNameRejectsInvalid(t *testing.T) {
	_, err := ParseName("hello.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadName)
}

func TestParseNameBadDateIsConstructionError(t *testing.T) {
	// the pattern accepts loose digit runs, so the cheap pre-check
	// passes and the strict construction fails
	in := "2008-99-99-impossible.md"
	assert.True(t, ValidName(in))

	_, err := ParseName(in)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadName)
}
