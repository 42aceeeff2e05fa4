package permalink

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	date := time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		style Style
		p     Params
		want  string
	}{
		{
			name:  "none style",
			style: StyleNone,
			p:     Params{Date: date, Slug: "hello", Categories: []string{"a", "b"}},
			want:  "/a/b/hello.html",
		},
		{
			name:  "date style",
			style: StyleDate,
			p:     Params{Date: date, Slug: "hello", Categories: []string{"a", "b"}},
			want:  "/a/b/2008/11/05/hello.html",
		},
		{
			name:  "pretty style",
			style: StylePretty,
			p:     Params{Date: date, Slug: "hello", Categories: []string{"a", "b"}},
			want:  "/a/b/2008/11/05/hello",
		},
		{
			name:  "empty style defaults to date",
			style: "",
			p:     Params{Date: date, Slug: "hello"},
			want:  "/2008/11/05/hello.html",
		},
		{
			name:  "pretty with empty categories collapses the doubled separator",
			style: StylePretty,
			p:     Params{Date: date, Slug: "hello"},
			want:  "/2008/11/05/hello",
		},
		{
			name:  "explicit permalink wins verbatim",
			style: StyleDate,
			p:     Params{Date: date, Slug: "hello", Categories: []string{"a"}, Permalink: "/my/custom/page.html"},
			want:  "/my/custom/page.html",
		},
		{
			name:  "custom template",
			style: Style("/blog/:year/:title/"),
			p:     Params{Date: date, Slug: "hello"},
			want:  "/blog/2008/hello/",
		},
		{
			name:  "categories joined in sorted order",
			style: StyleNone,
			p:     Params{Date: date, Slug: "x", Categories: []string{"zebra", "alpha"}},
			want:  "/alpha/zebra/x.html",
		},
		{
			name:  "single digit month and day are zero padded",
			style: StyleDate,
			p:     Params{Date: time.Date(2010, 1, 2, 0, 0, 0, 0, time.Local), Slug: "x"},
			want:  "/2010/01/02/x.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{Style: tt.style}
			assert.Equal(t, tt.want, r.Resolve(tt.p))
		})
	}
}

func TestResolveDoesNotReorderCallerCategories(t *testing.T) {
	cats := []string{"zebra", "alpha"}
	r := Resolver{Style: StyleNone}
	r.Resolve(Params{Date: time.Now(), Slug: "x", Categories: cats})
	assert.Equal(t, []string{"zebra", "alpha"}, cats)
}

func TestURL(t *testing.T) {
	date := time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local)
	p := Params{Date: date, Slug: "hello", Categories: []string{"a", "b"}}

	plain := Resolver{Style: StyleDate}
	assert.Equal(t, "/a/b/2008/11/05/hello.html", plain.URL(p))

	clean := Resolver{Style: StyleDate, ExtensionlessURLs: true}
	assert.Equal(t, "/a/b/2008/11/05/hello", clean.URL(p))

	// pretty paths have no extension to strip
	pretty := Resolver{Style: StylePretty, ExtensionlessURLs: true}
	assert.Equal(t, "/a/b/2008/11/05/hello", pretty.URL(p))
}

func TestDir(t *testing.T) {
	date := time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local)
	r := Resolver{Style: StyleNone}
	assert.Equal(t, "/a/b", r.Dir(Params{Date: date, Slug: "hello", Categories: []string{"a", "b"}}))
}

func TestDestination(t *testing.T) {
	date := time.Date(2008, 11, 5, 0, 0, 0, 0, time.Local)
	p := Params{Date: date, Slug: "hello", Categories: []string{"a"}}

	tests := []struct {
		name  string
		style Style
		p     Params
		want  string
	}{
		{
			name:  "html template writes the file directly",
			style: StyleDate,
			p:     p,
			want:  "public/a/2008/11/05/hello.html",
		},
		{
			name:  "extensionless template writes index.html inside the directory",
			style: StylePretty,
			p:     p,
			want:  "public/a/2008/11/05/hello/index.html",
		},
		{
			name:  "explicit permalink still follows the style template rule",
			style: StylePretty,
			p:     Params{Date: date, Slug: "hello", Permalink: "/about"},
			want:  "public/about/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{Style: tt.style}
			assert.Equal(t, tt.want, r.Destination("public", tt.p))
		})
	}
}
