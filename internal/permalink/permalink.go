// Package permalink computes the output location of a post from a
// permalink style template, or from an explicit override set in the
// post's front matter.
package permalink

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Style names one of the built-in path templates, or is itself a raw
// template when it matches none of the known names.
type Style string

const (
	StylePretty Style = "pretty"
	StyleNone   Style = "none"
	StyleDate   Style = "date"
)

// Template returns the path template the style stands for. An empty
// style defaults to the date template.
func (s Style) Template() string {
	switch s {
	case StylePretty:
		return "/:categories/:year/:month/:day/:title"
	case StyleNone:
		return "/:categories/:title.html"
	case StyleDate, "":
		return "/:categories/:year/:month/:day/:title.html"
	default:
		return string(s)
	}
}

// Params carries the post fields a template can reference. Permalink,
// when non-empty, is the front-matter override and wins over the style.
type Params struct {
	Date       time.Time
	Slug       string
	Categories []string
	Permalink  string
}

type Resolver struct {
	Style Style

	// ExtensionlessURLs strips a trailing ".html" from URLs so that a
	// web server with clean-URL rewriting can serve them.
	ExtensionlessURLs bool
}

// Resolve computes the generated path. An explicit permalink is used
// verbatim. Otherwise each template token is replaced literally and a
// single collapse pass rewrites "//" to "/", which removes the doubled
// separator an empty category list leaves behind.
func (r Resolver) Resolve(p Params) string {
	if p.Permalink != "" {
		return p.Permalink
	}
	repl := strings.NewReplacer(
		":year", fmt.Sprintf("%04d", p.Date.Year()),
		":month", fmt.Sprintf("%02d", int(p.Date.Month())),
		":day", fmt.Sprintf("%02d", p.Date.Day()),
		":title", p.Slug,
		":categories", joinCategories(p.Categories),
	)
	return strings.ReplaceAll(repl.Replace(r.Style.Template()), "//", "/")
}

// URL is the resolved path, with the trailing ".html" stripped when
// extensionless URLs are on.
func (r Resolver) URL(p Params) string {
	u := r.Resolve(p)
	if r.ExtensionlessURLs {
		u = strings.TrimSuffix(u, ".html")
	}
	return u
}

// Dir is the directory portion of the URL.
func (r Resolver) Dir(p Params) string {
	return path.Dir(r.URL(p))
}

// Destination maps the resolved path into the output tree under root.
// When the active style template does not end in ".html" the path is a
// directory and the file goes to <path>/index.html; the check is on the
// template, so an explicit permalink follows the site-wide style's rule.
func (r Resolver) Destination(root string, p Params) string {
	out := filepath.Join(root, filepath.FromSlash(r.Resolve(p)))
	if !strings.HasSuffix(r.Style.Template(), ".html") {
		out = filepath.Join(out, "index.html")
	}
	return out
}

// joinCategories sorts a copy; the post's own category order is
// meaningful elsewhere and must not change.
func joinCategories(cats []string) string {
	if len(cats) == 0 {
		return ""
	}
	sorted := make([]string, len(cats))
	copy(sorted, cats)
	sort.Strings(sorted)
	return strings.Join(sorted, "/")
}
