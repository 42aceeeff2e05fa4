package content

import (
	"fmt"
	"path"
	"stanza/internal/permalink"
	"time"
)

// Source locates a post file relative to the content root. Dir is the
// slash-separated path between the root and the file ("" at the root)
// and is the primary category source; Name must match the post pattern.
type Source struct {
	Dir  string
	Name string
}

// Post is one dated content entry. It is fully normalized at
// construction and, apart from Output being set once by the render
// pipeline, never mutated afterwards.
type Post struct {
	ID   string
	Date time.Time
	Slug string
	Ext  string
	Path string

	Topics     []string
	Categories []string
	Tags       []string
	Published  bool

	// Permalink is the front-matter override, "" when the style
	// template applies.
	Permalink string

	Meta    map[string]any
	Content string
	Output  string

	URL string
	Dir string
}

// New builds a fully normalized post. The name must parse; a name that
// was accepted by ValidName but carries an unparseable date, or an
// invalid time override, is a construction error that aborts this post
// only. The URL, directory and identifier are pure functions of the
// other fields and are computed here once.
func New(src Source, fm FrontMatter, meta map[string]any, body string, res permalink.Resolver) (*Post, error) {
	pn, err := ParseName(src.Name)
	if err != nil {
		return nil, err
	}

	date := pn.Date
	if fm.Time != "" {
		hm, err := time.ParseInLocation("15:4", fm.Time, time.Local)
		if err != nil {
			return nil, fmt.Errorf("post %q has an invalid time override %q", src.Name, fm.Time)
		}
		y, mo, d := date.Date()
		date = time.Date(y, mo, d, hm.Hour(), hm.Minute(), 0, 0, time.Local)
	}

	if meta == nil {
		meta = make(map[string]any)
	}

	tags := []string(fm.Tags)
	if tags == nil {
		tags = []string{}
	}

	p := &Post{
		Date:       date,
		Slug:       pn.Slug,
		Ext:        pn.Ext,
		Path:       path.Join(src.Dir, src.Name),
		Topics:     pn.Topics,
		Categories: ResolveCategories(src.Dir, fm),
		Tags:       tags,
		Published:  fm.Published == nil || *fm.Published,
		Permalink:  fm.Permalink,
		Meta:       meta,
		Content:    body,
	}

	p.URL = res.URL(p.Params())
	p.Dir = res.Dir(p.Params())
	p.ID = path.Join(p.Dir, p.Slug)

	// inject the derived title exactly once so every downstream
	// consumer sees a uniform field; an explicit title is never
	// touched, and a bare "title:" key counts as absent
	if v, ok := meta["title"]; !ok || v == nil {
		meta["title"] = ExtractTitle(meta, body, TypeOf(p.Ext), p.Slug)
	}

	return p, nil
}

// Params exposes the fields the permalink resolver needs, so callers
// can recompute locations (destination paths in particular) without
// reaching into the post.
func (p *Post) Params() permalink.Params {
	return permalink.Params{
		Date:       p.Date,
		Slug:       p.Slug,
		Categories: p.Categories,
		Permalink:  p.Permalink,
	}
}

// Title reads the normalized title from the metadata mapping.
func (p *Post) Title() string {
	if v, ok := p.Meta["title"]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}

// Layout names the layout chain entry point, defaulting to "post".
func (p *Post) Layout() string {
	if v, ok := p.Meta["layout"].(string); ok && v != "" {
		return v
	}
	return "post"
}
