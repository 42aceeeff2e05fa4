package build

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"stanza/internal/domain/config"
	"stanza/internal/domain/content"
	"stanza/internal/index"
	"stanza/internal/ingest"
	"stanza/internal/permalink"
	"stanza/internal/related"
	"stanza/internal/render"
)

const homePageSize = 20

// FileWriter is the output contract: rendered pages land at the
// destination paths the permalink resolver computes.
type FileWriter interface {
	Write(path string, data []byte) error
}

// DirWriter writes straight to the filesystem, creating parent
// directories as needed.
type DirWriter struct{}

func (DirWriter) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

type Builder struct {
	Cfg       config.Config
	IndexPath string
	Writer    FileWriter // nil means DirWriter
}

type Result struct {
	Posts    int
	Warnings []ingest.Warning
}

// Run performs one whole batch: load sources, drop unpublished posts,
// sort, rebuild the index, then render and write every page. A post
// that fails to render or write is reported and skipped; the run keeps
// going.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	res := permalink.Resolver{
		Style:             b.Cfg.Site.Permalink,
		ExtensionlessURLs: b.Cfg.Site.ExtensionlessURLs,
	}

	posts, warns, err := ingest.Load(b.Cfg.Build.SourceDir, res)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	for _, w := range warns {
		log.Printf("[warn] %s: %s", w.Path, w.Msg)
	}

	published := make([]*content.Post, 0, len(posts))
	for _, p := range posts {
		if p.Published || b.Cfg.Build.IncludeUnpublished {
			published = append(published, p)
		}
	}
	posts = published
	content.SortByDate(posts)

	st, err := index.Open(b.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer st.Close()
	if err := st.Rebuild(posts); err != nil {
		return nil, fmt.Errorf("rebuild index: %w", err)
	}

	var sel related.Selector
	if b.Cfg.Site.Related == config.RelatedSimilar {
		ti := related.NewTermIndex()
		for _, p := range posts {
			ti.Add(p)
		}
		sel.Engine = ti
	}

	eng, err := render.NewTemplateEngine(b.Cfg.Build.LayoutDir)
	if err != nil {
		return nil, fmt.Errorf("load layouts: %w", err)
	}
	pipe := render.Pipeline{
		Markdown: render.NewMarkdownConverter(),
		Engine:   eng,
		Related:  sel,
	}

	if err := os.MkdirAll(b.Cfg.Build.PublicDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir public: %w", err)
	}

	site := b.sitePayload()
	written := 0
	for _, p := range posts {
		layouts, err := eng.Chain(p.Layout())
		if err != nil {
			log.Printf("[warn] %s: %v", p.Path, err)
			continue
		}
		if len(layouts) == 0 {
			log.Printf("[warn] %s: layout %q not found, writing bare content", p.Path, p.Layout())
		}
		out, err := pipe.Render(ctx, p, layouts, site, posts)
		if err != nil {
			log.Printf("[warn] %s: %v", p.Path, err)
			continue
		}
		dest := res.Destination(b.Cfg.Build.PublicDir, p.Params())
		if err := b.writer().Write(dest, []byte(out)); err != nil {
			log.Printf("[warn] %s: write: %v", p.Path, err)
			continue
		}
		written++
	}

	if err := b.buildHome(ctx, st, eng); err != nil {
		return nil, fmt.Errorf("build home: %w", err)
	}
	if err := b.buildNotFound(ctx, eng); err != nil {
		return nil, fmt.Errorf("build 404: %w", err)
	}
	if err := b.copyStatic(); err != nil {
		return nil, fmt.Errorf("copy static: %w", err)
	}

	log.Printf("[build] wrote %d posts", written)
	return &Result{Posts: written, Warnings: warns}, nil
}

// buildHome renders the home layout, when one exists, over the
// newest-first summaries the index holds.
func (b *Builder) buildHome(ctx context.Context, st *index.Store, eng *render.TemplateEngine) error {
	layouts, err := eng.Chain("home")
	if err != nil {
		return err
	}
	if len(layouts) == 0 {
		return nil
	}

	sums, err := st.List(homePageSize)
	if err != nil {
		return err
	}
	total, err := st.Count()
	if err != nil {
		return err
	}

	items := make([]map[string]any, 0, len(sums))
	for _, s := range sums {
		items = append(items, map[string]any{
			"id":    s.ID,
			"title": s.Title,
			"url":   s.URL,
			"date":  s.Date,
		})
	}

	payload := b.sitePayload()
	siteMap := payload["site"].(map[string]any)
	siteMap["posts"] = items
	siteMap["total"] = total
	// a page entry keeps layouts shared with posts working
	payload["page"] = map[string]any{"title": b.Cfg.Site.Title, "url": "/"}
	payload["content"] = template.HTML("")

	out, err := eng.Render(ctx, payload, layouts)
	if err != nil {
		return err
	}
	return b.writer().Write(filepath.Join(b.Cfg.Build.PublicDir, "index.html"), []byte(out))
}

// buildNotFound renders the 404 layout, when one exists, to 404.html
// so web servers (the preview server included) have a page to answer
// misses with.
func (b *Builder) buildNotFound(ctx context.Context, eng *render.TemplateEngine) error {
	layouts, err := eng.Chain("404")
	if err != nil {
		return err
	}
	if len(layouts) == 0 {
		return nil
	}

	payload := b.sitePayload()
	payload["page"] = map[string]any{"title": "Not Found", "url": "/404.html"}
	payload["content"] = template.HTML("")

	out, err := eng.Render(ctx, payload, layouts)
	if err != nil {
		return err
	}
	return b.writer().Write(filepath.Join(b.Cfg.Build.PublicDir, "404.html"), []byte(out))
}

// copyStatic mirrors the static dir into the public tree through the
// write contract. No static dir means nothing to copy.
func (b *Builder) copyStatic() error {
	src := b.Cfg.Build.StaticDir
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return nil
	}

	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return b.writer().Write(filepath.Join(b.Cfg.Build.PublicDir, rel), data)
	})
}

// sitePayload is the part of the template context that does not depend
// on the post being rendered. A fresh tree per call, so callers may
// extend it.
func (b *Builder) sitePayload() map[string]any {
	s := b.Cfg.Site
	return map[string]any{
		"site": map[string]any{
			"title":       s.Title,
			"subtitle":    s.Subtitle,
			"author":      s.Author,
			"url":         s.SiteURL,
			"description": s.Description,
			"language":    s.Language,
			"time":        b.Cfg.Build.Now,
		},
	}
}

func (b *Builder) writer() FileWriter {
	if b.Writer != nil {
		return b.Writer
	}
	return DirWriter{}
}
