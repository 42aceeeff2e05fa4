package render

import (
	"context"
	"fmt"
	"html/template"
	"stanza/internal/domain/content"
	"stanza/internal/related"
)

// Pipeline renders one post at a time: convert the body, pick related
// posts, assemble the payload, then run the layout stack.
type Pipeline struct {
	Markdown *MarkdownConverter
	Engine   Engine
	Related  related.Selector
}

// Render produces the final page for p, stores it on p.Output and
// returns it. collection is the full date-ordered post list; it
// supplies adjacency and the related pool. site is shared across posts
// and is never mutated here.
func (pl *Pipeline) Render(ctx context.Context, p *content.Post, layouts []string, site map[string]any, collection []*content.Post) (string, error) {
	converted, err := pl.convert(p)
	if err != nil {
		return "", err
	}
	if len(layouts) == 0 {
		p.Output = converted
		return converted, nil
	}

	page := pl.pageExport(p, converted, collection)
	// front matter wins over derived fields
	deepMerge(page, p.Meta)

	rel := pl.Related.Select(p, collection)
	relSummaries := make([]map[string]any, 0, len(rel))
	for _, r := range rel {
		relSummaries = append(relSummaries, summary(r))
	}

	payload := deepMerge(cloneTree(site), map[string]any{
		"site": map[string]any{"related_posts": relSummaries},
		"page": page,
	})
	payload["content"] = template.HTML(converted)

	out, err := pl.Engine.Render(ctx, payload, layouts)
	if err != nil {
		return "", err
	}
	p.Output = out
	return out, nil
}

func (pl *Pipeline) convert(p *content.Post) (string, error) {
	switch content.TypeOf(p.Ext) {
	case content.TypeMarkdown:
		out, err := pl.Markdown.Convert([]byte(p.Content))
		if err != nil {
			return "", fmt.Errorf("convert %s: %w", p.Path, err)
		}
		return string(out), nil
	default:
		// textile and unknown types pass through untouched
		return p.Content, nil
	}
}

func (pl *Pipeline) pageExport(p *content.Post, converted string, collection []*content.Post) map[string]any {
	return map[string]any{
		"title":      p.Title(),
		"url":        p.URL,
		"date":       p.Date,
		"id":         p.ID,
		"path":       p.Path,
		"topics":     p.Topics,
		"categories": p.Categories,
		"tags":       p.Tags,
		"content":    template.HTML(converted),
		"next":       summary(content.Next(collection, p)),
		"previous":   summary(content.Previous(collection, p)),
	}
}

// summary is the shallow form used for next, previous and related
// entries, enough for link lists without dragging whole pages along.
func summary(p *content.Post) map[string]any {
	if p == nil {
		return nil
	}
	return map[string]any{
		"id":    p.ID,
		"title": p.Title(),
		"url":   p.URL,
		"date":  p.Date,
	}
}
