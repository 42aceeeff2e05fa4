package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"stanza/internal/domain/content"
	"stanza/internal/ingest"
	"strings"
)

// Engine renders a page payload through a stack of layouts, innermost
// first. An empty stack is never passed in; callers emit the bare
// content instead.
type Engine interface {
	Render(ctx context.Context, payload map[string]any, layouts []string) (string, error)
}

// TemplateEngine loads layout templates from a flat directory. Each
// layout may start with a front matter header naming its parent via
// the layout key, which is how chains like post -> default form.
type TemplateEngine struct {
	tpls    map[string]*template.Template
	parents map[string]string
}

func NewTemplateEngine(dir string) (*TemplateEngine, error) {
	e := &TemplateEngine{
		tpls:    make(map[string]*template.Template),
		parents: make(map[string]string),
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		// no layout dir: every page renders bare
		return e, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}

	for _, ent := range entries {
		if ent.IsDir() || filepath.Ext(ent.Name()) != ".tmpl" {
			continue
		}
		name := strings.TrimSuffix(ent.Name(), ".tmpl")
		raw, err := os.ReadFile(filepath.Join(dir, ent.Name()))
		if err != nil {
			return nil, err
		}

		meta, body, err := ingest.SplitFrontMatter(raw)
		if err != nil && !errors.Is(err, ingest.ErrNoFrontMatter) {
			return nil, fmt.Errorf("layout %s: %w", ent.Name(), err)
		}
		if len(meta) > 0 {
			fm, _, err := content.DecodeMeta(meta)
			if err != nil {
				return nil, fmt.Errorf("layout %s: %w", ent.Name(), err)
			}
			e.parents[name] = fm.Layout
		}

		tpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(body))
		if err != nil {
			return nil, fmt.Errorf("parse layout %s: %w", ent.Name(), err)
		}
		e.tpls[name] = tpl
	}
	return e, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": func(t any, layout string) string {
			switch v := t.(type) {
			case nil:
				return ""
			case string:
				return v
			case interface{ Format(string) string }:
				return v.Format(layout)
			default:
				return ""
			}
		},
		"join": func(v any, sep string) string {
			switch s := v.(type) {
			case nil:
				return ""
			case []string:
				return strings.Join(s, sep)
			case []any:
				parts := make([]string, 0, len(s))
				for _, e := range s {
					parts = append(parts, fmt.Sprint(e))
				}
				return strings.Join(parts, sep)
			default:
				return fmt.Sprint(v)
			}
		},
	}
}

// Has reports whether a layout by that name was loaded.
func (e *TemplateEngine) Has(name string) bool {
	_, ok := e.tpls[name]
	return ok
}

// Chain resolves a layout's ancestry, innermost first. A missing root
// layout yields an empty chain so the caller can fall back to bare
// output; a missing parent or a cycle is a hard error because the
// layout file itself is broken.
func (e *TemplateEngine) Chain(name string) ([]string, error) {
	var chain []string
	seen := make(map[string]bool)
	for name != "" {
		if seen[name] {
			return nil, fmt.Errorf("layout cycle through %q", name)
		}
		seen[name] = true
		if !e.Has(name) {
			if len(chain) == 0 {
				return nil, nil
			}
			return nil, fmt.Errorf("layout %q names missing parent %q", chain[len(chain)-1], name)
		}
		chain = append(chain, name)
		name = e.parents[name]
	}
	return chain, nil
}

// Render threads the payload through the stack: each layout sees the
// previous stage's output as .content and produces the next stage's.
func (e *TemplateEngine) Render(_ context.Context, payload map[string]any, layouts []string) (string, error) {
	prev, _ := payload["content"].(template.HTML)
	for _, name := range layouts {
		tpl, ok := e.tpls[name]
		if !ok {
			return "", fmt.Errorf("template %s not found", name)
		}
		payload["content"] = prev
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, payload); err != nil {
			return "", fmt.Errorf("render %s: %w", name, err)
		}
		prev = template.HTML(buf.String())
	}
	return string(prev), nil
}
