package ingest

import (
	"errors"
	"fmt"
	"os"
	"stanza/internal/domain/content"
	"stanza/internal/permalink"
)

// Warning describes a source file that was skipped without failing the
// whole run.
type Warning struct {
	Path string
	Msg  string
}

// Load discovers, parses and constructs every post under sourceDir, in
// walk order. I/O failures abort the run; a file that merely cannot
// become a post turns into a warning and is skipped. When two files
// claim the same identifier the first one wins.
func Load(sourceDir string, res permalink.Resolver) ([]*content.Post, []Warning, error) {
	files, err := DiscoverSource(sourceDir)
	if err != nil {
		return nil, nil, err
	}

	var posts []*content.Post
	var warns []Warning
	seen := make(map[string]string, len(files)) // id -> path

	for _, sf := range files {
		raw, err := os.ReadFile(sf.Path)
		if err != nil {
			return nil, nil, err
		}
		p, err := parsePost(sf, raw, res)
		if err != nil {
			warns = append(warns, Warning{Path: sf.Path, Msg: err.Error()})
			continue
		}
		if prev, ok := seen[p.ID]; ok {
			warns = append(warns, Warning{
				Path: sf.Path,
				Msg:  fmt.Sprintf("id %s already claimed by %s", p.ID, prev),
			})
			continue
		}
		seen[p.ID] = sf.Path
		posts = append(posts, p)
	}
	return posts, warns, nil
}

func parsePost(sf SourceFile, raw []byte, res permalink.Resolver) (*content.Post, error) {
	meta, body, err := SplitFrontMatter(raw)
	if err != nil && !errors.Is(err, ErrNoFrontMatter) {
		return nil, err
	}
	fm, metaMap, err := content.DecodeMeta(meta)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	return content.New(content.Source{Dir: sf.Dir, Name: sf.Name}, fm, metaMap, string(body), res)
}
