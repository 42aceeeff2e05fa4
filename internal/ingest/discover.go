package ingest

import (
	"io/fs"
	"path/filepath"
	"stanza/internal/domain/content"
)

// SourceFile locates one post source under the content root.
type SourceFile struct {
	Path string // filesystem path, for reading and diagnostics
	Dir  string // slash form of the directory under the root, "" at the top
	Name string // base name, already matched against the post pattern
}

// DiscoverSource walks the content root and returns every file whose
// name parses as a post, in walk order. Files with other names are not
// an error; they simply are not posts.
func DiscoverSource(root string) ([]SourceFile, error) {
	var out []SourceFile

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !content.ValidName(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		dir := filepath.ToSlash(filepath.Dir(rel))
		if dir == "." {
			dir = ""
		}
		out = append(out, SourceFile{Path: p, Dir: dir, Name: d.Name()})
		return nil
	})
	return out, err
}
