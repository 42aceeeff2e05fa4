package ingest

import (
	"bytes"
	"errors"
)

// ErrNoFrontMatter marks a file without a leading "---" fence. The
// returned body is still usable: it holds the whole normalized file.
var ErrNoFrontMatter = errors.New("no front matter found")

var errInvalidFrontMatter = errors.New("invalid front matter")

// SplitFrontMatter cuts a source file into its YAML header and body.
// Line endings are normalized to LF and both parts are trimmed.
func SplitFrontMatter(raw []byte) (meta, body []byte, err error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.ReplaceAll(norm, []byte("\r"), []byte("\n"))
	norm = bytes.TrimSpace(norm)

	const (
		sep      = "---"
		sepLine  = sep + "\n"
		closeMid = "\n" + sep + "\n"
	)

	if !bytes.HasPrefix(norm, []byte(sepLine)) {
		return nil, norm, ErrNoFrontMatter
	}
	rest := norm[len(sepLine):]

	if parts := bytes.SplitN(rest, []byte(closeMid), 2); len(parts) == 2 {
		meta, body = parts[0], parts[1]
	} else if bytes.HasSuffix(rest, []byte("\n"+sep)) {
		// header closes the file, no body follows
		meta = rest[:len(rest)-len("\n"+sep)]
	} else if bytes.Equal(bytes.TrimSpace(rest), []byte(sep)) {
		// "---\n---": empty header, no body
	} else {
		return nil, nil, errInvalidFrontMatter
	}

	return bytes.TrimSpace(meta), bytes.TrimSpace(body), nil
}
