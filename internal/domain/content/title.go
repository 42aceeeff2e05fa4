package content

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type is the content kind a post's file extension implies; it decides
// which heading heuristic applies and whether the body gets converted.
type Type int

const (
	TypeOther Type = iota
	TypeMarkdown
	TypeTextile
)

func TypeOf(ext string) Type {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "md", "markdown", "mkd", "mkdn", "mdown", "mkdown":
		return TypeMarkdown
	case "textile":
		return TypeTextile
	default:
		return TypeOther
	}
}

var (
	atxHeading     = regexp.MustCompile(`^#{1,6}\s*(.+?)\s*#*\s*$`)
	setextLine     = regexp.MustCompile(`^(=+|-+)\s*$`)
	textileHeading = regexp.MustCompile(`^h[1-6]\.\s*(.+)$`)
)

// ExtractTitle derives a display title without side effects: an
// explicit metadata title verbatim, else a leading heading in the body,
// else the humanized slug. It always yields something, so title lookup
// downstream never needs a fallback of its own. A null metadata value
// counts as absent.
func ExtractTitle(meta map[string]any, body string, typ Type, slug string) string {
	if v, ok := meta["title"]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	if t := headingTitle(body, typ); t != "" {
		return t
	}
	return HumanizeSlug(slug)
}

// headingTitle inspects the first non-blank line of the body: an ATX
// heading or a setext-underlined line for markdown, an hN. marker for
// textile. Empty means no match.
func headingTitle(body string, typ Type) string {
	lines := strings.Split(body, "\n")
	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[i], "\r")

	switch typ {
	case TypeMarkdown:
		if m := atxHeading.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		if i+1 < len(lines) && setextLine.MatchString(strings.TrimRight(lines[i+1], "\r")) {
			return strings.TrimSpace(line)
		}
	case TypeTextile:
		if m := textileHeading.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

// HumanizeSlug turns a slug into words: split on "-", upper-case each
// token's first letter when it has a lower-case one, join with spaces.
// Empty tokens survive, matching the slug's own separator runs.
func HumanizeSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size > 0 && unicode.IsLower(r) {
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
	}
	return strings.Join(words, " ")
}
