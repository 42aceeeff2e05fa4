package content

import (
	"bytes"
	"fmt"
	"gopkg.in/yaml.v3"
	"strings"
)

// StringList accepts either YAML shape a list-valued front-matter key
// shows up in: a plain scalar is split on whitespace, a sequence is
// taken element-wise. Deciding the shape here, at decode time, keeps
// the normalization code free of runtime type sniffing.
type StringList []string

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		return nil
	}
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = StringList(strings.Fields(s))
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, n := range value.Content {
			out = append(out, n.Value)
		}
		*l = StringList(out)
	default:
		return fmt.Errorf("cannot decode %s into a string list", value.Tag)
	}
	return nil
}

// FrontMatter is the typed view of the keys the generator itself acts
// on. The full mapping, recognized keys included, still passes through
// to the render payload untouched.
type FrontMatter struct {
	Permalink  string     `yaml:"permalink"`
	Layout     string     `yaml:"layout"`
	Category   string     `yaml:"category"`
	Categories StringList `yaml:"categories"`
	Tags       StringList `yaml:"tags"`
	Time       string     `yaml:"time"`
	Published  *bool      `yaml:"published"`
}

// DecodeMeta unmarshals raw front matter twice: once into the typed
// view and once into the open mapping. The mapping is never nil.
func DecodeMeta(raw []byte) (FrontMatter, map[string]any, error) {
	var fm FrontMatter
	meta := make(map[string]any)

	if len(bytes.TrimSpace(raw)) == 0 {
		return fm, meta, nil
	}
	if err := yaml.Unmarshal(raw, &fm); err != nil {
		return FrontMatter{}, nil, err
	}
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return FrontMatter{}, nil, err
	}
	return fm, meta, nil
}

// ResolveCategories picks the post's categories. Directory segments
// between the content root and the file win outright; the metadata
// fallbacks apply only when the directory contributes nothing, and the
// two sources are never merged.
func ResolveCategories(dir string, fm FrontMatter) []string {
	cats := []string{}
	for _, seg := range strings.Split(dir, "/") {
		if seg != "" {
			cats = append(cats, seg)
		}
	}
	if len(cats) > 0 {
		return cats
	}
	if fm.Category != "" {
		return []string{fm.Category}
	}
	if len(fm.Categories) > 0 {
		return append(cats, fm.Categories...)
	}
	return cats
}
