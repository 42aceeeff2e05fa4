package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrBadName marks a filename that does not follow the
// [dirs/]YYYY-MM-DD[_HH-MM]-slug.ext pattern.
var ErrBadName = errors.New("filename does not match the post pattern")

// ParsedName is the decomposed form of a valid post filename. Topics
// holds any directory segments embedded in the name itself; Ext keeps
// its leading dot.
type ParsedName struct {
	Topics []string
	Date   time.Time
	Slug   string
	Ext    string
}

// The date groups are deliberately loose digit runs: ValidName stays a
// cheap listing filter, and an accepted name whose date cannot actually
// be parsed fails construction instead.
var postName = regexp.MustCompile(`^(?:(.+)/)?(\d+-\d+-\d+)(?:_(\d+-\d+))?-([^/]*)\.([^./]+)$`)

var dateLayouts = []string{
	"2006-1-2 15:4",
	"2006-1-2",
}

// ValidName reports whether name follows the post filename pattern. It
// never errors; callers use it to filter a directory listing before
// constructing posts.
func ValidName(name string) bool {
	return postName.MatchString(name)
}

// ParseName decomposes a post filename. A name that fails the pattern
// or carries an unparseable date is a construction error.
func ParseName(name string) (ParsedName, error) {
	m := postName.FindStringSubmatch(name)
	if m == nil {
		return ParsedName{}, fmt.Errorf("%q: %w", name, ErrBadName)
	}

	// a trailing _HH-MM segment becomes " HH:MM" so both forms go
	// through the same layout list
	stamp := m[2]
	if m[3] != "" {
		stamp += " " + strings.Replace(m[3], "-", ":", 1)
	}
	date, err := parseDate(stamp)
	if err != nil {
		return ParsedName{}, fmt.Errorf("post %q does not have a valid date: %w", name, err)
	}

	var topics []string
	if m[1] != "" {
		for _, seg := range strings.Split(m[1], "/") {
			if seg != "" {
				topics = append(topics, seg)
			}
		}
	}

	return ParsedName{
		Topics: topics,
		Date:   date,
		Slug:   m[4],
		Ext:    "." + m[5],
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
