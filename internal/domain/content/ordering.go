package content

import "sort"

// SortByDate orders posts oldest first. Posts compare by date only, so
// the sort is stable and equal dates keep their original relative
// order.
func SortByDate(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.Before(posts[j].Date)
	})
}

// Position finds p in the ordered collection by identifier, -1 when
// absent. Adjacency is a positional lookup on purpose; callers that
// need many lookups can build their own position map.
func Position(posts []*Post, p *Post) int {
	for i, c := range posts {
		if c.ID == p.ID {
			return i
		}
	}
	return -1
}

// Next returns the entry after p in the collection, nil at the end or
// when p is not part of it.
func Next(posts []*Post, p *Post) *Post {
	i := Position(posts, p)
	if i < 0 || i+1 >= len(posts) {
		return nil
	}
	return posts[i+1]
}

// Previous returns the entry before p, nil at the start or when p is
// not part of the collection.
func Previous(posts []*Post, p *Post) *Post {
	i := Position(posts, p)
	if i <= 0 {
		return nil
	}
	return posts[i-1]
}
