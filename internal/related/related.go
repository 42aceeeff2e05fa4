// Package related chooses the posts shown as "related" on a page,
// either naively from collection order or through a similarity engine.
package related

import "stanza/internal/domain/content"

// Engine is the similarity contract: index posts by body, then answer
// nearest-neighbour queries. Population is single-writer: the driver
// adds every candidate exactly once before the first Query, and only
// reads afterwards. A Query may return the query post itself; callers
// filter it out.
type Engine interface {
	Add(p *content.Post)
	Query(body string, k int) []*content.Post
}

const maxRelated = 10

// Selector picks related posts. A nil Engine selects the naive policy.
type Selector struct {
	Engine Engine
}

// Select returns up to ten posts related to p, excluding p itself.
// Fewer than two candidates always yields nothing. The naive policy
// keeps the first ten other candidates in arrival order; with an
// engine, eleven neighbours are requested so that dropping p from the
// answer still leaves ten.
func (s Selector) Select(p *content.Post, candidates []*content.Post) []*content.Post {
	if len(candidates) < 2 {
		return nil
	}

	pool := candidates
	if s.Engine != nil {
		pool = s.Engine.Query(p.Content, maxRelated+1)
	}

	out := make([]*content.Post, 0, maxRelated)
	for _, c := range pool {
		if c.ID == p.ID {
			continue
		}
		out = append(out, c)
		if len(out) == maxRelated {
			break
		}
	}
	return out
}
