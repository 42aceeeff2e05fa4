package related

import (
	"math"
	"sort"
	"stanza/internal/domain/content"
	"strings"
	"unicode"
)

// TermIndex is the built-in Engine: tf-idf weighted cosine similarity
// over lower-cased alphanumeric tokens. Scores tie-break by insertion
// order, so results are deterministic for a fixed Add sequence.
type TermIndex struct {
	posts []*content.Post
	freqs []map[string]float64
	df    map[string]int
}

func NewTermIndex() *TermIndex {
	return &TermIndex{df: make(map[string]int)}
}

func (x *TermIndex) Add(p *content.Post) {
	tf := termFreq(p.Content)
	x.posts = append(x.posts, p)
	x.freqs = append(x.freqs, tf)
	for t := range tf {
		x.df[t]++
	}
}

func (x *TermIndex) Query(body string, k int) []*content.Post {
	if k <= 0 || len(x.posts) == 0 {
		return nil
	}

	q := x.weigh(termFreq(body))
	scores := make([]float64, len(x.posts))
	for i, tf := range x.freqs {
		scores[i] = cosine(q, x.weigh(tf))
	}

	order := make([]int, len(x.posts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	out := make([]*content.Post, 0, k)
	for _, i := range order[:k] {
		out = append(out, x.posts[i])
	}
	return out
}

// weigh converts raw term frequencies into tf-idf weights against the
// current corpus. Smoothed so every seen term keeps a positive weight.
func (x *TermIndex) weigh(tf map[string]float64) map[string]float64 {
	n := float64(len(x.posts))
	w := make(map[string]float64, len(tf))
	for t, f := range tf {
		idf := math.Log((1+n)/(1+float64(x.df[t]))) + 1
		w[t] = f * idf
	}
	return w
}

func termFreq(s string) map[string]float64 {
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return tf
}

func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for t, av := range a {
		na += av * av
		if bv, ok := b[t]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}
	if dot == 0 || na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
