package index

import (
	"encoding/json"
	bolt "go.etcd.io/bbolt"
)

// List returns up to limit summaries, newest first. A limit of zero or
// less means no bound.
func (s *Store) List(limit int) ([]Summary, error) {
	var out []Summary
	err := s.db.View(func(tx *bolt.Tx) error {
		byDateB := tx.Bucket(bByDate)
		postsB := tx.Bucket(bPosts)
		if byDateB == nil || postsB == nil {
			return nil
		}

		cur := byDateB.Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			id := idFromDateKey(k)
			if id == "" {
				continue
			}
			v := postsB.Get([]byte(id))
			if v == nil {
				continue
			}
			var sum Summary
			if err := json.Unmarshal(v, &sum); err != nil {
				continue
			}
			out = append(out, sum)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// Count reports how many posts the index holds.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bPosts); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}
