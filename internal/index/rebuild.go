package index

import (
	"encoding/json"
	bolt "go.etcd.io/bbolt"
	"stanza/internal/domain/content"
)

// Rebuild replaces the whole index with the given collection. The
// index is derived data; dropping and refilling the buckets keeps
// rebuilds idempotent across renames and deletions.
func (s *Store) Rebuild(posts []*content.Post) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		_ = tx.DeleteBucket(bPosts)
		_ = tx.DeleteBucket(bByDate)

		postsB, err := tx.CreateBucket(bPosts)
		if err != nil {
			return err
		}
		byDateB, err := tx.CreateBucket(bByDate)
		if err != nil {
			return err
		}

		for _, p := range posts {
			raw, err := json.Marshal(Summary{
				ID:    p.ID,
				Title: p.Title(),
				URL:   p.URL,
				Date:  p.Date,
			})
			if err != nil {
				return err
			}
			if err := postsB.Put([]byte(p.ID), raw); err != nil {
				return err
			}
			key := makeDateKey(p.Date.UnixNano(), p.ID)
			if err := byDateB.Put(key, []byte{1}); err != nil {
				return err
			}
		}
		return nil
	})
}
