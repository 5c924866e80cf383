package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// diskvStore keeps one file per key under a directory per bucket.
type diskvStore struct {
	d *diskv.Diskv
}

func newDiskv(basePath string) *diskvStore {
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}
}

func (s *diskvStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *diskvStore) Read(key string) ([]byte, error) {
	return s.d.Read(key)
}

func (s *diskvStore) Apply(ctx context.Context, writes map[string][]byte, erases []string) error {
	for key, val := range writes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.d.Write(key, val); err != nil {
			return fmt.Errorf("store: write %s: %w", key, err)
		}
	}
	for _, key := range erases {
		if !s.d.Has(key) {
			continue
		}
		if err := s.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}

func (s *diskvStore) Close() error {
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	bucket, name := splitKey(key)
	return &diskv.PathKey{
		Path:     []string{bucket},
		FileName: name + ".json",
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name := strings.TrimSuffix(pathKey.FileName, ".json")
	if len(pathKey.Path) == 0 {
		return name
	}
	return fmt.Sprintf("%s.%s", pathKey.Path[0], name)
}
