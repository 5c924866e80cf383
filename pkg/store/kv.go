package store

import (
	"context"
	"strings"

	"tableflip.dev/agenda/pkg/entry"
)

// kv is the key value layer under a persistence. Keys look like
// "<bucket>.<name>", where bucket is a list name or "journal".
type kv interface {
	Keys(ctx context.Context) ([]string, error)
	Read(key string) ([]byte, error)
	// Apply writes and erases keys as one unit where the backend allows it.
	Apply(ctx context.Context, writes map[string][]byte, erases []string) error
	Close() error
}

const (
	journalBucket = "journal"
	journalKey    = journalBucket + ".current"
)

func entryKey(e *entry.Entry) string {
	return e.Kind().Plural() + "." + e.ID
}

func splitKey(key string) (bucket, name string) {
	bucket, name, _ = strings.Cut(key, ".")
	return bucket, name
}

// kindForBucket maps a bucket name back to its entry kind.
func kindForBucket(bucket string) (entry.Kind, bool) {
	for _, k := range entry.Kinds() {
		if k.Plural() == bucket {
			return k, true
		}
	}
	return entry.Event, false
}
