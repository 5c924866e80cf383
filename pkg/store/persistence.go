package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
	"tableflip.dev/agenda/pkg/log"
)

// Snapshot is everything agenda keeps between runs: every entry of every
// list in every state, and the history journal.
type Snapshot struct {
	Entries map[entry.Kind][]*entry.Entry
	Journal history.Journal
	Updated time.Time
}

// Persistence loads and saves snapshots.
type Persistence interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
	Watch(ctx context.Context) (<-chan Event, error)
	Location() string
	Close() error
}

// Load opens the store described by cfg. A nil cfg reads the user config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	p := &persistence{
		basePath: basePath,
		backend:  cfg.Backend(),
		log:      log.Module("store"),
	}
	switch cfg.Backend() {
	case BackendSQLite:
		s, err := openSQLite(context.Background(), basePath)
		if err != nil {
			return nil, err
		}
		p.kv = s
	case BackendDiskv, "":
		p.backend = BackendDiskv
		p.kv = newDiskv(basePath)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
	return p, nil
}

type persistence struct {
	kv       kv
	basePath string
	backend  string
	log      *slog.Logger
}

func (p *persistence) Location() string {
	return fmt.Sprintf("%s (%s)", p.basePath, p.backend)
}

func (p *persistence) Close() error {
	return p.kv.Close()
}

type seqEntry struct {
	seq int
	e   *entry.Entry
}

// Load reads every stored document. Unreadable entry documents are logged
// and skipped so one corrupt file does not hide the rest.
func (p *persistence) Load(ctx context.Context) (*Snapshot, error) {
	keys, err := p.kv.Keys(ctx)
	if err != nil {
		return nil, err
	}

	lists := make(map[entry.Kind][]seqEntry)
	snap := &Snapshot{Entries: make(map[entry.Kind][]*entry.Entry)}
	for _, key := range keys {
		bucket, _ := splitKey(key)
		if key == journalKey {
			if err := p.loadJournal(snap); err != nil {
				return nil, err
			}
			continue
		}
		kind, ok := kindForBucket(bucket)
		if !ok {
			p.log.Warn("ignoring unknown key", "key", key)
			continue
		}
		raw, err := p.kv.Read(key)
		if err != nil {
			p.log.Warn("skipping unreadable entry", "key", key, "err", err)
			continue
		}
		var doc entryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			p.log.Warn("skipping malformed entry", "key", key, "err", err)
			continue
		}
		e, err := decodeEntry(&doc)
		if err != nil {
			p.log.Warn("skipping invalid entry", "key", key, "err", err)
			continue
		}
		if e.Kind() != kind {
			p.log.Warn("skipping misfiled entry", "key", key, "kind", e.Kind())
			continue
		}
		lists[kind] = append(lists[kind], seqEntry{seq: doc.Seq, e: e})
	}

	for kind, items := range lists {
		sort.SliceStable(items, func(i, j int) bool { return items[i].seq < items[j].seq })
		out := make([]*entry.Entry, 0, len(items))
		for _, it := range items {
			out = append(out, it.e)
		}
		snap.Entries[kind] = out
	}
	p.log.Debug("loaded", "location", p.Location(), "keys", len(keys))
	return snap, nil
}

func (p *persistence) loadJournal(snap *Snapshot) error {
	raw, err := p.kv.Read(journalKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: read journal: %w", err)
	}
	var doc journalDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("store: decode journal: %w", err)
	}
	j, updated, err := decodeJournal(doc)
	if err != nil {
		return fmt.Errorf("store: decode journal: %w", err)
	}
	snap.Journal = j
	snap.Updated = updated
	return nil
}

// Save writes s, rewriting only documents whose content changed and erasing
// entries that are no longer present.
func (p *persistence) Save(ctx context.Context, s *Snapshot) error {
	keys, err := p.kv.Keys(ctx)
	if err != nil {
		return err
	}
	stale := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key != journalKey {
			stale[key] = struct{}{}
		}
	}

	writes := make(map[string][]byte)
	for _, kind := range entry.Kinds() {
		for seq, e := range s.Entries[kind] {
			key := entryKey(e)
			data, err := json.Marshal(encodeEntry(e, seq))
			if err != nil {
				return fmt.Errorf("store: encode %s: %w", key, err)
			}
			_, existed := stale[key]
			delete(stale, key)
			if existed && p.unchanged(key, data) {
				continue
			}
			writes[key] = data
		}
	}

	updated := s.Updated
	if updated.IsZero() {
		updated = time.Now()
	}
	journal, err := json.Marshal(encodeJournal(s.Journal, updated))
	if err != nil {
		return fmt.Errorf("store: encode journal: %w", err)
	}
	if !p.unchanged(journalKey, journal) {
		writes[journalKey] = journal
	}

	erases := make([]string, 0, len(stale))
	for key := range stale {
		erases = append(erases, key)
	}
	sort.Strings(erases)

	if len(writes) == 0 && len(erases) == 0 {
		return nil
	}
	if err := p.kv.Apply(ctx, writes, erases); err != nil {
		return err
	}
	p.log.Debug("saved", "location", p.Location(), "writes", len(writes), "erases", len(erases))
	return nil
}

func (p *persistence) unchanged(key string, data []byte) bool {
	current, err := p.kv.Read(key)
	return err == nil && string(current) == string(data)
}
