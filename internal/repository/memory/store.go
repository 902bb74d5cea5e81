// Package memory provides an in-process persistence adapter with the same
// contracts as the postgres package. It backs unit tests and the "memory"
// storage driver for local development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"docshelf/internal/domain/models"
	"docshelf/internal/domain/repositories"
)

// Store holds folders and documents keyed by id. A single mutex guards all
// access; ExecTx holds it for the whole unit of work and restores a snapshot
// on error, so each operation is one atomic unit like a database transaction.
type Store struct {
	mu        sync.Mutex
	folders   map[string]models.Folder
	documents map[string]models.Document
	seq       map[string]int // insertion sequence per id, for stable ordering
	nextSeq   int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		folders:   make(map[string]models.Folder),
		documents: make(map[string]models.Document),
		seq:       make(map[string]int),
	}
}

type txMarker struct{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txMarker{}).(bool)
	return ok
}

// lock acquires the store mutex unless the context already runs inside
// ExecTx, which holds it for the duration of the unit of work.
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) assignID(id string) string {
	if id == "" {
		id = uuid.NewString()
	}
	s.nextSeq++
	s.seq[id] = s.nextSeq
	return id
}

type snapshot struct {
	folders   map[string]models.Folder
	documents map[string]models.Document
	seq       map[string]int
	nextSeq   int
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		folders:   make(map[string]models.Folder, len(s.folders)),
		documents: make(map[string]models.Document, len(s.documents)),
		seq:       make(map[string]int, len(s.seq)),
		nextSeq:   s.nextSeq,
	}
	for id, f := range s.folders {
		snap.folders[id] = f
	}
	for id, d := range s.documents {
		snap.documents[id] = d
	}
	for id, n := range s.seq {
		snap.seq[id] = n
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.folders = snap.folders
	s.documents = snap.documents
	s.seq = snap.seq
	s.nextSeq = snap.nextSeq
}

// TransactionManager serializes units of work against the store and rolls
// back all writes when the unit fails.
type TransactionManager struct {
	store *Store
}

// NewTransactionManager creates a transaction manager for the store.
func NewTransactionManager(store *Store) repositories.TransactionManager {
	return &TransactionManager{store: store}
}

// ExecTx executes fn as one atomic unit. On error the store is restored to
// its state from before the unit started.
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		tm.store.restore(snap)
		return err
	}
	return nil
}

// sortDocuments orders by updated_at descending, insertion order on ties.
func (s *Store) sortDocuments(docs []models.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return s.seq[a.ID] < s.seq[b.ID]
	})
}

// sortFolders orders by insertion sequence (creation order).
func (s *Store) sortFolders(folders []models.Folder) {
	sort.SliceStable(folders, func(i, j int) bool {
		return s.seq[folders[i].ID] < s.seq[folders[j].ID]
	})
}
