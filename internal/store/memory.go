package store

import (
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"

	"hostelez/internal/core"
)

// Table is an in-memory document collection. Documents are kept BSON-encoded,
// so every read returns a private copy and writes behave like the mongo
// driver's: a change is visible only after it is stored.
type Table[T any] struct {
	mu      sync.Mutex
	ids     []string
	docs    map[string][]byte
	idOf    func(T) string
	uniques []uniqueKey[T]
}

type uniqueKey[T any] struct {
	name string
	key  func(T) string
}

// NewTable creates an empty table; idOf extracts the document id.
func NewTable[T any](idOf func(T) string) *Table[T] {
	return &Table[T]{docs: make(map[string][]byte), idOf: idOf}
}

// Unique adds a unique constraint; empty keys are not constrained.
func (t *Table[T]) Unique(name string, key func(T) string) *Table[T] {
	t.uniques = append(t.uniques, uniqueKey[T]{name: name, key: key})
	return t
}

// Insert stores doc. It fails with core.ErrDuplicate on an id or unique key clash.
func (t *Table[T]) Insert(doc T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(doc)
}

func (t *Table[T]) insertLocked(doc T) error {
	id := t.idOf(doc)
	if _, ok := t.docs[id]; ok {
		return core.ErrDuplicate
	}
	if err := t.checkUniqueLocked(doc, id); err != nil {
		return err
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	t.docs[id] = raw
	t.ids = append(t.ids, id)
	return nil
}

func (t *Table[T]) checkUniqueLocked(doc T, selfID string) error {
	for _, u := range t.uniques {
		k := u.key(doc)
		if k == "" {
			continue
		}
		for _, id := range t.ids {
			if id == selfID {
				continue
			}
			other, err := t.decode(id)
			if err != nil {
				return err
			}
			if u.key(other) == k {
				return errors.Wrap(core.ErrDuplicate, u.name)
			}
		}
	}
	return nil
}

func (t *Table[T]) decode(id string) (T, error) {
	var doc T
	if err := bson.Unmarshal(t.docs[id], &doc); err != nil {
		return doc, errors.Wrap(err, "decode document")
	}
	return doc, nil
}

// Get returns the document with id.
func (t *Table[T]) Get(id string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[id]; !ok {
		var zero T
		return zero, core.ErrNotFound
	}
	return t.decode(id)
}

// FindOne returns the first document, in insertion order, that matches.
func (t *Table[T]) FindOne(match func(T) bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, doc, err := t.findLocked(match)
	return doc, err
}

func (t *Table[T]) findLocked(match func(T) bool) (string, T, error) {
	var zero T
	for _, id := range t.ids {
		doc, err := t.decode(id)
		if err != nil {
			return "", zero, err
		}
		if match(doc) {
			return id, doc, nil
		}
	}
	return "", zero, core.ErrNotFound
}

// Find returns every matching document in insertion order.
func (t *Table[T]) Find(match func(T) bool) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := []T{}
	for _, id := range t.ids {
		doc, err := t.decode(id)
		if err != nil {
			return nil, err
		}
		if match == nil || match(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// Update applies fn to the first matching document and stores the result
// atomically. If fn fails nothing is written.
func (t *Table[T]) Update(match func(T) bool, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, doc, err := t.findLocked(match)
	if err != nil {
		return doc, err
	}
	return t.applyLocked(id, doc, fn)
}

func (t *Table[T]) applyLocked(id string, doc T, fn func(*T) error) (T, error) {
	if err := fn(&doc); err != nil {
		var zero T
		return zero, err
	}
	if err := t.checkUniqueLocked(doc, id); err != nil {
		var zero T
		return zero, err
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "encode document")
	}
	t.docs[id] = raw
	return doc, nil
}

// Upsert updates the first matching document, or creates one from create and
// then applies fn to it.
func (t *Table[T]) Upsert(match func(T) bool, create func() T, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, doc, err := t.findLocked(match)
	if err == nil {
		return t.applyLocked(id, doc, fn)
	}
	if !errors.Is(err, core.ErrNotFound) {
		return doc, err
	}
	doc = create()
	if err := fn(&doc); err != nil {
		var zero T
		return zero, err
	}
	if err := t.insertLocked(doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// UpdateAll applies fn to every matching document and reports how many changed.
func (t *Table[T]) UpdateAll(match func(T) bool, fn func(*T)) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, id := range t.ids {
		doc, err := t.decode(id)
		if err != nil {
			return n, err
		}
		if match != nil && !match(doc) {
			continue
		}
		if _, err := t.applyLocked(id, doc, func(d *T) error { fn(d); return nil }); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Delete removes the document with id.
func (t *Table[T]) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[id]; !ok {
		return core.ErrNotFound
	}
	delete(t.docs, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored documents.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ids)
}
