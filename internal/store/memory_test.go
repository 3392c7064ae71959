package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
)

type doc struct {
	ID    string   `bson:"_id"`
	Email string   `bson:"email"`
	Tags  []string `bson:"tags"`
	Count int      `bson:"count"`
}

func newDocs() *Table[doc] {
	return NewTable(func(d doc) string { return d.ID }).
		Unique("email", func(d doc) string { return d.Email })
}

func TestTable_InsertUnique(t *testing.T) {
	tbl := newDocs()
	require.NoError(t, tbl.Insert(doc{ID: "1", Email: "a@x.io"}))

	err := tbl.Insert(doc{ID: "2", Email: "a@x.io"})
	assert.True(t, core.IsDuplicate(err))

	err = tbl.Insert(doc{ID: "1", Email: "b@x.io"})
	assert.True(t, core.IsDuplicate(err))

	// empty keys are not constrained
	require.NoError(t, tbl.Insert(doc{ID: "3"}))
	require.NoError(t, tbl.Insert(doc{ID: "4"}))
	assert.Equal(t, 3, tbl.Len())
}

func TestTable_ReadsAreCopies(t *testing.T) {
	tbl := newDocs()
	require.NoError(t, tbl.Insert(doc{ID: "1", Tags: []string{"a"}}))

	got, err := tbl.Get("1")
	require.NoError(t, err)
	got.Tags[0] = "changed"

	again, err := tbl.Get("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Tags)
}

func TestTable_UpdateAndUpsert(t *testing.T) {
	tbl := newDocs()
	byEmail := func(e string) func(doc) bool { return func(d doc) bool { return d.Email == e } }

	_, err := tbl.Update(byEmail("a@x.io"), func(d *doc) error { d.Count++; return nil })
	assert.True(t, core.IsNotFound(err))

	created, err := tbl.Upsert(byEmail("a@x.io"),
		func() doc { return doc{ID: "1", Email: "a@x.io"} },
		func(d *doc) error { d.Count++; return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, created.Count)

	updated, err := tbl.Upsert(byEmail("a@x.io"),
		func() doc { return doc{ID: "2", Email: "a@x.io"} },
		func(d *doc) error { d.Count++; return nil })
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, 2, updated.Count)

	failed := core.Invalid("count", "nope")
	_, err = tbl.Update(byEmail("a@x.io"), func(d *doc) error { d.Count = 100; return failed })
	assert.Equal(t, failed, err)
	stored, _ := tbl.Get("1")
	assert.Equal(t, 2, stored.Count)
}

func TestTable_UpdateAllAndDelete(t *testing.T) {
	tbl := newDocs()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, tbl.Insert(doc{ID: id}))
	}
	n, err := tbl.UpdateAll(func(d doc) bool { return d.ID != "2" }, func(d *doc) { d.Count = 7 })
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, tbl.Delete("1"))
	assert.True(t, core.IsNotFound(tbl.Delete("1")))

	all, err := tbl.Find(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[0].Count)
	assert.Equal(t, 7, all[1].Count)
}
