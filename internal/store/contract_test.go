package store

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome   string             `bson:"nome" json:"nome"`
	Cia    primitive.ObjectID `bson:"cia" json:"cia"`
	Seats  int                `bson:"seats" json:"seats"`
	Leaves time.Time          `bson:"leaves" json:"leaves"`
}

func seed(t *testing.T, s Store, collection string, docs ...testDoc) []primitive.ObjectID {
	t.Helper()
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		id, err := s.Insert(context.Background(), collection, d)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func build(t *testing.T, b *query.Builder) query.Predicate {
	t.Helper()
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func names(docs []testDoc) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Nome)
	}
	return out
}

// runStoreContract checks the behaviour every driver shares. Each case uses
// its own collection so one backend can serve the whole table.
func runStoreContract(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("insert and find one", func(t *testing.T) {
		cia := primitive.NewObjectID()
		ids := seed(t, s, "insert_find", testDoc{Nome: "Azul", Cia: cia, Seats: 180})

		var got testDoc
		require.NoError(t, s.FindOne(ctx, "insert_find", query.ByID(ids[0]), &got))
		assert.Equal(t, ids[0], got.ID)
		assert.Equal(t, "Azul", got.Nome)
		assert.Equal(t, cia, got.Cia)
		assert.Equal(t, 180, got.Seats)

		err := s.FindOne(ctx, "insert_find", query.ByID(primitive.NewObjectID()), &got)
		assert.ErrorIs(t, err, ErrNoDocument)
	})

	t.Run("find many keeps natural order and pages", func(t *testing.T) {
		seed(t, s, "natural_order",
			testDoc{Nome: "a"}, testDoc{Nome: "b"}, testDoc{Nome: "c"},
			testDoc{Nome: "d"}, testDoc{Nome: "e"}, testDoc{Nome: "f"}, testDoc{Nome: "g"},
		)

		var all []testDoc
		require.NoError(t, s.FindMany(ctx, "natural_order", query.Predicate{}, query.All, &all))
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, names(all))

		var page []testDoc
		require.NoError(t, s.FindMany(ctx, "natural_order", query.Predicate{}, query.Page{Skip: 1, Limit: 1}, &page))
		assert.Equal(t, []string{"b"}, names(page))

		seen := map[string]bool{}
		for skip := 0; ; skip += 3 {
			p, err := query.NewPage(skip, 3)
			require.NoError(t, err)
			var got []testDoc
			require.NoError(t, s.FindMany(ctx, "natural_order", query.Predicate{}, p, &got))
			if len(got) == 0 {
				break
			}
			for _, d := range got {
				assert.False(t, seen[d.Nome], "duplicate %s", d.Nome)
				seen[d.Nome] = true
			}
		}
		assert.Len(t, seen, 7)

		var none []testDoc
		require.NoError(t, s.FindMany(ctx, "never_written", query.Predicate{}, query.All, &none))
		assert.Empty(t, none)
	})

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		seed(t, s, "date_range",
			testDoc{Nome: "before", Leaves: day.Add(-time.Hour)},
			testDoc{Nome: "start", Leaves: day},
			testDoc{Nome: "middle", Leaves: day.Add(36 * time.Hour)},
			testDoc{Nome: "end", Leaves: day.Add(48 * time.Hour)},
			testDoc{Nome: "after", Leaves: day.Add(49 * time.Hour)},
		)

		p := build(t, query.NewBuilder().From("leaves", "2024-05-01").To("leaves", "2024-05-03"))
		var got []testDoc
		require.NoError(t, s.FindMany(ctx, "date_range", p, query.All, &got))
		assert.Equal(t, []string{"start", "middle", "end"}, names(got))
		assert.True(t, got[0].Leaves.Equal(day))
	})

	t.Run("contains is literal and case insensitive", func(t *testing.T) {
		seed(t, s, "contains",
			testDoc{Nome: "Airbus A320 (neo)"},
			testDoc{Nome: "airbus a320 neo"},
			testDoc{Nome: "A3200"},
		)

		var got []testDoc
		p := build(t, query.NewBuilder().Contains("nome", "a320 (NEO)"))
		require.NoError(t, s.FindMany(ctx, "contains", p, query.All, &got))
		assert.Equal(t, []string{"Airbus A320 (neo)"}, names(got))

		p = build(t, query.NewBuilder().Contains("nome", "a32."))
		n, err := s.Count(ctx, "contains", p)
		require.NoError(t, err)
		assert.Zero(t, n)

		p = build(t, query.NewBuilder().AnyContains("NEO", "nome", "missing"))
		n, err = s.Count(ctx, "contains", p)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	t.Run("in matches the set and nothing when empty", func(t *testing.T) {
		a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		seed(t, s, "in_set", testDoc{Nome: "a", Cia: a}, testDoc{Nome: "b", Cia: b}, testDoc{Nome: "c", Cia: c})

		var got []testDoc
		p := build(t, query.NewBuilder().In("cia", []primitive.ObjectID{a, c}))
		require.NoError(t, s.FindMany(ctx, "in_set", p, query.All, &got))
		assert.Equal(t, []string{"a", "c"}, names(got))

		n, err := s.Count(ctx, "in_set", build(t, query.NewBuilder().In("cia", nil)))
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("numeric and reference equality", func(t *testing.T) {
		cia := primitive.NewObjectID()
		seed(t, s, "equality",
			testDoc{Nome: "small", Seats: 70, Cia: cia},
			testDoc{Nome: "big", Seats: 180, Cia: cia},
			testDoc{Nome: "other", Seats: 180},
		)

		var got []testDoc
		p := build(t, query.NewBuilder().IntEqual("seats", "180").Ref("cia", cia.Hex()))
		require.NoError(t, s.FindMany(ctx, "equality", p, query.All, &got))
		assert.Equal(t, []string{"big"}, names(got))
	})

	t.Run("replace and delete report missing documents", func(t *testing.T) {
		ids := seed(t, s, "replace_delete", testDoc{Nome: "old"})

		require.NoError(t, s.Replace(ctx, "replace_delete", ids[0], testDoc{ID: ids[0], Nome: "new"}))
		var got testDoc
		require.NoError(t, s.FindOne(ctx, "replace_delete", query.ByID(ids[0]), &got))
		assert.Equal(t, "new", got.Nome)
		assert.Equal(t, ids[0], got.ID)

		missing := primitive.NewObjectID()
		assert.ErrorIs(t, s.Replace(ctx, "replace_delete", missing, testDoc{ID: missing}), ErrNoDocument)

		require.NoError(t, s.Delete(ctx, "replace_delete", ids[0]))
		assert.ErrorIs(t, s.Delete(ctx, "replace_delete", ids[0]), ErrNoDocument)

		n, err := s.Count(ctx, "replace_delete", query.Predicate{})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("aggregate count groups by field", func(t *testing.T) {
		empty, err := s.AggregateCount(ctx, "aggregate", "cia", query.Predicate{})
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		seed(t, s, "aggregate", testDoc{Cia: a, Seats: 1}, testDoc{Cia: a, Seats: 2}, testDoc{Cia: b, Seats: 2})

		got, err := s.AggregateCount(ctx, "aggregate", "cia", query.Predicate{})
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{a.Hex(): 2, b.Hex(): 1}, got)

		got, err = s.AggregateCount(ctx, "aggregate", "cia", build(t, query.NewBuilder().IntEqual("seats", "2")))
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{a.Hex(): 1, b.Hex(): 1}, got)
	})

	t.Run("ensure indexes is idempotent", func(t *testing.T) {
		seed(t, s, "indexed", testDoc{Nome: "x"})
		require.NoError(t, s.EnsureIndexes(ctx, "indexed", "cia", "nome"))
		require.NoError(t, s.EnsureIndexes(ctx, "indexed", "cia", "nome"))

		n, err := s.Count(ctx, "indexed", build(t, query.NewBuilder().Contains("nome", "x")))
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
}
