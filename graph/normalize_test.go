package graph

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"nil passes through", nil, nil},
		{"string passes through", "hello", "hello"},
		{"bool passes through", true, true},
		{"float passes through", 3.14, 3.14},
		{"in-range integer stays numeric", int64(42), int64(42)},
		{"max safe integer stays numeric", int64(1<<53 - 1), int64(1<<53 - 1)},
		{"min safe integer stays numeric", int64(-(1<<53 - 1)), int64(-(1<<53 - 1))},
		{"out-of-range integer becomes decimal string", int64(1 << 53), "9007199254740992"},
		{"negative out-of-range integer becomes decimal string", int64(-(1 << 53)), "-9007199254740992"},
		{"large node id becomes exact string", int64(9223372036854775807), "9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeValue(tt.value))
		})
	}
}

func TestNormalizeValue_Temporal(t *testing.T) {
	instant := time.Date(2023, 6, 15, 12, 30, 45, 0, time.UTC)

	t.Run("zoned datetime becomes RFC3339 string", func(t *testing.T) {
		assert.Equal(t, "2023-06-15T12:30:45Z", NormalizeValue(instant))
	})

	t.Run("date becomes string", func(t *testing.T) {
		got := NormalizeValue(dbtype.Date(instant))
		assert.Equal(t, "2023-06-15", got)
	})

	t.Run("duration becomes string", func(t *testing.T) {
		d := dbtype.Duration{Months: 1, Days: 2, Seconds: 3}
		got, ok := NormalizeValue(d).(string)
		require.True(t, ok)
		assert.NotEmpty(t, got)
	})
}

func TestNormalizeValue_Spatial(t *testing.T) {
	point := dbtype.Point2D{X: 1.5, Y: 2.5, SpatialRefId: 7203}

	got, ok := NormalizeValue(point).(string)

	require.True(t, ok)
	assert.Contains(t, got, "1.5")
}

func TestNormalizeValue_Node(t *testing.T) {
	node := dbtype.Node{
		ElementId: "4:abc:0",
		Labels:    []string{"Person"},
		Props: map[string]any{
			"name": "Alice",
			"age":  int64(30),
			"id":   int64(1 << 60),
		},
	}

	got := NormalizeValue(node)

	assert.Equal(t, map[string]any{
		"name": "Alice",
		"age":  int64(30),
		"id":   "1152921504606846976",
	}, got)
}

func TestNormalizeValue_Relationship(t *testing.T) {
	rel := dbtype.Relationship{
		Type:  "KNOWS",
		Props: map[string]any{"since": int64(2020)},
	}

	assert.Equal(t, map[string]any{"since": int64(2020)}, NormalizeValue(rel))
}

func TestNormalizeValue_Collections(t *testing.T) {
	t.Run("list normalizes element-wise", func(t *testing.T) {
		list := []any{int64(1), int64(1 << 53), "x", nil}

		got := NormalizeValue(list)

		assert.Equal(t, []any{int64(1), "9007199254740992", "x", nil}, got)
	})

	t.Run("map normalizes key-wise", func(t *testing.T) {
		m := map[string]any{
			"plain":  "value",
			"nested": map[string]any{"big": int64(1 << 53)},
			"list":   []any{dbtype.Node{Props: map[string]any{"name": "Bob"}}},
		}

		got := NormalizeValue(m)

		assert.Equal(t, map[string]any{
			"plain":  "value",
			"nested": map[string]any{"big": "9007199254740992"},
			"list":   []any{map[string]any{"name": "Bob"}},
		}, got)
	})

	t.Run("plain nested structures round-trip", func(t *testing.T) {
		value := map[string]any{
			"a": []any{"x", true, 1.5},
			"b": map[string]any{"c": nil},
		}

		assert.Equal(t, value, NormalizeValue(value))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		list := []any{int64(1 << 53)}

		NormalizeValue(list)

		assert.Equal(t, int64(1<<53), list[0])
	})
}

func TestNormalizeRecords(t *testing.T) {
	records := []*neo4j.Record{
		{
			Keys: []string{"person", "score"},
			Values: []any{
				dbtype.Node{Props: map[string]any{"name": "Alice"}},
				int64(97),
			},
		},
		{
			Keys: []string{"person", "score"},
			Values: []any{
				dbtype.Node{Props: map[string]any{"name": "Bob"}},
				int64(1 << 54),
			},
		},
	}

	got := NormalizeRecords(records)

	require.Len(t, got, 2)
	assert.Equal(t, Record{
		"person": map[string]any{"name": "Alice"},
		"score":  int64(97),
	}, got[0])
	assert.Equal(t, Record{
		"person": map[string]any{"name": "Bob"},
		"score":  "18014398509481984",
	}, got[1])
}

func TestNormalizeRecords_Empty(t *testing.T) {
	got := NormalizeRecords(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
