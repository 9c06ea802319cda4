// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index", "placements.db"))
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { s.Close() })
	return s
}

func testPlan(t *testing.T, n, perSlide int) layout.Plan {
	t.Helper()
	subs := make([]types.Subject, n)
	for i := range subs {
		subs[i] = types.Subject{
			Serial:   fmt.Sprintf("S-%02d", i+1),
			ImageKey: fmt.Sprint(100 + i),
			Category: []string{"oak", "pine"}[i%2],
			Size:     fmt.Sprint(10 + i),
			Age:      fmt.Sprint(i + 1),
		}
	}
	plan, err := layout.Build(subs, types.Config{
		Width: types.Inches(2), Height: types.Inches(2), Space: types.Inches(0.2), NumInSlide: perSlide,
	})
	require.NoError(t, err)
	return plan
}

func serialCaption(s types.Subject) string { return "no:" + s.Serial }

// --- tests ---

func TestPlacements(t *testing.T) {
	rows := Placements("survey", testPlan(t, 5, 2), serialCaption)
	require.Len(t, rows, 5)

	want := []struct{ slide, col int }{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 1}}
	for i, r := range rows {
		assert.Equal(t, "survey", r.Deck)
		assert.Equal(t, i, r.Seq)
		assert.Equal(t, want[i].slide, r.Slide, "row %d slide", i)
		assert.Equal(t, want[i].col, r.Column, "row %d column", i)
		assert.Equal(t, "no:"+r.Serial, r.Caption)
	}
}

func TestRecordAndFind(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "survey", Placements("survey", testPlan(t, 5, 2), serialCaption)))

	tests := []struct {
		name    string
		term    string
		wantSer []string
	}{
		{name: "by serial", term: "S-03", wantSer: []string{"S-03"}},
		{name: "by image key", term: "104", wantSer: []string{"S-05"}},
		{name: "by category", term: "pine", wantSer: []string{"S-02", "S-04"}},
		{name: "no match", term: "elm"},
		{name: "partial serial does not match", term: "S-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Find(ctx, tt.term)
			require.NoError(t, err)
			var serials []string
			for _, p := range got {
				serials = append(serials, p.Serial)
			}
			assert.Equal(t, tt.wantSer, serials)
		})
	}

	got, err := s.Find(ctx, "S-05")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Slide)
	assert.Equal(t, 1, got[0].Column)
	assert.Equal(t, "14", got[0].Size)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), got[0].RecordedAt)
}

func TestRecord_ReplacesDeck(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "a", Placements("a", testPlan(t, 5, 2), serialCaption)))
	require.NoError(t, s.Record(ctx, "b", Placements("b", testPlan(t, 2, 2), serialCaption)))
	require.NoError(t, s.Record(ctx, "a", Placements("a", testPlan(t, 3, 3), serialCaption)))

	rows, err := s.Deck(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, 1, r.Slide)
	}

	rows, err = s.Deck(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	decks, err := s.Decks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, decks)

	got, err := s.Find(ctx, "S-01")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecord_Empty(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "a", Placements("a", testPlan(t, 2, 2), serialCaption)))
	require.NoError(t, s.Record(ctx, "a", nil))

	rows, err := s.Deck(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, "a", Placements("a", testPlan(t, 2, 2), serialCaption)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	rows, err := s.Deck(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestExport(t *testing.T) {
	rows := Placements("survey", testPlan(t, 2, 2), serialCaption)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, rows, FormatText))
		out := buf.String()
		assert.Contains(t, out, "SERIAL")
		assert.Contains(t, out, "S-01")
		assert.Contains(t, out, "no:S-02")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, rows, FormatYAML))
		var got []Placement
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "101", got[1].ImageKey)
	})

	t.Run("json empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, nil, FormatJSON))
		var got []Placement
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Empty(t, got)
	})

	t.Run("unknown", func(t *testing.T) {
		err := Export(&bytes.Buffer{}, rows, "csv")
		assert.ErrorContains(t, err, "unknown format")
	})
}
