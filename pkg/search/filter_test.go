package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinickit/pkg/search"
)

func patientFields() []search.Field[patient] {
	return []search.Field[patient]{
		search.F("fullName", func(p patient) any { return p.FullName }),
		search.F("phone", func(p patient) any { return p.Phone }),
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty term returns source unchanged", func(t *testing.T) {
		data := samplePatients()
		for _, term := range []string{"", "   ", "\t\n"} {
			got := search.Filter(data, term, patientFields(), nil)
			require.Len(t, got, len(data))
			assert.Same(t, &data[0], &got[0], "expected the source slice itself")
		}
	})

	t.Run("case insensitive unicode match", func(t *testing.T) {
		got := search.Filter(samplePatients(), "TRẦN", patientFields(), search.FoldCase)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("matches any field", func(t *testing.T) {
		got := search.Filter(samplePatients(), "0987", patientFields(), nil)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("nil values never match", func(t *testing.T) {
		fields := []search.Field[patient]{
			search.F("phone", func(p patient) any { return p.Phone }),
		}
		got := search.Filter(samplePatients(), "<nil>", fields, nil)
		assert.Empty(t, got)
	})

	t.Run("non string values are rendered as text", func(t *testing.T) {
		fields := []search.Field[patient]{
			search.F("id", func(p patient) any { return p.ID }),
		}
		got := search.Filter(samplePatients(), "3", fields, nil)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)

		dates := []time.Time{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
		byDate := search.Filter(dates, "2026-03", []search.Field[time.Time]{
			search.F("date", func(d time.Time) any { return d }),
		}, nil)
		assert.Len(t, byDate, 1)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := search.Filter(samplePatients(), "zzz", patientFields(), nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("does not mutate source", func(t *testing.T) {
		data := samplePatients()
		before := samplePatients()
		_ = search.Filter(data, "nguyễn", patientFields(), nil)
		assert.Equal(t, before, data)
	})

	t.Run("diacritic folding", func(t *testing.T) {
		got := search.Filter(samplePatients(), "dao", patientFields(), search.FoldDiacritics)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("nil accessor is skipped", func(t *testing.T) {
		fields := []search.Field[patient]{{Name: "broken"}}
		assert.Empty(t, search.Filter(samplePatients(), "trần", fields, nil))
	})
}
