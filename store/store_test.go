package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (r record) RecordID() int { return r.ID }

func TestLoadMissingFile(t *testing.T) {
	s := New[record](filepath.Join(t.TempDir(), "records.json"))

	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpdateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	s := New[record](path)

	err := s.Update(func(records []record) ([]record, error) {
		return append(records, record{ID: 1, Name: "a"}, record{ID: 2, Name: "b"}), nil
	})
	require.NoError(t, err)

	// a fresh store over the same path sees the persisted state
	records, err := New[record](path).Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Name)
	assert.Equal(t, 2, records[1].ID)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should not survive a save")
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"`), 0o644))

	_, err := New[record](path).Load()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestUpdateAbortsWithoutWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	s := New[record](path)
	require.NoError(t, s.Update(func(records []record) ([]record, error) {
		return append(records, record{ID: 1, Name: "keep"}), nil
	}))

	wantErr := assert.AnError
	err := s.Update(func(records []record) ([]record, error) {
		return nil, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	records, err := s.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "keep", records[0].Name)
}

func TestConcurrentAppendsKeepIDsUnique(t *testing.T) {
	s := New[record](filepath.Join(t.TempDir(), "records.json"))

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update(func(records []record) ([]record, error) {
				return append(records, record{ID: NextID(records)}), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := s.Load()
	require.NoError(t, err)
	require.Len(t, records, n)

	seen := make(map[int]bool, n)
	for _, r := range records {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID([]record{}))
	assert.Equal(t, 8, NextID([]record{{ID: 3}, {ID: 7}, {ID: 1}}))
}
