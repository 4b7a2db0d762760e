package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-site/internal/types"
)

// loadTestStore builds a store through the loader from in-memory documents.
func loadTestStore(t *testing.T, docs map[string]string) *Store {
	t.Helper()

	dir := t.TempDir()
	ids := make([]string, 0, len(docs))
	for id, body := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte(body), 0o644))
		ids = append(ids, id)
	}

	store, err := NewLoader(NewFileSource(dir), ids).Load(context.Background())
	require.NoError(t, err)
	return store
}

func TestStore_Decode_Success(t *testing.T) {
	store := loadTestStore(t, map[string]string{
		"personal_info": `{"name":"Ada Lovelace","role":"Engineer"}`,
	})

	var info types.PersonalInfo
	require.NoError(t, store.Decode("personal_info", &info))
	assert.Equal(t, "Ada Lovelace", info.Name)
	assert.Equal(t, "Engineer", info.Role)
}

func TestStore_Decode_MissingKey(t *testing.T) {
	store := loadTestStore(t, map[string]string{"site": `{}`})

	var info types.PersonalInfo
	err := store.Decode("personal_info", &info)
	require.Error(t, err)

	var resErr *Error
	assert.ErrorAs(t, err, &resErr)
	assert.Contains(t, err.Error(), "not loaded")
}

func TestStore_Decode_WrongShape(t *testing.T) {
	// education is an array where an object is expected.
	store := loadTestStore(t, map[string]string{"education": `["not","an","object"]`})

	var history types.EducationHistory
	err := store.Decode("education", &history)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected shape")
}

func TestStore_KeysSorted(t *testing.T) {
	store := loadTestStore(t, map[string]string{
		"site":      `{}`,
		"education": `{}`,
		"projects":  `{}`,
	})
	assert.Equal(t, []string{"education", "projects", "site"}, store.Keys())
}

func TestStore_Raw(t *testing.T) {
	store := loadTestStore(t, map[string]string{"site": `{"title":"T"}`})

	raw, ok := store.Raw("site")
	assert.True(t, ok)
	assert.JSONEq(t, `{"title":"T"}`, string(raw))

	_, ok = store.Raw("absent")
	assert.False(t, ok)
}
