package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilinovom/company-info-bot/internal/model"
)

func testDocument() *model.Document {
	return &model.Document{
		Subscribers: []int64{111, 222},
		Company:     model.Company{Name: "ТралалелоТралала", Industry: "IT"},
		Team: []model.TeamMember{
			{Name: "Олег Арсипов", Role: "CTO"},
		},
		Contacts: model.Contacts{IvanovsPhone: "+7 900 000-00-00"},
		Events: []model.Event{
			{Day: "Пятница", Time: "09:10", Title: "Планёрка", Description: "еженедельная"},
		},
		Digests: map[string]string{"Понедельник": "Hi"},
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFileStore(path)

	want := testDocument()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFileStore_MissingFileIsEmptyDocument(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	doc, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, doc.Subscribers)
	require.Empty(t, doc.Events)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
}

func TestFileStore_SaveLeavesNoTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(testDocument()))

	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestSubscribe_Dedupes(t *testing.T) {
	doc := &model.Document{}
	require.True(t, Subscribe(doc, 42))
	require.False(t, Subscribe(doc, 42))
	require.Equal(t, []int64{42}, doc.Subscribers)

	require.True(t, Subscribe(doc, 43))
	require.Equal(t, []int64{42, 43}, doc.Subscribers)
}
