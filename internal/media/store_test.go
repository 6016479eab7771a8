package media

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestSaveWithCustomName(t *testing.T) {
	store, dir := newTestStore(t)

	url, err := store.Save("photo.png", "capcut", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/images/capcut.png", url)

	content, err := os.ReadFile(filepath.Join(dir, "capcut.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestSaveSanitizesCustomName(t *testing.T) {
	store, _ := newTestStore(t)

	url, err := store.Save("photo.png", "../../etc/pass wd", "image/png", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "/images/etcpasswd.png", url, "path separators and spaces are stripped")
}

func TestSaveGeneratesTimestampName(t *testing.T) {
	store, dir := newTestStore(t)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }
	store.randInt = func(n int) int { return 424242 }

	url, err := store.Save("photo.jpg", "", "image/jpeg", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "/images/1700000000000-424242.jpg", url)

	_, err = os.Stat(filepath.Join(dir, "1700000000000-424242.jpg"))
	assert.NoError(t, err)
}

func TestSaveRejectsNonImages(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Save("doc.pdf", "", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	// Image extension with a non-image content type is still rejected.
	_, err = store.Save("fake.png", "", "text/html", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	// And the reverse.
	_, err = store.Save("fake.exe", "", "image/png", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaveAllowsAllImageTypes(t *testing.T) {
	store, _ := newTestStore(t)

	cases := []struct{ name, mime string }{
		{"a.jpeg", "image/jpeg"},
		{"b.jpg", "image/jpeg"},
		{"c.png", "image/png"},
		{"d.gif", "image/gif"},
		{"e.webp", "image/webp"},
	}
	for _, tc := range cases {
		_, err := store.Save(tc.name, "", tc.mime, []byte("x"))
		assert.NoError(t, err, tc.name)
	}
}
