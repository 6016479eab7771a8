package shopper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsanlabs/storefront-service/internal/kvstore"
)

func TestRatingsRoundTrip(t *testing.T) {
	r := NewRatings(kvstore.NewMemoryStore())

	got, err := r.Get("1")
	require.NoError(t, err)
	assert.Zero(t, got, "unrated products report 0")

	require.NoError(t, r.Set("1", 4))
	require.NoError(t, r.Set("2", 5))
	require.NoError(t, r.Set("1", 3))

	got, err = r.Get("1")
	require.NoError(t, err)
	assert.Equal(t, 3, got, "re-rating overwrites")

	all, err := r.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 3, "2": 5}, all)
}

func TestRatingsRejectOutOfRange(t *testing.T) {
	r := NewRatings(kvstore.NewMemoryStore())
	assert.Error(t, r.Set("1", 0))
	assert.Error(t, r.Set("1", 6))
}

func TestRatingsCorruptStateFailsClosed(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(kvstore.KeyRatings, []byte("][")))

	r := NewRatings(store)
	got, err := r.Get("1")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestVisitorCounterSeedsInRange(t *testing.T) {
	v := NewVisitorCounter(kvstore.NewMemoryStore())

	n, err := v.Get()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 5000)
	assert.Less(t, n, 15000)
}

func TestVisitorCounterIncrements(t *testing.T) {
	v := NewVisitorCounter(kvstore.NewMemoryStore())
	v.seed = func() int { return 7000 }

	n, err := v.Increment()
	require.NoError(t, err)
	assert.Equal(t, 7001, n)

	n, err = v.Increment()
	require.NoError(t, err)
	assert.Equal(t, 7002, n)

	// The persisted value survives a fresh counter over the same store.
	again, err := v.Get()
	require.NoError(t, err)
	assert.Equal(t, 7002, again)
}

func TestVisitorCounterReseedsOnCorruptValue(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(kvstore.KeyVisitorCount, []byte("many")))

	v := NewVisitorCounter(store)
	v.seed = func() int { return 6000 }

	n, err := v.Get()
	require.NoError(t, err)
	assert.Equal(t, 6000, n)
}

func TestThemeDefaultsToDark(t *testing.T) {
	ts := NewThemeStore(kvstore.NewMemoryStore())

	theme, err := ts.Get()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
}

func TestThemeRoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ts := NewThemeStore(store)

	require.NoError(t, ts.Set(ThemeLight))
	theme, err := ts.Get()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	assert.Error(t, ts.Set(Theme("sepia")))

	// Unrecognized stored values fall back to the default.
	require.NoError(t, store.Set(kvstore.KeyTheme, []byte("neon")))
	theme, err = ts.Get()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
}
