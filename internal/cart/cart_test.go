package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsanlabs/storefront-service/internal/kvstore"
)

func newTestCart() *Cart {
	return New(kvstore.NewMemoryStore())
}

func TestAddAppendsAndReplaces(t *testing.T) {
	c := newTestCart()

	require.NoError(t, c.Add(LineItem{ProductID: "A", Name: "Course", Price: 50, Quantity: 1}))
	require.NoError(t, c.Add(LineItem{ProductID: "B", Name: "Templates", Price: 20, Quantity: 2}))

	items, err := c.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Re-adding product A with a coupon-discounted price overwrites the
	// prior line rather than incrementing quantity.
	require.NoError(t, c.Add(LineItem{ProductID: "A", Name: "Course", Price: 40, Quantity: 1, AppliedCoupon: "WELCOME10"}))

	items, err = c.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, float64(40), items[0].Price)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "WELCOME10", items[0].AppliedCoupon)
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	viaZero := newTestCart()
	viaRemove := newTestCart()

	seed := []LineItem{
		{ProductID: "A", Price: 50, Quantity: 1},
		{ProductID: "B", Price: 20, Quantity: 3},
	}
	for _, item := range seed {
		require.NoError(t, viaZero.Add(item))
		require.NoError(t, viaRemove.Add(item))
	}

	require.NoError(t, viaZero.SetQuantity("A", 0))
	require.NoError(t, viaRemove.Remove("A"))

	a, err := viaZero.Items()
	require.NoError(t, err)
	b, err := viaRemove.Items()
	require.NoError(t, err)
	assert.Equal(t, b, a, "setQuantity(id, 0) and remove(id) must leave identical state")
}

func TestSetQuantityPreservesPriceSnapshot(t *testing.T) {
	c := newTestCart()
	require.NoError(t, c.Add(LineItem{ProductID: "A", Price: 50, Quantity: 1}))
	require.NoError(t, c.SetQuantity("A", 4))

	items, err := c.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, float64(50), items[0].Price)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := newTestCart()
	require.NoError(t, c.Add(LineItem{ProductID: "A", Price: 50, Quantity: 1}))
	require.NoError(t, c.Remove("ghost"))

	count, err := c.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTotalUsesSnapshots(t *testing.T) {
	c := newTestCart()
	require.NoError(t, c.Add(LineItem{ProductID: "A", Price: 134.991, Quantity: 2}))
	require.NoError(t, c.Add(LineItem{ProductID: "B", Price: 20, Quantity: 1}))

	total, err := c.Total()
	require.NoError(t, err)
	assert.InDelta(t, 289.982, total, 1e-9)
}

func TestChangeNotifications(t *testing.T) {
	c := newTestCart()
	var counts []int
	c.OnChange(func(n int) { counts = append(counts, n) })

	require.NoError(t, c.Add(LineItem{ProductID: "A", Price: 1, Quantity: 1}))
	require.NoError(t, c.Add(LineItem{ProductID: "B", Price: 1, Quantity: 1}))
	require.NoError(t, c.Remove("A"))
	require.NoError(t, c.Clear())

	assert.Equal(t, []int{1, 2, 1, 0}, counts)
}

func TestCorruptStateFailsClosed(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(kvstore.KeyCart, []byte("{not json")))

	c := New(store)
	items, err := c.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	// The cart stays usable after corruption.
	require.NoError(t, c.Add(LineItem{ProductID: "A", Price: 5, Quantity: 1}))
	count, err := c.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	first := New(store)
	require.NoError(t, first.Add(LineItem{ProductID: "A", Name: "Course", Price: 40, Image: "/images/a.png", Quantity: 2, AppliedCoupon: "MEGA30"}))

	// A second aggregate over the same store sees identical state.
	second := New(store)
	items, err := second.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, LineItem{ProductID: "A", Name: "Course", Price: 40, Image: "/images/a.png", Quantity: 2, AppliedCoupon: "MEGA30"}, items[0])
}
