// Package kvstore provides the persistent key-value port backing the
// shopper-facing aggregates (cart, comparison, ratings, visitor count,
// theme). Each namespace is one key holding a JSON document; namespaces
// are independent and read-modify-written with last-write-wins semantics.
package kvstore

// Namespace keys. These match the keys the web client persists under,
// so a file-backed store can be inspected or migrated 1:1.
const (
	KeyCart         = "digital_store_cart"
	KeyRatings      = "digital_store_ratings"
	KeyVisitorCount = "digital_store_visitor_count"
	KeyComparison   = "digital_store_comparison"
	KeyTheme        = "digital_store_theme"
)

// Store defines the interface for namespaced key-value persistence.
// Implementations can be local filesystem, an in-memory fake, or any
// per-shopper durable store.
type Store interface {
	// Get retrieves the raw value for a key. The second return value is
	// false when the key has never been written.
	Get(key string) ([]byte, bool, error)

	// Set stores the raw value for a key, replacing any prior value.
	Set(key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
}
