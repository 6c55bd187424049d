package redis

const (
	// KeyPrefix namespaces every key written by this store.
	KeyPrefix = "yv:col:"
)

// DocKey returns the Redis key holding a document's JSON payload.
func DocKey(collection, id string) string {
	return KeyPrefix + collection + ":doc:" + id
}

// IDsKey returns the Redis key of the list holding a collection's
// document IDs in insertion order.
func IDsKey(collection string) string {
	return KeyPrefix + collection + ":ids"
}
