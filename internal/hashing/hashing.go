// Package hashing provides a hash-bucketed table that confirms matches by
// structural equality, used to deduplicate transpositions.
package hashing

// Keyed is implemented by values that can index a Table. Equal hashes are
// necessary but not sufficient for Equal to report true.
type Keyed[K any] interface {
	Hash() uint64
	Equal(other K) bool
}

type entry[K any, V any] struct {
	key   K
	value V
}

// Table maps keys to values. Keys are bucketed by hash and confirmed with
// Equal, so hash collisions never merge distinct keys.
// A Table is not safe for concurrent use.
type Table[K Keyed[K], V any] struct {
	// buckets stores entries by hash code
	buckets map[uint64][]entry[K, V]
	// count is the number of distinct keys
	count int
	// collisions counts keys that share a bucket with a different key
	collisions int
	// maxCapacity limits the number of keys (0 = unlimited)
	maxCapacity int
}

// NewTable creates an empty table. maxCapacity of 0 means unlimited capacity.
func NewTable[K Keyed[K], V any](maxCapacity int) *Table[K, V] {
	return &Table[K, V]{
		buckets:     make(map[uint64][]entry[K, V]),
		maxCapacity: maxCapacity,
	}
}

// Get returns the value stored for key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	for _, e := range t.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Insert stores value under key unless the key is already present, in which
// case the existing value is kept. It returns the stored value and whether
// this call inserted it. Once the table is full, new keys are not stored and
// the given value is returned with inserted false.
func (t *Table[K, V]) Insert(key K, value V) (stored V, inserted bool) {
	hash := key.Hash()
	bucket := t.buckets[hash]
	for _, e := range bucket {
		if e.key.Equal(key) {
			return e.value, false
		}
	}
	if t.IsFull() {
		return value, false
	}
	if len(bucket) > 0 {
		t.collisions++
	}
	t.buckets[hash] = append(bucket, entry[K, V]{key: key, value: value})
	t.count++
	return value, true
}

// Put stores value under key, replacing any existing value.
func (t *Table[K, V]) Put(key K, value V) {
	hash := key.Hash()
	bucket := t.buckets[hash]
	for i := range bucket {
		if bucket[i].key.Equal(key) {
			bucket[i].value = value
			return
		}
	}
	if len(bucket) > 0 {
		t.collisions++
	}
	t.buckets[hash] = append(bucket, entry[K, V]{key: key, value: value})
	t.count++
}

// Len returns the number of distinct keys.
func (t *Table[K, V]) Len() int {
	return t.count
}

// Collisions returns how many keys were stored in an already used bucket.
func (t *Table[K, V]) Collisions() int {
	return t.collisions
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table[K, V]) IsFull() bool {
	return t.maxCapacity > 0 && t.count >= t.maxCapacity
}
