package markov

// tokenID is the handle a token value is interned under. Transition tables
// store tokenIDs, never values.
type tokenID uint32

// vocabulary maps token values to dense tokenIDs and back. It is append-only.
type vocabulary[T comparable] struct {
	ids    map[T]tokenID
	values []T
}

func newVocabulary[T comparable]() *vocabulary[T] {
	return &vocabulary[T]{
		ids: make(map[T]tokenID),
	}
}

// intern returns the tokenID for value, assigning the next free ID if value has
// not been seen. The boolean reports whether a new ID was assigned.
func (v *vocabulary[T]) intern(value T) (tokenID, bool) {
	if id, ok := v.ids[value]; ok {
		return id, false
	}
	id := tokenID(len(v.values))
	v.values = append(v.values, value)
	v.ids[value] = id
	return id, true
}

// lookup returns the tokenID for value without registering it.
func (v *vocabulary[T]) lookup(value T) (tokenID, bool) {
	id, ok := v.ids[value]
	return id, ok
}

// value returns the token value for id. It panics if id was never interned.
func (v *vocabulary[T]) value(id tokenID) T {
	return v.values[id]
}

func (v *vocabulary[T]) len() int {
	return len(v.values)
}
