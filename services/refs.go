// services/refs.go
package services

import "github.com/google/uuid"

// Ref is a reference that may arrive either as a bare id or as a populated
// record, depending on whether the source row was preloaded. Older payloads
// carry only ids; preloaded query results carry the full record.
type Ref[T any] struct {
	ID    uuid.UUID
	Value *T
}

// Resolve returns the referenced record, consulting the lookup only when
// the reference is not already populated
func (r Ref[T]) Resolve(lookup func(uuid.UUID) (*T, bool)) (*T, bool) {
	if r.Value != nil {
		return r.Value, true
	}
	if lookup == nil {
		return nil, false
	}
	return lookup(r.ID)
}
