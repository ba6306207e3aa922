// Package resolver reserves the field-resolution sigil grammar that a
// future template/override layer would sit on top of raw lookups, without
// implementing it.
//
// Ground: original_source/src/resolver.rs. The Rust source's own
// Resolver.resolve has an empty body and a comment enumerating five rules
// it never implements; this mirrors that rather than inventing semantics
// spec.md never specifies.
package resolver

import (
	"errors"

	"github.com/taggu-go/taggu/pkg/lookup"
)

const (
	// IndexSigil prefixes a field name to select specific elements from an
	// inherited sequence by integer index.
	IndexSigil = '#'
	// ReferenceSigil prefixes a field name to copy values from another
	// field, looking upward through ancestors if needed.
	ReferenceSigil = '@'
	// PrependSigil prefixes a field name to prepend this item's values
	// ahead of the inherited parent values for the same field.
	PrependSigil = '&'
	// AppendSigil prefixes a field name to append this item's values
	// after the inherited parent values for the same field.
	AppendSigil = '+'
)

// ErrNotImplemented is returned by Resolve. The sigil grammar above is
// reserved for a future resolution layer; Resolve exists so callers can
// already depend on the interface shape.
var ErrNotImplemented = errors.New("resolver: field resolution is not implemented")

// Resolver would apply the sigil grammar on top of a lookup.Session to
// combine an item's own field values with its inherited ancestry. It does
// not do so yet.
type Resolver struct {
	session *lookup.Session
}

// New constructs a Resolver bound to session.
func New(session *lookup.Session) *Resolver {
	return &Resolver{session: session}
}

// Resolve would apply the sigil grammar for fieldName at itemPath. It
// always returns ErrNotImplemented.
func (r *Resolver) Resolve(itemPath, fieldName string) error {
	return ErrNotImplemented
}
