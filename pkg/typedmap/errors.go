package typedmap

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/randalmurphal/typedmap/pkg/typedmap/registry"
)

// Sentinel errors for lookups.
var (
	// ErrTypeMismatch indicates a typed lookup found a value of another type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrKeyNotFound indicates an operation required a key that is not set.
	ErrKeyNotFound = errors.New("key not found")
)

// TypeMismatchError describes a typed lookup whose requested type differs
// from the stored one.
type TypeMismatchError struct {
	// Key is the map key, empty when the check was made on a bare Slot.
	Key string
	// Expected is the TypeID of the requested type.
	Expected registry.TypeID
	// Actual is the TypeID of the stored value.
	Actual registry.TypeID
	// ExpectedType is the requested type.
	ExpectedType reflect.Type
	// ActualType is the type of the stored value.
	ActualType reflect.Type
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("type mismatch: want %s (id %d), have %s (id %d)",
		typeName(e.ExpectedType), e.Expected, typeName(e.ActualType), e.Actual)
	if e.Key == "" {
		return msg
	}
	return fmt.Sprintf("key %q: %s", e.Key, msg)
}

// Unwrap returns ErrTypeMismatch for errors.Is support.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// KeyError reports an operation on a key that is not set.
type KeyError struct {
	// Key is the missing key.
	Key string
	// Op is the operation that failed (e.g., "type id").
	Op string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, ErrKeyNotFound)
}

// Unwrap returns ErrKeyNotFound for errors.Is support.
func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}
