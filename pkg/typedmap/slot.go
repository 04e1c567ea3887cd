package typedmap

import (
	"reflect"

	"github.com/randalmurphal/typedmap/pkg/typedmap/registry"
)

// Slot holds one value of a fixed type together with that type's TypeID.
// The only implementations are created by NewSlot and ZeroSlot.
type Slot interface {
	// TypeID returns the ID of the stored value's type.
	TypeID() registry.TypeID

	// Type returns the stored value's static type.
	Type() reflect.Type

	// Interface returns a pointer to the stored value, boxed as any.
	Interface() any

	owner() *registry.Registry
	clone() Slot
}

// typedSlot is the Slot for values of type T.
type typedSlot[T any] struct {
	value T
	id    registry.TypeID
	reg   *registry.Registry
}

// NewSlot wraps a copy of v. T's TypeID is taken from r, or from
// registry.Default() when r is nil.
func NewSlot[T any](r *registry.Registry, v T) Slot {
	if r == nil {
		r = registry.Default()
	}
	return &typedSlot[T]{value: v, id: registry.Of[T](r), reg: r}
}

// ZeroSlot wraps the zero value of T.
func ZeroSlot[T any](r *registry.Registry) Slot {
	var zero T
	return NewSlot(r, zero)
}

func (s *typedSlot[T]) TypeID() registry.TypeID { return s.id }

func (s *typedSlot[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

func (s *typedSlot[T]) Interface() any { return &s.value }

func (s *typedSlot[T]) owner() *registry.Registry { return s.reg }

func (s *typedSlot[T]) clone() Slot {
	c := *s
	return &c
}

// ValueOf returns a pointer to the value held by s if s stores a T.
// The pointer stays valid as long as the slot does. A nil slot yields
// (nil, nil); any other type yields a *TypeMismatchError.
func ValueOf[T any](s Slot) (*T, error) {
	v, mismatch := valueOf[T](s)
	if mismatch != nil {
		return nil, mismatch
	}
	return v, nil
}

func valueOf[T any](s Slot) (*T, *TypeMismatchError) {
	if s == nil {
		return nil, nil
	}
	want := registry.Of[T](s.owner())
	if s.TypeID() == want {
		// IDs agree within one registry, so the assertion holds.
		if ts, ok := s.(*typedSlot[T]); ok {
			return &ts.value, nil
		}
	}
	return nil, &TypeMismatchError{
		Expected:     want,
		Actual:       s.TypeID(),
		ExpectedType: reflect.TypeFor[T](),
		ActualType:   s.Type(),
	}
}
