package column

import (
	"fmt"

	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/physical"
)

// Builder is the type-erased writer surface for schema-driven callers that
// construct columns from descriptors alone. Callers that know the value
// type downcast to *Writer[T] for the typed Append methods.
type Builder interface {
	// Kind returns the column's physical kind.
	Kind() physical.Kind

	// Len returns the number of values appended so far.
	Len() int

	// IsEmpty reports whether no values have been appended.
	IsEmpty() bool

	// AppendAny appends a dynamically typed value. It fails with
	// errs.ErrTypeMismatch when the dynamic type is not the column's value
	// type.
	AppendAny(v any) error

	// Finish seals the column.
	Finish() (*Column, error)

	// Close releases resources without sealing.
	Close()
}

var _ Builder = (*Writer[int32])(nil)

// AppendAny implements Builder. The dynamic type of v must be exactly the
// writer's value type; there is no implicit widening.
func (w *Writer[T]) AppendAny(v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: cannot append %T to a %s column",
			errs.ErrTypeMismatch, v, w.desc.Kind)
	}

	return w.Append(tv)
}

// NewBuilderOf creates a writer for the descriptor's kind behind the Builder
// interface. The kind set is closed; anything else fails with
// errs.ErrInvalidKind.
func NewBuilderOf(desc Descriptor, opts ...Option) (Builder, error) {
	switch desc.Kind {
	case physical.KindBoolean:
		return NewWriter[bool](desc, opts...)
	case physical.KindInt32:
		return NewWriter[int32](desc, opts...)
	case physical.KindInt64:
		return NewWriter[int64](desc, opts...)
	case physical.KindInt96:
		return NewWriter[physical.Int96](desc, opts...)
	case physical.KindFloat:
		return NewWriter[float32](desc, opts...)
	case physical.KindDouble:
		return NewWriter[float64](desc, opts...)
	case physical.KindByteArray:
		return NewWriter[physical.ByteArray](desc, opts...)
	case physical.KindFixedLenByteArray:
		return NewWriter[physical.FixedLenByteArray](desc, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidKind, uint8(desc.Kind))
	}
}
