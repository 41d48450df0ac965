package column

import (
	"fmt"

	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/physical"
)

// Descriptor identifies a column: its name, physical kind, and, for
// FixedLenByteArray columns, the schema-supplied element length in bytes.
// TypeLength must be zero for every other kind.
type Descriptor struct {
	Name       string
	Kind       physical.Kind
	TypeLength int
}

// Validate checks the descriptor's internal consistency.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: column name is empty", errs.ErrInvalidArgument)
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidKind, uint8(d.Kind))
	}
	if d.Kind == physical.KindFixedLenByteArray {
		if d.TypeLength <= 0 {
			return fmt.Errorf("%w: %s column needs a positive type length, got %d",
				errs.ErrInvalidArgument, d.Kind, d.TypeLength)
		}

		return nil
	}
	if d.TypeLength != 0 {
		return fmt.Errorf("%w: %s column does not take a type length, got %d",
			errs.ErrInvalidArgument, d.Kind, d.TypeLength)
	}

	return nil
}
