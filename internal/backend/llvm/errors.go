package llvm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSupportedYet marks forms the generator has no lowering for.
	ErrNotSupportedYet = errors.New("not supported yet")
	// ErrInvariant marks forms the binder never produces.
	ErrInvariant = errors.New("codegen invariant violated")
)

// Fault stops generation. Kind is ErrNotSupportedYet or ErrInvariant.
type Fault struct {
	Kind error
	What string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("llvm: %s: %s", f.What, f.Kind)
}

func (f *Fault) Unwrap() error { return f.Kind }

func notSupported(format string, args ...any) error {
	return &Fault{Kind: ErrNotSupportedYet, What: fmt.Sprintf(format, args...)}
}

func invariant(format string, args ...any) error {
	return &Fault{Kind: ErrInvariant, What: fmt.Sprintf(format, args...)}
}
