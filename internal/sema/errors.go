package sema

import (
	"fmt"
	"strings"

	"rsharp/internal/diag"
)

// BindError carries every diagnostic of a failed Bind call in source order.
type BindError struct {
	Diagnostics []diag.Diagnostic
}

func (e *BindError) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "bind failed"
	case 1:
		return fmt.Sprintf("%s: %s", e.Diagnostics[0].Code.ID(), e.Diagnostics[0].Message)
	}
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.Code.ID() + ": " + d.Message
	}
	return fmt.Sprintf("%d errors: %s", len(e.Diagnostics), strings.Join(msgs, "; "))
}
