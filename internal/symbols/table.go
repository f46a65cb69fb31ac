package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"rsharp/internal/bound"
	"rsharp/internal/source"
)

// Symbol is one declared variable and the value bound to it.
type Symbol struct {
	Name  string
	Value bound.Expr
	Decl  source.Span // span of the declaring identifier
}

// Table is an insertion-ordered set of uniquely named symbols. It lives as
// long as its Binder, so names declared by one bind call stay visible to
// later calls.
type Table struct {
	data []Symbol
}

// NewTable builds an empty table with an optional capacity hint.
func NewTable(capHint uint) *Table {
	return &Table{data: make([]Symbol, 0, capHint)}
}

// Lookup scans the table in declaration order.
func (t *Table) Lookup(name string) (SymbolID, *Symbol) {
	for i := range t.data {
		if t.data[i].Name == name {
			return toID(i), &t.data[i]
		}
	}
	return NoSymbolID, nil
}

// Declare appends sym. It fails and returns the existing entry when the
// name is already taken; names are never shadowed.
func (t *Table) Declare(sym Symbol) (SymbolID, bool) {
	if id, _ := t.Lookup(sym.Name); id.IsValid() {
		return id, false
	}
	t.data = append(t.data, sym)
	return toID(len(t.data) - 1), true
}

// Get returns the entry for id, or nil when id is out of range.
func (t *Table) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) > len(t.data) {
		return nil
	}
	return &t.data[id-1]
}

// Len returns the number of declared symbols.
func (t *Table) Len() int { return len(t.data) }

// Truncate drops every entry declared after the first n.
func (t *Table) Truncate(n int) {
	if n < 0 || n >= len(t.data) {
		return
	}
	clear(t.data[n:])
	t.data = t.data[:n]
}

// Names returns the declared names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.data))
	for i := range t.data {
		out[i] = t.data[i].Name
	}
	return out
}

func toID(idx int) SymbolID {
	id, err := safecast.Conv[uint32](idx + 1)
	if err != nil {
		panic(fmt.Errorf("symbol id overflow: %w", err))
	}
	return SymbolID(id)
}
