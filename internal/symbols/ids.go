package symbols

// SymbolID is the 1-based position of an entry in declaration order.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol.
const NoSymbolID SymbolID = 0

// IsValid reports whether the ID refers to an entry.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }
