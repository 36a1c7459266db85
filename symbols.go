package main

// Word text lives outside the cell representation: words are interned into
// small symbol ids, and the dictionary stores the id in an index cell.
// Separate storage keeps cells fixed-size and lets lookup compare ids
// instead of strings.
type symbols struct {
	strings []string
	symbols map[string]uint
}

// wordString returns the text for a symbol id, or "" for an unknown id.
func (sym symbols) wordString(id uint) string {
	if i := int(id) - 1; i >= 0 && i < len(sym.strings) {
		return sym.strings[i]
	}
	return ""
}

// symbol returns the id for already-interned text, 0 otherwise.
func (sym symbols) symbol(s string) uint {
	return sym.symbols[s]
}

// intern returns the id for s, assigning the next free id on first sight.
// Id 0 is never assigned so it can mean "no such word".
func (sym *symbols) intern(s string) (id uint) {
	id, defined := sym.symbols[s]
	if !defined {
		if sym.symbols == nil {
			sym.symbols = make(map[string]uint)
		}
		id = uint(len(sym.strings)) + 1
		sym.strings = append(sym.strings, s)
		sym.symbols[s] = id
	}
	return id
}
