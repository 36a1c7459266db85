package main

// Dictionary entries are four consecutive cells on the dictionary stack:
// word symbol id, priority, routine, bound value.  Entries are only ever
// appended; lookup scans newest-first so redefinition shadows without
// deletion.
const dictEntryCells = 4

// define registers a word.  Priority 0 runs at compile time, 255 compiles
// unconditionally, anything else defers by priority.  A profile may override
// the priority per word.
func (en *Engine) define(word string, prio uint, r routine, v cell) {
	if p, ok := en.prios[word]; ok {
		prio = p
	}
	en.logf("define %q prio %v", word, prio)
	en.push(dictStack, indCell(en.intern(word)))
	en.push(dictStack, indCell(prio))
	en.push(dictStack, refCell(r))
	en.push(dictStack, v)
}

// findWord returns the dictionary offset of the newest entry for word, or
// false when the word has never been defined.
func (en *Engine) findWord(word string) (int, bool) {
	id := en.symbol(word)
	if id == 0 {
		return 0, false
	}
	for i := en.depth(dictStack) - dictEntryCells; i >= 0; i -= dictEntryCells {
		if c := en.at(dictStack, i); c.kind == cellInd && c.ind == id {
			return i, true
		}
	}
	return 0, false
}
