package main

// dump writes the engine's state through the trace logger: the dictionary
// newest-first, a disassembly of the code stack, and the data stack.
// Harmless without a logger.
func (en *Engine) dump() {
	if en.logfn == nil {
		return
	}
	defer en.withLogPrefix("# ")()

	en.logf("stacks: next free handle %d", en.stacksNext)
	for i := en.depth(dictStack) - dictEntryCells; i >= 0; i -= dictEntryCells {
		word := en.wordString(en.at(dictStack, i).ind)
		prio := en.at(dictStack, i+1).ind
		en.logf("dict @%d %q prio %d value %v", i, word, prio, en.at(dictStack, i+3))
	}
	en.dumpCode(codeStack)
	en.logf("data: %v", en.stackFor(dataStack).cells)
	en.logf("errors: %d", en.errCount)
}

// dumpCode disassembles one stack of threaded code.
func (en *Engine) dumpCode(h uint) {
	for i := 0; i+1 < en.depth(h); i += 2 {
		r := en.at(h, i)
		name := "<?>"
		if r.kind == cellRef {
			name = en.opName(r.ref)
		}
		en.logf("code %d@%d %q %v", h, i, name, en.at(h, i+1))
	}
}
