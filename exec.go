package main

// runStack executes threaded code: a stack of alternating (routine,
// argument) cell pairs walked by an instruction pointer.  Every pass keeps
// its own pointer, saving and restoring the engine's, so an invoked routine
// may itself run another stack (quotations and interpret-now groups do).
// The engine's pointer is -1 whenever no pass is active.
func (en *Engine) runStack(h uint) {
	if en.logfn != nil {
		defer en.withLogPrefix("	")()
	}

	saved := en.ip
	defer func() { en.ip = saved }()

	en.ip = 0
	for en.ip < en.depth(h) {
		if en.ctx != nil {
			en.haltif(en.ctx.Err())
		}
		if en.ip+1 >= en.depth(h) {
			en.ip += 2 // report names the half-pair itself
			en.fatalf("truncated code")
		}
		at := en.ip
		r := en.asRef(en.at(h, at))
		arg := en.at(h, at+1)
		en.ip += 2
		if en.logfn != nil {
			en.logf("exec @%d %s %v -- d:%v", at, en.opName(r), arg, en.stackFor(dataStack).cells)
		}
		r(en, arg)
	}
}

// execute runs the engine's main code stack from the top.
func (en *Engine) execute() {
	en.runStack(codeStack)
}
