package main

import (
	"fmt"
)

// defaultErrorLimit is the recoverable-error budget: reaching it escalates
// to a fatal summary so a broken source cannot scroll diagnostics forever.
const defaultErrorLimit = 100

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}

// report writes one diagnostic line with the best location context on hand:
// the source line while scanning, the code offset of the instruction being
// executed during a pass, else a bare message.
func (en *Engine) report(msg string) {
	if en.diag == nil {
		return
	}
	switch {
	case en.scanning:
		fmt.Fprintf(en.diag, "%v: %v.\n", en.in.Loc(), msg)
	case en.ip >= 0:
		fmt.Fprintf(en.diag, "<code>:%d: %v.\n", en.ip-2, msg)
	default:
		fmt.Fprintf(en.diag, "weft: %v.\n", msg)
	}
	en.diag.Flush()
}

// errorf reports a recoverable compile-time error and counts it; exhausting
// the budget escalates to fatal with a summary.
func (en *Engine) errorf(format string, args ...interface{}) {
	en.report(fmt.Sprintf(format, args...))
	en.errCount++
	if en.errCount >= en.errLimit {
		en.fatalf("that makes %d errors: giving up", en.errCount)
	}
}

// fatal reports err with location context and halts the engine.
func (en *Engine) fatal(err error) {
	en.report(err.Error())
	en.halt(err)
}

func (en *Engine) fatalf(format string, args ...interface{}) {
	en.fatal(fmt.Errorf(format, args...))
}

// halt unwinds the engine via panic; Run recovers it at the API boundary.
// Output is flushed first so anything the program printed survives the
// crash, and flushing or logging failures cannot mask the halt itself.
func (en *Engine) halt(err error) {
	func() {
		defer func() { recover() }()
		if en.out != nil {
			en.out.Flush()
		}
	}()

	func() {
		defer func() { recover() }()
		en.logf("halt: %v", err)
	}()

	panic(haltError{err})
}

func (en *Engine) haltif(err error) {
	if err != nil {
		en.halt(err)
	}
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }
