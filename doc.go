/* Package main: weft -- a minimal extensible-language engine

Weft is a lexer, a priority-driven compiler, and a threaded-code executor
sharing one tagged-cell value representation and a table of growable stacks.
Everything the engine knows lives in stacks of cells: the dictionary of words
is a stack, compiled code is a stack, program data is a stack.

A word carries a priority that decides its fate at compile time.  Priority 0
words run immediately -- they are the compiler's escape hatch, and comments,
quotations and interpret-now groups are built from them.  Priority 255 words
are emitted onto the code stack as-is; numeric literals compile this way,
bound to a routine that pushes their value.  Any other priority defers the
word onto a pending stack, first flushing pending words of higher or equal
priority onto the code stack.  The effect is operator-precedence
linearization with an explicit operator stack instead of recursion: by the
time a flush-all ends the compile, "1 + 2 * 3" has become the threaded code
for 1 2 3 * +.

Compiled code is a flat sequence of alternating (routine, argument) cell
pairs.  The executor walks it with an instruction pointer, invoking each
routine with its argument; each execution pass keeps its own pointer, so a
routine may itself execute another stack (quotations work this way).

The engine dispatches; it does not prescribe.  New words are registered with
a priority, a routine and a bound value, and later definitions shadow
earlier ones.  See builtin.go for the default catalog.
*/
package main
