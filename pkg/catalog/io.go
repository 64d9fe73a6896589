package catalog

import "github.com/bprog-lang/bprog/pkg/value"

// execPrint writes arg's Display form to standard output and produces
// Void — it must never push, per spec §3's invariant that a Void
// return means no stack effect.
func execPrint(arg value.Parsed, env Env) value.Parsed {
	env.Print(arg.String())
	return value.Void()
}

// execRead reads a single line from standard input.
func execRead(env Env) value.Parsed {
	line, ok := env.ReadLine()
	if !ok {
		return value.Err(value.NewSimpleError(value.Undefined))
	}
	return value.Str(line)
}
