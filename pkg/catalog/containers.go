package catalog

import "github.com/bprog-lang/bprog/pkg/value"

func execHead(arg value.Parsed) value.Parsed {
	if len(arg.List) == 0 {
		return value.Err(value.NewSimpleError(value.HeadEmpty))
	}
	return arg.List[0]
}

func execTail(arg value.Parsed) value.Parsed {
	if len(arg.List) == 0 {
		return value.Err(value.NewSimpleError(value.TailEmpty))
	}
	rest := make([]value.Parsed, len(arg.List)-1)
	copy(rest, arg.List[1:])
	return value.List(rest)
}

func execEmpty(arg value.Parsed) value.Parsed {
	return value.Bool(len(arg.List) == 0)
}

// execCons prepends lhs onto the list rhs.
func execCons(lhs, rhs value.Parsed) value.Parsed {
	out := make([]value.Parsed, 0, len(rhs.List)+1)
	out = append(out, lhs)
	out = append(out, rhs.List...)
	return value.List(out)
}

func execAppend(lhs, rhs value.Parsed) value.Parsed {
	return lhs.Add(rhs)
}
