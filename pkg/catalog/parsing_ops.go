package catalog

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/bprog-lang/bprog/pkg/value"
)

func execParseInteger(arg value.Parsed) value.Parsed {
	i, ok := new(big.Int).SetString(strings.TrimSpace(arg.Str), 10)
	if !ok {
		return value.Err(value.NewSimpleError(value.Overflow))
	}
	return value.Num(value.NewBigInteger(i))
}

func execParseFloat(arg value.Parsed) value.Parsed {
	f, err := strconv.ParseFloat(strings.TrimSpace(arg.Str), 64)
	if err != nil {
		return value.Err(value.NewSimpleError(value.Overflow))
	}
	return value.Num(value.NewFloat(f))
}

func execWords(arg value.Parsed) value.Parsed {
	fields := strings.Fields(arg.Str)
	out := make([]value.Parsed, len(fields))
	for i, w := range fields {
		out[i] = value.Str(w)
	}
	return value.List(out)
}
