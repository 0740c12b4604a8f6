//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/markkurossi/bignum/arith"
	"github.com/markkurossi/bignum/mpint"
	"github.com/markkurossi/bignum/numtheory"
)

// Operand kinds.
const (
	argInt = iota
	argShift
)

type operation struct {
	name  string
	usage string
	args  []int
}

var ops = []operation{
	{"add", "a + b", []int{argInt, argInt}},
	{"sub", "a - b", []int{argInt, argInt}},
	{"mul", "a * b", []int{argInt, argInt}},
	{"div", "a / b", []int{argInt, argInt}},
	{"mod", "a % b", []int{argInt, argInt}},
	{"divmod", "a / b, a % b", []int{argInt, argInt}},
	{"gcd", "gcd(a, b)", []int{argInt, argInt}},
	{"inv", "a^-1 mod b", []int{argInt, argInt}},
	{"pow", "a^b mod m", []int{argInt, argInt, argInt}},
	{"cmp", "compare a and b: -1, 0, 1", []int{argInt, argInt}},
	{"and", "|a| & |b|", []int{argInt, argInt}},
	{"or", "|a| | |b|", []int{argInt, argInt}},
	{"xor", "|a| ^ |b|", []int{argInt, argInt}},
	{"not", "^a", []int{argInt}},
	{"lsh", "a << n within the width of a", []int{argInt, argShift}},
	{"rsh", "a >> n", []int{argInt, argShift}},
}

// errNoInverse is returned if the modular inverse does not exist.
var errNoInverse = errors.New("no modular inverse")

func lookup(name string) (*operation, error) {
	for idx := range ops {
		if ops[idx].name == name {
			return &ops[idx], nil
		}
	}
	return nil, fmt.Errorf("unknown operation '%s'", name)
}

// parseInt parses a decimal or a 0x prefixed hexadecimal integer.
func parseInt[W arith.Word](s string) (mpint.Int[W], error) {
	sign, body := "", s
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	}
	base := 10
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		base = 16
		body = body[2:]
	}
	return mpint.Parse[W](sign+body, base)
}

type boundOp[W arith.Word] struct {
	*operation
	shift uint
}

func parseArgs[W arith.Word](args []string) (*boundOp[W], []mpint.Int[W],
	error) {

	op, err := lookup(args[0])
	if err != nil {
		return nil, nil, err
	}
	args = args[1:]
	if len(args) != len(op.args) {
		return nil, nil, fmt.Errorf("%s: expected %d arguments, got %d",
			op.name, len(op.args), len(args))
	}
	bound := &boundOp[W]{
		operation: op,
	}
	var operands []mpint.Int[W]
	for idx, kind := range op.args {
		switch kind {
		case argInt:
			v, err := parseInt[W](args[idx])
			if err != nil {
				return nil, nil, fmt.Errorf("%s: argument %d: %w",
					op.name, idx+1, err)
			}
			operands = append(operands, v)

		case argShift:
			n, err := strconv.ParseUint(args[idx], 10, 0)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: shift count: %w", op.name, err)
			}
			bound.shift = uint(n)
		}
	}
	return bound, operands, nil
}

func (op *boundOp[W]) eval(v []mpint.Int[W]) ([]mpint.Int[W], error) {
	one := func(r mpint.Int[W], err error) ([]mpint.Int[W], error) {
		if err != nil {
			return nil, err
		}
		return []mpint.Int[W]{r}, nil
	}

	switch op.name {
	case "add":
		return one(v[0].Add(v[1]), nil)
	case "sub":
		return one(v[0].Sub(v[1]), nil)
	case "mul":
		return one(v[0].Mul(v[1]), nil)
	case "div":
		return one(v[0].Div(v[1]))
	case "mod":
		return one(v[0].Mod(v[1]))
	case "divmod":
		q, r, err := v[0].DivMod(v[1])
		if err != nil {
			return nil, err
		}
		return []mpint.Int[W]{q, r}, nil
	case "gcd":
		return one(numtheory.GCD(v[0], v[1]), nil)
	case "inv":
		r, ok := numtheory.ModInverse(v[0], v[1])
		if !ok {
			return nil, errNoInverse
		}
		return one(r, nil)
	case "pow":
		return one(numtheory.PowMod(v[0], v[1], v[2]))
	case "cmp":
		return one(mpint.FromInt64[W](int64(v[0].Cmp(v[1]))), nil)
	case "and":
		return one(v[0].And(v[1]), nil)
	case "or":
		return one(v[0].Or(v[1]), nil)
	case "xor":
		return one(v[0].Xor(v[1]), nil)
	case "not":
		return one(v[0].Not(), nil)
	case "lsh":
		return one(v[0].Lsh(op.shift), nil)
	case "rsh":
		return one(v[0].Rsh(op.shift), nil)
	default:
		return nil, fmt.Errorf("operation '%s' not implemented", op.name)
	}
}
