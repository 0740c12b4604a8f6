//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/markkurossi/bignum/arith"
)

var evalTests = []struct {
	args     string
	expected string
}{
	{"add 1 2", "3"},
	{"sub 2 5", "-3"},
	{"mul 0xffffffff 0xffffffff", "18446744065119617025"},
	{"div 7 2", "3"},
	{"mod -7 2", "-1"},
	{"divmod 100 7", "14 2"},
	{"gcd 1071 462", "21"},
	{"inv 27 1033", "880"},
	{"pow 3 14 497", "338"},
	{"cmp -5 3", "-1"},
	{"cmp 3 3", "0"},
	{"and 12 10", "8"},
	{"or 12 10", "14"},
	{"xor 12 10", "6"},
	{"lsh 15 4", "240"},
	{"rsh 1180591620717411303424 70", "1"},
}

func testEval[W arith.Word](t *testing.T) {
	for _, test := range evalTests {
		op, operands, err := parseArgs[W](strings.Fields(test.args))
		if err != nil {
			t.Fatalf("%s: %v", test.args, err)
		}
		result, err := op.eval(operands)
		if err != nil {
			t.Fatalf("%s: %v", test.args, err)
		}
		var out []string
		for _, r := range result {
			out = append(out, r.Text(10))
		}
		if strings.Join(out, " ") != test.expected {
			t.Errorf("%s=%v, expected %s", test.args, out, test.expected)
		}
	}
}

func TestEval(t *testing.T) {
	testEval[uint8](t)
	testEval[uint16](t)
	testEval[uint32](t)
	testEval[uint64](t)
}

func TestEvalErrors(t *testing.T) {
	for _, args := range []string{
		"sqrt 4",
		"add 1",
		"add 1 x",
		"lsh 1 -1",
		"add - 5",
		"add 0x 5",
		"add --5 1",
	} {
		if _, _, err := parseArgs[uint32](strings.Fields(args)); err == nil {
			t.Errorf("%s: expected an error", args)
		}
	}

	op, operands, err := parseArgs[uint32]([]string{"inv", "6", "9"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := op.eval(operands); !errors.Is(err, errNoInverse) {
		t.Errorf("inv 6 9: err=%v", err)
	}
}

func TestParseInt(t *testing.T) {
	v, err := parseInt[uint16]("-0xff00")
	if err != nil {
		t.Fatal(err)
	}
	if v.Text(10) != "-65280" {
		t.Errorf("parseInt(-0xff00)=%v", v)
	}
}
