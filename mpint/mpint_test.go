//
// mpint_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/markkurossi/bignum/arith"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	oneData   = []byte{0x1}
	twoData   = []byte{0x2}
	threeData = []byte{0x3}
)

func TestMPInt(t *testing.T) {
	one := FromBytes[uint32](oneData)
	two := FromBytes[uint32](twoData)
	three := FromBytes[uint32](threeData)

	sum := one.Add(two)
	if sum.Cmp(three) != 0 {
		t.Errorf("%s + %s = %s, expected %s\n", one, two, sum, three)
	}
}

var arithTests = []struct {
	a int64
	b int64
}{
	{a: 0x0000ffff, b: 0x00000001},
	{a: 0x0000ffff, b: -1},
	{a: -0x0000ffff, b: 1},
	{a: -7, b: -9},
	{a: 0, b: -5},
	{a: 5, b: 0},
	{a: 0x7fffffff, b: 0x7fffffff},
	{a: -0x12345678, b: 0x1234},
	{a: 1, b: -1},
}

func testArith[W arith.Word](t *testing.T) {
	for _, test := range arithTests {
		a := FromInt64[W](test.a)
		b := FromInt64[W](test.b)

		r := a.Add(b)
		if r.Cmp(FromInt64[W](test.a+test.b)) != 0 {
			t.Errorf("W%d: %v+%v=%v, expected %v\n",
				arith.Bits[W](), test.a, test.b, r, test.a+test.b)
		}
		r = a.Sub(b)
		if r.Cmp(FromInt64[W](test.a-test.b)) != 0 {
			t.Errorf("W%d: %v-%v=%v, expected %v\n",
				arith.Bits[W](), test.a, test.b, r, test.a-test.b)
		}
		r = a.Mul(b)
		if r.Cmp(FromInt64[W](test.a*test.b)) != 0 {
			t.Errorf("W%d: %v*%v=%v, expected %v\n",
				arith.Bits[W](), test.a, test.b, r, test.a*test.b)
		}
		if r.String() != fmt.Sprintf("%d", test.a*test.b) {
			t.Errorf("W%d: String(%v)=%s", arith.Bits[W](), test.a*test.b, r)
		}
	}
}

func TestArith(t *testing.T) {
	testArith[uint8](t)
	testArith[uint16](t)
	testArith[uint32](t)
	testArith[uint64](t)
}

func TestAddCarry(t *testing.T) {
	a := New([]uint8{0xff, 0xff}, false)
	sum := a.Add(a)
	if w := sum.Words(); !bytes.Equal(w, []uint8{0x01, 0xff, 0xfe}) {
		t.Errorf("ffff+ffff=%x, expected 01fffe", w)
	}
	if d := sum.Sub(a); !d.Equal(a) {
		t.Errorf("(a+a)-a=%x, expected %x", d, a)
	}

	b := New([]uint64{^uint64(0), ^uint64(0)}, true)
	sum64 := b.Add(b)
	if len(sum64.Words()) != 3 || sum64.Sign() != -1 {
		t.Errorf("carry lost: %x", sum64)
	}
}

var divModTests = []struct {
	a int64
	b int64
	q int64
	r int64
}{
	{a: 0xffff, b: 0x06, q: 0x2aaa, r: 0x03},
	{a: 7, b: 2, q: 3, r: 1},
	{a: -7, b: 2, q: -3, r: -1},
	{a: 7, b: -2, q: -3, r: -1},
	{a: -7, b: -2, q: 3, r: 1},
	{a: 6, b: -3, q: -2, r: 0},
	{a: 1, b: -5, q: 0, r: 1},
	{a: -1, b: 5, q: 0, r: -1},
	{a: 0, b: 5, q: 0, r: 0},
}

func testDivMod[W arith.Word](t *testing.T) {
	for _, test := range divModTests {
		a := FromInt64[W](test.a)
		b := FromInt64[W](test.b)
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("W%d: %v/%v failed: %v", arith.Bits[W](), test.a, test.b,
				err)
		}
		if !q.Equal(FromInt64[W](test.q)) || !r.Equal(FromInt64[W](test.r)) {
			t.Errorf("W%d: %v/%v=%v rem %v, expected %v rem %v\n",
				arith.Bits[W](), test.a, test.b, q, r, test.q, test.r)
		}
	}
}

func TestDivMod(t *testing.T) {
	testDivMod[uint8](t)
	testDivMod[uint16](t)
	testDivMod[uint32](t)
	testDivMod[uint64](t)

	q, r, err := FromUint64[uint8](0xffff).DivMod(FromUint64[uint8](6))
	if err != nil {
		t.Fatal(err)
	}
	if q.Hex() != "2aaa" || r.Hex() != "3" {
		t.Errorf("0xffff/0x06=%x rem %x, expected 2aaa rem 3", q, r)
	}
}

func TestDivByZero(t *testing.T) {
	_, _, err := FromUint64[uint32](42).DivMod(Zero[uint32]())
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("DivMod by zero: err=%v, expected %v", err, ErrDivisionByZero)
	}
	_, err = FromUint64[uint32](42).Mod(New([]uint32{0, 0}, true))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Mod by negative zero: err=%v", err)
	}
}

func randomInt[W arith.Word](rnd *rand.Rand, maxBytes int) Int[W] {
	buf := make([]byte, 1+rnd.IntN(maxBytes))
	for i := range buf {
		buf[i] = byte(rnd.Uint32())
	}
	v := FromBytes[W](buf)
	if rnd.IntN(2) == 1 {
		v = v.Neg()
	}
	return v
}

func testProperties[W arith.Word](t *testing.T, rnd *rand.Rand) {
	bits := arith.Bits[W]()
	for i := 0; i < 200; i++ {
		a := randomInt[W](rnd, 40)
		b := randomInt[W](rnd, 24)
		if b.IsZero() {
			continue
		}
		if r := a.Add(b).Sub(b); !r.Equal(a) {
			t.Fatalf("W%d: (%x+%x)-%x=%x", bits, a, b, b, r)
		}
		p := a.Mul(b)
		q, r, err := p.DivMod(b)
		if err != nil {
			t.Fatal(err)
		}
		if !q.Equal(a) || !r.IsZero() {
			t.Fatalf("W%d: (%x*%x)/%x=%x rem %x", bits, a, b, b, q, r)
		}

		// Division identity for positive divisors.
		bp := b.Abs()
		q, r, err = a.DivMod(bp)
		if err != nil {
			t.Fatal(err)
		}
		if id := q.Mul(bp).Add(r); !id.Equal(a) {
			t.Fatalf("W%d: %x != (%x/%x)*%x+%x", bits, a, a, bp, bp, r)
		}
		if r.CmpAbs(bp) >= 0 {
			t.Fatalf("W%d: |%x| >= |%x|", bits, r, bp)
		}
		if !q.IsZero() && !r.IsZero() && q.Sign() != r.Sign() {
			t.Fatalf("W%d: quotient %x and remainder %x signs differ",
				bits, q, r)
		}

		if c := a.Cmp(a); c != 0 {
			t.Fatalf("W%d: Cmp(a, a)=%v", bits, c)
		}
		if a.Cmp(b) != -b.Cmp(a) {
			t.Fatalf("W%d: Cmp not antisymmetric for %x, %x", bits, a, b)
		}
	}
}

func TestProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 1))
	testProperties[uint8](t, rnd)
	testProperties[uint16](t, rnd)
	testProperties[uint32](t, rnd)
	testProperties[uint64](t, rnd)
}

func TestCmp(t *testing.T) {
	values := []int64{-300, -256, -1, 0, 1, 255, 256, 70000}
	for i, a := range values {
		for j, b := range values {
			x := FromInt64[uint8](a)
			y := FromInt64[uint8](b)
			var expected int
			if i < j {
				expected = -1
			} else if i > j {
				expected = 1
			}
			if r := x.Cmp(y); r != expected {
				t.Errorf("Cmp(%v,%v)=%v, expected %v", a, b, r, expected)
			}
		}
	}
}

func TestZeroSign(t *testing.T) {
	z := New([]uint16{0, 0}, true)
	if z.Sign() != 0 || !z.Equal(Zero[uint16]()) {
		t.Errorf("negative zero not normalized: sign=%v", z.Sign())
	}
	five := FromInt64[uint16](-5)
	d := five.Sub(five)
	if d.Sign() != 0 || d.String() != "0" {
		t.Errorf("-5-(-5)=%v, sign %v", d, d.Sign())
	}
	if s := Zero[uint16]().Neg().String(); s != "0" {
		t.Errorf("-0=%s", s)
	}
	var zv Int32
	if !zv.Add(One[uint32]()).Equal(One[uint32]()) {
		t.Errorf("zero value is not usable")
	}
}

func TestShift(t *testing.T) {
	x := FromUint64[uint8](0x81)
	if r := x.Lsh(1); r.Uint64() != 0x02 {
		t.Errorf("0x81<<1=%x, expected 2 (fixed width)", r)
	}
	if r := x.Rsh(1); r.Uint64() != 0x40 {
		t.Errorf("0x81>>1=%x, expected 40", r)
	}
	y := New([]uint16{0x0001, 0x8000}, true)
	if r := y.Lsh(1); r.Hex() != "-30000" {
		t.Errorf("%x<<1=%x, expected -30000", y, r)
	}
	if r := y.Lsh(32); !r.IsZero() || r.Sign() != 0 {
		t.Errorf("%x<<32=%x, expected 0", y, r)
	}
	if r := y.Rsh(15); r.Hex() != "-3" {
		t.Errorf("%x>>15=%x, expected -3", y, r)
	}
}

func TestBitwise(t *testing.T) {
	a := FromInt64[uint8](-12)
	b := FromInt64[uint8](10)
	if r := a.And(b); r.Sign() != 1 || r.Uint64() != 8 {
		t.Errorf("|-12|&10=%v, expected 8", r)
	}
	if r := a.Or(b); r.Uint64() != 14 {
		t.Errorf("|-12||10=%v, expected 14", r)
	}
	if r := a.Xor(b); r.Uint64() != 6 {
		t.Errorf("|-12|^10=%v, expected 6", r)
	}
	c := New([]uint8{0x01, 0x0f}, true)
	if r := c.Not(); r.Hex() != "-fef0" {
		t.Errorf("^%x=%x, expected -fef0", c, r)
	}
	if r := New([]uint8{0xff}, true).Not(); r.Sign() != 0 {
		t.Errorf("^-ff=%v, expected 0", r)
	}
}

func TestBits(t *testing.T) {
	x, err := ParseHex[uint16]("1 0000 0005")
	if err != nil {
		t.Fatal(err)
	}
	if l := x.BitLen(); l != 33 {
		t.Errorf("BitLen(%x)=%v, expected 33", x, l)
	}
	for i, expected := range []uint{1, 0, 1, 0} {
		if b := x.Bit(i); b != expected {
			t.Errorf("Bit(%d)=%v, expected %v", i, b, expected)
		}
	}
	if x.Bit(32) != 1 || x.Bit(33) != 0 || x.Bit(-1) != 0 {
		t.Errorf("Bit outside magnitude")
	}
	if Zero[uint64]().BitLen() != 0 {
		t.Errorf("BitLen(0) != 0")
	}
}

func TestImmutable(t *testing.T) {
	words := []uint32{1, 2, 3}
	x := New(words, false)
	words[0] = 99
	w := x.Words()
	w[1] = 99
	if x.Hex() != "10000000200000003" {
		t.Errorf("Int shares storage: %x", x)
	}
	small := FromUint64[uint32](7)
	_, r, err := small.DivMod(x)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(small) {
		t.Errorf("remainder %v, expected %v", r, small)
	}
	if &r.mag[0] == &small.mag[0] {
		t.Errorf("remainder aliases the dividend")
	}
}

func TestMsgpack(t *testing.T) {
	x, err := Parse[uint64]("-123456789012345678901234567890", 10)
	if err != nil {
		t.Fatal(err)
	}
	data, err := msgpack.Marshal(x)
	if err != nil {
		t.Fatal(err)
	}
	var y Int64
	if err := msgpack.Unmarshal(data, &y); err != nil {
		t.Fatal(err)
	}
	if !x.Equal(y) {
		t.Errorf("msgpack: got %v, expected %v", y, x)
	}

	// The encoding is independent of the word size.
	var z Int8
	if err := msgpack.Unmarshal(data, &z); err != nil {
		t.Fatal(err)
	}
	if z.String() != x.String() {
		t.Errorf("msgpack: Int8 %v, expected %v", z, x)
	}
}

var parseHexTests = []struct {
	in       string
	expected []byte
	err      bool
}{
	{in: "2763b4a317f", expected: []byte{0x02, 0x76, 0x3b, 0x4a, 0x31, 0x7f}},
	{in: "0000ff", expected: []byte{0xff}},
	{in: "00", expected: []byte{}},
	{in: "1 00\t00\n01", expected: []byte{0x01, 0x00, 0x00, 0x01}},
	{in: "DeadBeef", expected: []byte{0xde, 0xad, 0xbe, 0xef}},
	{in: "123aw", err: true},
	{in: "0x10", err: true},
	{in: "", err: true},
	{in: " \t", err: true},
}

func testParseHex[W arith.Word](t *testing.T) {
	for _, test := range parseHexTests {
		v, err := ParseHex[W](test.in)
		if test.err {
			if !errors.Is(err, ErrFormat) {
				t.Errorf("W%d: ParseHex(%q): err=%v, expected ErrFormat",
					arith.Bits[W](), test.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("W%d: ParseHex(%q): %v", arith.Bits[W](), test.in, err)
			continue
		}
		if !bytes.Equal(v.Bytes(), test.expected) {
			t.Errorf("W%d: ParseHex(%q).Bytes()=%x, expected %x",
				arith.Bits[W](), test.in, v.Bytes(), test.expected)
		}
	}
}

func TestParseHex(t *testing.T) {
	testParseHex[uint8](t)
	testParseHex[uint16](t)
	testParseHex[uint32](t)
	testParseHex[uint64](t)
}

func TestParseNoDigits(t *testing.T) {
	for _, in := range []string{"", "-", " - ", "--1", "-x"} {
		for _, base := range []int{10, 16} {
			if v, err := Parse[uint32](in, base); !errors.Is(err, ErrFormat) {
				t.Errorf("Parse(%q, %d)=%v, err=%v, expected ErrFormat",
					in, base, v, err)
			}
		}
	}
	v, err := Parse[uint32]("-0", 10)
	if err != nil || !v.IsZero() || v.Sign() != 0 {
		t.Errorf("Parse(-0)=%v, err=%v", v, err)
	}
}

func testBytesRoundTrip[W arith.Word](t *testing.T, rnd *rand.Rand) {
	nb := arith.Bytes[W]()
	for i := 0; i < 500; i++ {
		buf := make([]byte, rnd.IntN(40))
		for j := range buf {
			buf[j] = byte(rnd.Uint32())
		}
		// Leading zero octets.
		for j := 0; j < len(buf) && rnd.IntN(3) == 0; j++ {
			buf[j] = 0
		}
		stripped := buf
		for len(stripped) > 0 && stripped[0] == 0 {
			stripped = stripped[1:]
		}

		v := FromBytes[W](buf)
		if !bytes.Equal(v.Bytes(), stripped) {
			t.Fatalf("W%d: FromBytes(%x).Bytes()=%x", nb*8, buf, v.Bytes())
		}
		wb := v.WordBytes()
		if len(wb)%nb != 0 || len(wb) != len(v.Words())*nb {
			t.Fatalf("W%d: WordBytes length %d for %d words",
				nb*8, len(wb), len(v.Words()))
		}
		if !FromBytes[W](wb).Equal(v) {
			t.Fatalf("W%d: FromBytes(WordBytes(%x))=%x", nb*8, v,
				FromBytes[W](wb))
		}
		filled := v.FillBytes(make([]byte, len(buf)))
		if !bytes.Equal(filled, append(make([]byte, len(buf)-len(stripped)),
			stripped...)) {
			t.Fatalf("W%d: FillBytes(%x)=%x", nb*8, v, filled)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	testBytesRoundTrip[uint8](t, rnd)
	testBytesRoundTrip[uint16](t, rnd)
	testBytesRoundTrip[uint32](t, rnd)
	testBytesRoundTrip[uint64](t, rnd)
}
