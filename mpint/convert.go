//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/markkurossi/bignum/arith"
)

// hexDigits maps ASCII characters to their hexadecimal digit values.
// Non-digit characters map to 0xff.
var hexDigits = func() [256]byte {
	var tab [256]byte
	for i := range tab {
		tab[i] = 0xff
	}
	for c := '0'; c <= '9'; c++ {
		tab[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		tab[c] = byte(c - 'a' + 10)
		tab[c-'a'+'A'] = byte(c - 'a' + 10)
	}
	return tab
}()

// FromBytes creates a non-negative Int from the big-endian byte
// slice. The leading zero bytes are skipped and an empty or all-zero
// slice decodes to zero.
func FromBytes[W arith.Word](data []byte) Int[W] {
	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
	}
	if len(data) == 0 {
		return Int[W]{}
	}
	nb := arith.Bytes[W]()
	mag := make([]W, (len(data)+nb-1)/nb)

	for i := 0; i < len(data); i++ {
		pos := len(data) - 1 - i
		idx := len(mag) - 1 - i/nb
		mag[idx] |= W(data[pos]) << ((i % nb) * 8)
	}
	return newInt(false, mag)
}

// WordBytes returns the magnitude of x as big-endian bytes. Each
// magnitude word is emitted in full, most significant word first, so
// the result may start with zero bytes.
func (x Int[W]) WordBytes() []byte {
	nb := arith.Bytes[W]()
	mag := x.abs()
	result := make([]byte, len(mag)*nb)
	for i, w := range mag {
		for j := nb - 1; j >= 0; j-- {
			result[i*nb+j] = byte(w)
			w >>= 8
		}
	}
	return result
}

// Bytes returns the magnitude of x as a minimal big-endian byte
// slice. The leading zero bytes are dropped so zero encodes as an
// empty slice.
func (x Int[W]) Bytes() []byte {
	data := x.WordBytes()
	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
	}
	return data
}

// FillBytes sets buf to the magnitude of x as a zero-extended
// big-endian byte slice, and returns buf. If the magnitude does not
// fit in buf, FillBytes panics.
func (x Int[W]) FillBytes(buf []byte) []byte {
	data := x.Bytes()
	if len(data) > len(buf) {
		panic(fmt.Sprintf("mpint: value needs %d bytes, buffer has %d",
			len(data), len(buf)))
	}
	clear(buf)
	copy(buf[len(buf)-len(data):], data)
	return buf
}

// ParseHex parses the hexadecimal string s. The whitespace characters
// are skipped everywhere in the input and the leading zeros are
// ignored. Any other non-hexadecimal character, or an input without
// digits, fails the parsing with an error wrapping ErrFormat.
func ParseHex[W arith.Word](s string) (Int[W], error) {
	var nibbles []byte
	var digits bool
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r >= 0x80 || hexDigits[r] == 0xff {
			return Int[W]{}, fmt.Errorf("%w: invalid hex character %q at %d",
				ErrFormat, r, i)
		}
		digits = true
		d := hexDigits[r]
		if d == 0 && len(nibbles) == 0 {
			continue
		}
		nibbles = append(nibbles, d)
	}
	if !digits {
		return Int[W]{}, fmt.Errorf("%w: no hex digits", ErrFormat)
	}
	if len(nibbles) == 0 {
		return Int[W]{}, nil
	}

	perWord := arith.Bits[W]() / 4
	mag := make([]W, (len(nibbles)+perWord-1)/perWord)
	for i := 0; i < len(nibbles); i++ {
		d := nibbles[len(nibbles)-1-i]
		idx := len(mag) - 1 - i/perWord
		mag[idx] |= W(d) << ((i % perWord) * 4)
	}
	return newInt(false, mag), nil
}

// parseDecimal parses the unsigned decimal string s. The whitespace
// characters are skipped.
func parseDecimal[W arith.Word](s string) (Int[W], error) {
	ten := FromUint64[W](10)
	var z Int[W]
	var digits bool
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r < '0' || r > '9' {
			return Int[W]{}, fmt.Errorf("%w: invalid decimal character %q at %d",
				ErrFormat, r, i)
		}
		digits = true
		z = z.Mul(ten).Add(FromUint64[W](uint64(r - '0')))
	}
	if !digits {
		return Int[W]{}, fmt.Errorf("%w: no decimal digits", ErrFormat)
	}
	return z, nil
}

// Parse parses the string s in the base 10 or 16. The string may
// start with a minus sign which must be followed by digits.
func Parse[W arith.Word](s string, base int) (Int[W], error) {
	s = strings.TrimSpace(s)
	var neg bool
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var z Int[W]
	var err error

	switch base {
	case 10:
		z, err = parseDecimal[W](s)
	case 16:
		z, err = ParseHex[W](s)
	default:
		return Int[W]{}, fmt.Errorf("mpint: unsupported base %d", base)
	}
	if err != nil {
		return Int[W]{}, err
	}
	if neg {
		z = z.Neg()
	}
	return z, nil
}

// Hex returns the hexadecimal representation of x. The magnitude
// words are formatted one by one, most significant word first.
func (x Int[W]) Hex() string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if x.Sign() < 0 {
		sb.WriteRune('-')
	}
	width := arith.Bits[W]() / 4
	for i, w := range x.abs() {
		digits := strconv.FormatUint(uint64(w), 16)
		if i > 0 {
			for j := len(digits); j < width; j++ {
				sb.WriteRune('0')
			}
		}
		sb.WriteString(digits)
	}
	return sb.String()
}

// String returns the decimal representation of x. The digits are
// extracted by dividing the byte representation of the magnitude by
// ten, one digit per pass.
func (x Int[W]) String() string {
	if x.IsZero() {
		return "0"
	}
	data := x.WordBytes()

	var digits []byte
	for !isZeroBytes(data) {
		var rem int
		for i, b := range data {
			cur := rem<<8 | int(b)
			data[i] = byte(cur / 10)
			rem = cur % 10
		}
		digits = append(digits, byte('0'+rem))
	}
	if x.neg {
		digits = append(digits, '-')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func isZeroBytes(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// Text returns the representation of x in the base 10 or 16. Text
// panics for other bases.
func (x Int[W]) Text(base int) string {
	switch base {
	case 10:
		return x.String()
	case 16:
		return x.Hex()
	default:
		panic(fmt.Sprintf("mpint: unsupported base %d", base))
	}
}

// Format implements fmt.Formatter. It supports the verbs 'd', 's',
// and 'v' for decimal, and 'x' and 'X' for hexadecimal output.
func (x Int[W]) Format(s fmt.State, ch rune) {
	var str string
	switch ch {
	case 'd', 's', 'v':
		str = x.String()
	case 'x':
		str = x.Hex()
	case 'X':
		str = strings.ToUpper(x.Hex())
	default:
		fmt.Fprintf(s, "%%!%c(mpint.Int=%s)", ch, x.String())
		return
	}
	if w, ok := s.Width(); ok && len(str) < w {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	fmt.Fprint(s, str)
}
