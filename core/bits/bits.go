/*
Package bits deals with strings of pixel bits and packs them into bytes.

A bit string is a sequence of '0' and '1' characters, one per pixel. Bit
strings are the intermediate representation between rendering and packing.
Two conventions for the meaning of a bit exist: font data uses 1 for ink,
whereas the display expects 1 for a light pixel. Polarity makes this explicit;
Convert is the only place where bits get flipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bits

import (
	"errors"
	"strings"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.core'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.core")
}

// String is a sequence of '0'/'1' characters.
type String string

// Polarity tells what a '1' bit stands for.
type Polarity int

const (
	// FontPolarity: '1' is ink (dark), '0' is paper.
	FontPolarity Polarity = iota
	// OutputPolarity: '1' is a light pixel, '0' a dark one.
	OutputPolarity
)

func (p Polarity) String() string {
	switch p {
	case FontPolarity:
		return "font"
	case OutputPolarity:
		return "output"
	}
	return "unknown"
}

// Bit values in output polarity.
const (
	White byte = '1'
	Black byte = '0'
)

// ErrInvalidBit is returned when a bit string contains something else than
// '0' or '1'.
var ErrInvalidBit = errors.New("invalid bit character")

var flip = strings.NewReplacer("0", "1", "1", "0")

// Convert translates s from one polarity into another. If from equals to,
// s is returned unchanged.
func Convert(s String, from, to Polarity) String {
	if from == to {
		return s
	}
	return String(flip.Replace(string(s)))
}

// Repeat returns a bit string of n bits of value bit.
func Repeat(bit byte, n int) String {
	if n <= 0 {
		return ""
	}
	return String(strings.Repeat(string(bit), n))
}

// Run is a segment of n equal bits.
type Run struct {
	Bit byte
	N   int
}

// Runs concatenates run segments into a bit string. Segments with a length ≤ 0
// are skipped.
func Runs(runs ...Run) String {
	var sb strings.Builder
	for _, r := range runs {
		if r.N > 0 {
			sb.WriteString(strings.Repeat(string(r.Bit), r.N))
		}
	}
	return String(sb.String())
}

// Pack packs a bit string into bytes, most significant bit first.
//
// The length of s must be a multiple of 8, otherwise an error of kind
// core.MisalignedBitLength is returned. Characters other than '0' and '1'
// make Pack fail with ErrInvalidBit.
func Pack(s String) ([]byte, error) {
	if len(s)%8 != 0 {
		tracer().Errorf("cannot pack %d bits", len(s))
		return nil, core.KindError(core.MisalignedBitLength, nil, core.EALIGN,
			"bit string length %d is not a multiple of 8", len(s))
	}
	buf := make([]byte, len(s)/8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			buf[i/8] |= 0x80 >> (i % 8)
		case '0':
		default:
			return nil, core.WrapError(ErrInvalidBit, core.EINVALID,
				"bit string has %q at position %d", s[i], i)
		}
	}
	return buf, nil
}

// MustPack is like Pack, but panics on error. Use it only where the bit string
// is known to be well-formed.
func MustPack(s String) []byte {
	buf, err := Pack(s)
	if err != nil {
		panic(err)
	}
	return buf
}

// Unpack expands bytes to a bit string, most significant bit first.
func Unpack(buf []byte) String {
	var sb strings.Builder
	sb.Grow(len(buf) * 8)
	for _, b := range buf {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if b&mask != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return String(sb.String())
}
