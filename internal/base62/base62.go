// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package base62 converts the 160-bit canonical KSUID value to and from its
// fixed-width base-62 text form.
package base62

import "errors"

const (
	// Alphabet is ordered by ascending code point, so comparing two encodings
	// byte by byte gives the same result as comparing the encoded integers.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base is the number of symbols in Alphabet
	Base = 62

	// RawSize is the size of the encoded integer in bytes
	RawSize = 20

	// EncodedSize is the smallest width that holds any 160-bit value:
	// ceil(160 * log(2) / log(62)) = 27
	EncodedSize = 27

	// Zero is the symbol for digit 0, used as left padding
	Zero = '0'

	// numLimbs is the number of 32-bit limbs in a 160-bit value
	numLimbs = RawSize / 4

	invalid = 0xFF
)

var (
	// ErrInvalidChar is returned when the input holds a byte outside Alphabet
	ErrInvalidChar = errors.New("base62: invalid character")

	// ErrOverflow is returned when the decoded value needs more than RawSize bytes
	ErrOverflow = errors.New("base62: value overflows 160 bits")
)

// decodeTable maps a byte to its digit value, or invalid
var decodeTable = func() (t [256]byte) {
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// limbs is a 160-bit unsigned integer, most significant limb first
type limbs [numLimbs]uint32

// load reads a big-endian byte array into limbs
func load(src *[RawSize]byte) (l limbs) {
	for i := range l {
		b := src[i*4 : i*4+4]
		l[i] = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	return l
}

// store writes limbs as a big-endian byte array
func (l *limbs) store(dst *[RawSize]byte) {
	for i, v := range l {
		dst[i*4] = byte(v >> 24)
		dst[i*4+1] = byte(v >> 16)
		dst[i*4+2] = byte(v >> 8)
		dst[i*4+3] = byte(v)
	}
}

// divmod divides l by Base in place and returns the remainder
func (l *limbs) divmod() byte {
	var rem uint64
	for i := range l {
		acc := rem<<32 | uint64(l[i])
		l[i] = uint32(acc / Base)
		rem = acc % Base
	}
	return byte(rem)
}

// muladd computes l = l*Base + digit and reports whether the result still
// fits in 160 bits
func (l *limbs) muladd(digit byte) bool {
	carry := uint64(digit)
	for i := numLimbs - 1; i >= 0; i-- {
		acc := uint64(l[i])*Base + carry
		l[i] = uint32(acc)
		carry = acc >> 32
	}
	return carry == 0
}

// Encode converts src to exactly EncodedSize symbols. Unused high digits come
// out as Zero, which is the left padding.
func Encode(src [RawSize]byte) (dst [EncodedSize]byte) {
	l := load(&src)
	for i := EncodedSize - 1; i >= 0; i-- {
		dst[i] = Alphabet[l.divmod()]
	}
	return dst
}

// Append appends the encoding of src to dst
func Append(dst []byte, src [RawSize]byte) []byte {
	enc := Encode(src)
	return append(dst, enc[:]...)
}

// Decode parses s as a base-62 integer. Leading Zero symbols carry no weight
// and are skipped, so any input length is accepted as long as the value fits
// in RawSize bytes. An invalid character is reported even if the value would
// also overflow.
func Decode(s string) (dst [RawSize]byte, err error) {
	i := 0
	for i < len(s) && s[i] == Zero {
		i++
	}

	var l limbs
	overflow := false
	for ; i < len(s); i++ {
		d := decodeTable[s[i]]
		if d == invalid {
			return dst, ErrInvalidChar
		}
		if !overflow && !l.muladd(d) {
			overflow = true
		}
	}
	if overflow {
		return dst, ErrOverflow
	}

	l.store(&dst)
	return dst, nil
}

// Valid reports whether every byte of s is in Alphabet
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if decodeTable[s[i]] == invalid {
			return false
		}
	}
	return true
}
