// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ksuid

import (
	"github.com/complex-gh/ksuid_go/internal/base62"
)

// String returns the 27-character base-62 form, left padded with '0'
func (id KSUID) String() string {
	enc := base62.Encode(id)
	return string(enc[:])
}

// Append appends the text form of id to dst
func (id KSUID) Append(dst []byte) []byte {
	return base62.Append(dst, id)
}

// Parse decodes the base-62 text form. Leading '0' characters are padding and
// may be omitted. It fails with StatusErrInvalidEncoding if s holds a
// character outside 0-9A-Za-z, and with StatusErrOverflow if the value does
// not fit in 160 bits.
func Parse(s string) (KSUID, error) {
	raw, err := base62.Decode(s)
	switch err {
	case nil:
		return KSUID(raw), nil
	case base62.ErrInvalidChar:
		return Nil, StatusErrInvalidEncoding
	case base62.ErrOverflow:
		return Nil, StatusErrOverflow
	default:
		return Nil, err
	}
}

// MustParse is like Parse but panics on error
func MustParse(s string) KSUID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
