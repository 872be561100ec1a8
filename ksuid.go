// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package ksuid implements K-Sortable Unique Identifiers: 160-bit values made
// of a 32-bit timestamp (seconds since a custom epoch) and a 128-bit random
// payload, exchanged as a 27-character base-62 string that sorts the same way
// as the underlying integer.
package ksuid

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Constants
const (
	// ByteLength is the size of the canonical binary form
	ByteLength = 20

	// StringLength is the size of the text form
	StringLength = 27

	// TimestampLength is the size of the timestamp field
	TimestampLength = 4

	// PayloadLength is the size of the payload field
	PayloadLength = 16
)

// Status represents the result of a ksuid operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrInvalidEncoding indicates a character outside the base-62 alphabet
	StatusErrInvalidEncoding

	// StatusErrOverflow indicates a decoded value wider than 160 bits
	StatusErrOverflow

	// StatusErrClockBeforeEpoch indicates a time earlier than the KSUID epoch
	StatusErrClockBeforeEpoch

	// StatusErrLength indicates binary input that is not ByteLength long
	StatusErrLength

	// StatusErrEntropy indicates the payload source failed
	StatusErrEntropy
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrInvalidEncoding:
		return "invalid base62 encoding"
	case StatusErrOverflow:
		return "value overflows 160 bits"
	case StatusErrClockBeforeEpoch:
		return "time is before the ksuid epoch"
	case StatusErrLength:
		return "binary ksuid must be 20 bytes"
	case StatusErrEntropy:
		return "payload source failed"
	default:
		return "unknown error"
	}
}

// KSUID is the canonical form: a big-endian timestamp followed by a
// big-endian payload. Comparing two values byte-wise orders them by
// timestamp, then by payload.
type KSUID [ByteLength]byte

// Payload is the random part of a KSUID, big-endian
type Payload [PayloadLength]byte

var (
	// Nil is the zero KSUID
	Nil KSUID

	// Max is the largest representable KSUID
	Max = KSUID{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
)

// NewPayload builds a payload from the high and low halves of a 128-bit value
func NewPayload(hi, lo uint64) Payload {
	var p Payload
	binary.BigEndian.PutUint64(p[:8], hi)
	binary.BigEndian.PutUint64(p[8:], lo)
	return p
}

// Uint64s returns the high and low halves of the payload
func (p Payload) Uint64s() (hi, lo uint64) {
	return binary.BigEndian.Uint64(p[:8]), binary.BigEndian.Uint64(p[8:])
}

// Bytes returns a copy of the payload
func (p Payload) Bytes() []byte {
	b := make([]byte, PayloadLength)
	copy(b, p[:])
	return b
}

// String returns the payload as uppercase hex
func (p Payload) String() string {
	return strings.ToUpper(hex.EncodeToString(p[:]))
}

// FromParts builds a KSUID from a timestamp and a payload
func FromParts(timestamp uint32, payload Payload) KSUID {
	var id KSUID
	storeParts(id[:], binary.BigEndian, timestamp, payload)
	return id
}

// FromBytes builds a KSUID from its 20-byte canonical (network order) form
func FromBytes(b []byte) (KSUID, error) {
	var id KSUID
	if len(b) != ByteLength {
		return id, StatusErrLength
	}
	copy(id[:], b)
	return id, nil
}

// FromBytesOrder builds a KSUID from 20 bytes where the timestamp and the
// payload are each encoded in the given byte order. Pass binary.NativeEndian
// to read values written by BytesOrder on the same host.
func FromBytesOrder(b []byte, order binary.ByteOrder) (KSUID, error) {
	if len(b) != ByteLength {
		return Nil, StatusErrLength
	}
	timestamp, payload := loadParts(b, order)
	return FromParts(timestamp, payload), nil
}

// Bytes returns a copy of the canonical form
func (id KSUID) Bytes() []byte {
	b := make([]byte, ByteLength)
	copy(b, id[:])
	return b
}

// BytesOrder returns the 20-byte form with each field in the given byte order
func (id KSUID) BytesOrder(order binary.ByteOrder) []byte {
	b := make([]byte, ByteLength)
	storeParts(b, order, id.Timestamp(), id.Payload())
	return b
}

// Timestamp returns the seconds elapsed since the KSUID epoch
func (id KSUID) Timestamp() uint32 {
	return binary.BigEndian.Uint32(id[:TimestampLength])
}

// Payload returns the random part of the KSUID
func (id KSUID) Payload() Payload {
	var p Payload
	copy(p[:], id[TimestampLength:])
	return p
}

// Time returns the calendar time encoded in the timestamp
func (id KSUID) Time() time.Time {
	return ToTime(id.Timestamp())
}

// IsNil reports whether id is the zero KSUID
func (id KSUID) IsNil() bool {
	return id == Nil
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b
func Compare(a, b KSUID) int {
	return bytes.Compare(a[:], b[:])
}

// Compare compares id with other, see Compare
func (id KSUID) Compare(other KSUID) int {
	return Compare(id, other)
}

// Equal reports whether both KSUIDs hold the same bits
func (id KSUID) Equal(other KSUID) bool {
	return id == other
}

// Less reports whether id sorts before other
func (id KSUID) Less(other KSUID) bool {
	return Compare(id, other) < 0
}

// Sort sorts ids in ascending order
func Sort(ids []KSUID) {
	slices.SortFunc(ids, Compare)
}

// IsSorted reports whether ids is in ascending order
func IsSorted(ids []KSUID) bool {
	return slices.IsSortedFunc(ids, Compare)
}

// MarshalText implements encoding.TextMarshaler
func (id KSUID) MarshalText() ([]byte, error) {
	return id.Append(make([]byte, 0, StringLength)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *KSUID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler
func (id KSUID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (id *KSUID) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes(b)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. KSUIDs are stored as text so that the
// database sorts them correctly.
func (id KSUID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts NULL, the text form, or the raw
// 20-byte form.
func (id *KSUID) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == ByteLength {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("ksuid: cannot scan %T into KSUID", src)
	}
}
