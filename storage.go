// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ksuid

import (
	"encoding/binary"
)

// bigEndian reports whether order stores the most significant byte first
func bigEndian(order binary.ByteOrder) bool {
	var probe [2]byte
	order.PutUint16(probe[:], 1)
	return probe[1] == 1
}

// storeParts writes the timestamp and payload fields into p, each in the
// given byte order. The timestamp field always comes first.
func storeParts(p []byte, order binary.ByteOrder, timestamp uint32, payload Payload) {
	order.PutUint32(p[:TimestampLength], timestamp)

	hi, lo := payload.Uint64s()
	field := p[TimestampLength:ByteLength]
	if bigEndian(order) {
		order.PutUint64(field[:8], hi)
		order.PutUint64(field[8:], lo)
	} else {
		order.PutUint64(field[:8], lo)
		order.PutUint64(field[8:], hi)
	}
}

// loadParts reads the fields written by storeParts
func loadParts(p []byte, order binary.ByteOrder) (uint32, Payload) {
	timestamp := order.Uint32(p[:TimestampLength])

	field := p[TimestampLength:ByteLength]
	var hi, lo uint64
	if bigEndian(order) {
		hi, lo = order.Uint64(field[:8]), order.Uint64(field[8:])
	} else {
		lo, hi = order.Uint64(field[:8]), order.Uint64(field[8:])
	}
	return timestamp, NewPayload(hi, lo)
}
