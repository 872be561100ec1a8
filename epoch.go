// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ksuid

import "time"

const (
	// EpochStamp is the KSUID epoch in Unix seconds: 2014-05-13 16:53:20 UTC
	EpochStamp int64 = 1400000000
)

// Epoch returns the instant KSUID timestamps are counted from
func Epoch() time.Time {
	return time.Unix(EpochStamp, 0).UTC()
}

// ToTime converts a KSUID timestamp to calendar time. The full uint32 range
// ends in 2150 and always fits in a time.Time.
func ToTime(timestamp uint32) time.Time {
	return time.Unix(EpochStamp+int64(timestamp), 0).UTC()
}

// TimestampAt converts t to whole seconds since the epoch, truncated to 32
// bits. Times before the epoch are rejected with StatusErrClockBeforeEpoch
// rather than wrapped around.
func TimestampAt(t time.Time) (uint32, error) {
	secs := t.Unix() - EpochStamp
	if secs < 0 {
		return 0, StatusErrClockBeforeEpoch
	}
	return uint32(secs), nil
}
