// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	ksuid "github.com/complex-gh/ksuid_go"
)

// printer writes one KSUID in a given format
type printer func(w io.Writer, id ksuid.KSUID) error

// printers is keyed by the names in config.Formats
var printers = map[string]printer{
	"string":    printString,
	"inspect":   printInspect,
	"time":      printTime,
	"timestamp": printTimestamp,
	"payload":   printPayload,
	"raw":       printRaw,
}

func printString(w io.Writer, id ksuid.KSUID) error {
	_, err := fmt.Fprintln(w, id)
	return err
}

func printTime(w io.Writer, id ksuid.KSUID) error {
	_, err := fmt.Fprintln(w, id.Time().Format(time.RFC3339))
	return err
}

func printTimestamp(w io.Writer, id ksuid.KSUID) error {
	_, err := fmt.Fprintln(w, id.Timestamp())
	return err
}

func printPayload(w io.Writer, id ksuid.KSUID) error {
	_, err := fmt.Fprintln(w, id.Payload())
	return err
}

func printRaw(w io.Writer, id ksuid.KSUID) error {
	_, err := fmt.Fprintln(w, rawHex(id))
	return err
}

func rawHex(id ksuid.KSUID) string {
	return strings.ToUpper(hex.EncodeToString(id.Bytes()))
}

const inspectFormat = `
REPRESENTATION:

  String: %v
     Raw: %v

COMPONENTS:

       Time: %v
  Timestamp: %v
    Payload: %v

`

func printInspect(w io.Writer, id ksuid.KSUID) error {
	_, err := fmt.Fprintf(w, inspectFormat,
		id.String(),
		rawHex(id),
		id.Time(),
		id.Timestamp(),
		id.Payload(),
	)
	return err
}

// normalize folds compatibility characters (full-width digits and letters)
// to ASCII. Pure ASCII input is returned as is.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return norm.NFKC.String(s)
		}
	}
	return s
}
