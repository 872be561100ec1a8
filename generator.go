// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ksuid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Generator creates KSUIDs from a clock and a payload source. It holds no
// mutable state and is safe for concurrent use as long as its source is.
type Generator struct {
	source io.Reader
	now    func() time.Time
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithSource sets the reader payloads are drawn from. See package entropy
// for the available backends.
func WithSource(source io.Reader) GeneratorOption {
	return func(g *Generator) {
		g.source = source
	}
}

// WithClock sets the function used for the current time
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator. By default it reads crypto/rand and the
// system clock.
func NewGenerator(options ...GeneratorOption) *Generator {
	g := &Generator{
		source: rand.Reader,
		now:    time.Now,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Timestamp returns the current time as a KSUID timestamp
func (g *Generator) Timestamp() (uint32, error) {
	return TimestampAt(g.now())
}

// Payload draws a fresh payload from the source
func (g *Generator) Payload() (Payload, error) {
	var p Payload
	if _, err := io.ReadFull(g.source, p[:]); err != nil {
		return p, fmt.Errorf("%w: %w", StatusErrEntropy, err)
	}
	return p, nil
}

// New creates a KSUID for the current time with a fresh payload
func (g *Generator) New() (KSUID, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime creates a KSUID for t with a fresh payload
func (g *Generator) NewWithTime(t time.Time) (KSUID, error) {
	timestamp, err := TimestampAt(t)
	if err != nil {
		return Nil, err
	}
	return g.NewWithTimestamp(timestamp)
}

// NewWithTimestamp creates a KSUID with the given timestamp and a fresh payload
func (g *Generator) NewWithTimestamp(timestamp uint32) (KSUID, error) {
	payload, err := g.Payload()
	if err != nil {
		return Nil, err
	}
	return FromParts(timestamp, payload), nil
}

// NewWithPayload creates a KSUID for the current time with the given payload
func (g *Generator) NewWithPayload(payload Payload) (KSUID, error) {
	timestamp, err := g.Timestamp()
	if err != nil {
		return Nil, err
	}
	return FromParts(timestamp, payload), nil
}

var defaultGenerator = NewGenerator()

// New creates a KSUID with the default generator
func New() (KSUID, error) {
	return defaultGenerator.New()
}

// NewWithTime creates a KSUID for t with the default generator
func NewWithTime(t time.Time) (KSUID, error) {
	return defaultGenerator.NewWithTime(t)
}

// NewWithTimestamp creates a KSUID with the given timestamp and a payload
// from the default generator
func NewWithTimestamp(timestamp uint32) (KSUID, error) {
	return defaultGenerator.NewWithTimestamp(timestamp)
}

// NewWithPayload creates a KSUID for the current time with the given payload
func NewWithPayload(payload Payload) (KSUID, error) {
	return defaultGenerator.NewWithPayload(payload)
}

// Must returns id, or panics if err is not nil.
//
//	id := ksuid.Must(ksuid.New())
func Must(id KSUID, err error) KSUID {
	if err != nil {
		panic(err)
	}
	return id
}
