// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package entropy provides interchangeable payload sources for KSUID
// generation. Every source is an io.Reader that is safe for concurrent use.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"sync"
)

const (
	// Default is the name of the source used when none is given
	Default = "crypto"
)

// ErrUnknownSource is returned when no source has the requested name
var ErrUnknownSource = errors.New("entropy: unknown source")

// Source describes a payload source backend
type Source struct {
	name        string
	description string
	open        func() (io.Reader, error)
}

var (
	// sources contains all supported backends
	sources = []*Source{
		{
			name:        "crypto",
			description: "operating system CSPRNG (crypto/rand)",
			open:        func() (io.Reader, error) { return rand.Reader, nil },
		},
		{
			name:        "chacha20",
			description: "ChaCha20 keystream keyed from crypto/rand",
			open:        openChaCha20,
		},
		{
			name:        "chacha8",
			description: "math/rand/v2 ChaCha8 seeded from crypto/rand",
			open:        openChaCha8,
		},
		{
			name:        "pcg",
			description: "math/rand/v2 PCG seeded from crypto/rand, not cryptographically secure",
			open:        openPCG,
		},
	}
)

// GetNumSources returns the number of supported sources
func GetNumSources() int {
	return len(sources)
}

// GetSource returns a source by its index
func GetSource(i int) *Source {
	if i < 0 || i >= len(sources) {
		return nil
	}
	return sources[i]
}

// Names returns the names of all sources in registration order
func Names() []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.name
	}
	return names
}

// Lookup finds a source by name. The empty name selects Default.
func Lookup(name string) (*Source, error) {
	if name == "" {
		name = Default
	}
	for _, s := range sources {
		if s.name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// New opens the source with the given name
func New(name string) (io.Reader, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.Open()
}

// Name returns the tag the source is selected by
func (s *Source) Name() string {
	return s.name
}

// Description returns a short human readable description
func (s *Source) Description() string {
	return s.description
}

// Open returns a new reader for the source
func (s *Source) Open() (io.Reader, error) {
	return s.open()
}

// seed fills b from crypto/rand
func seed(b []byte) error {
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return fmt.Errorf("entropy: seeding: %w", err)
	}
	return nil
}

// lockedReader serializes access to a reader that is not safe for
// concurrent use
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// NewChaCha8 returns a deterministic reader over math/rand/v2 ChaCha8
func NewChaCha8(key [32]byte) io.Reader {
	return &lockedReader{r: mrand.NewChaCha8(key)}
}

func openChaCha8() (io.Reader, error) {
	var key [32]byte
	if err := seed(key[:]); err != nil {
		return nil, err
	}
	return NewChaCha8(key), nil
}

// pcgReader adapts the 64-bit output of PCG to io.Reader
type pcgReader struct {
	pcg *mrand.PCG
}

func (r *pcgReader) Read(p []byte) (int, error) {
	n := len(p)
	var buf [8]byte
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.pcg.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		binary.LittleEndian.PutUint64(buf[:], r.pcg.Uint64())
		copy(p, buf[:])
	}
	return n, nil
}

// NewPCG returns a deterministic reader over math/rand/v2 PCG
func NewPCG(seed1, seed2 uint64) io.Reader {
	return &lockedReader{r: &pcgReader{pcg: mrand.NewPCG(seed1, seed2)}}
}

func openPCG() (io.Reader, error) {
	var b [16]byte
	if err := seed(b[:]); err != nil {
		return nil, err
	}
	return NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])), nil
}
