// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package entropy

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSources(t *testing.T) {
	require.Equal(t, len(Names()), GetNumSources())

	for i := 0; i < GetNumSources(); i++ {
		src := GetSource(i)
		require.NotNil(t, src, "source at index %d", i)

		t.Run(src.Name(), func(t *testing.T) {
			assert.NotEmpty(t, src.Description())

			r, err := New(src.Name())
			require.NoError(t, err)

			a := make([]byte, 16)
			b := make([]byte, 16)
			_, err = io.ReadFull(r, a)
			require.NoError(t, err)
			_, err = io.ReadFull(r, b)
			require.NoError(t, err)

			assert.NotEqual(t, make([]byte, 16), a)
			assert.NotEqual(t, a, b)
		})
	}

	assert.Nil(t, GetSource(-1))
	assert.Nil(t, GetSource(GetNumSources()))
}

func TestLookup(t *testing.T) {
	src, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Default, src.Name())

	_, err = Lookup("isaac")
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = New("hc128")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestDeterministicSources(t *testing.T) {
	key := [32]byte{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		open func() io.Reader
	}{
		{"chacha20", func() io.Reader { return NewChaCha20(key) }},
		{"chacha8", func() io.Reader { return NewChaCha8(key) }},
		{"pcg", func() io.Reader { return NewPCG(7, 11) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := make([]byte, 45)
			b := make([]byte, 45)
			_, err := io.ReadFull(tt.open(), a)
			require.NoError(t, err)
			_, err = io.ReadFull(tt.open(), b)
			require.NoError(t, err)
			assert.Equal(t, a, b)
			assert.NotEqual(t, make([]byte, 45), a)
		})
	}
}

func TestChaCha20Continues(t *testing.T) {
	r := NewChaCha20([32]byte{9})
	whole := make([]byte, 64)
	_, err := io.ReadFull(r, whole)
	require.NoError(t, err)

	r = NewChaCha20([32]byte{9})
	var parts []byte
	for i := 0; i < 4; i++ {
		p := make([]byte, 16)
		_, err := io.ReadFull(r, p)
		require.NoError(t, err)
		parts = append(parts, p...)
	}
	assert.Equal(t, whole, parts)
}

func TestChaCha20Rekey(t *testing.T) {
	r, err := New("chacha20")
	require.NoError(t, err)
	cr := r.(*chacha20Reader)
	cr.used = rekeyAfter - 8

	before := cr.cipher
	p := make([]byte, 16)
	_, err = cr.Read(p)
	require.NoError(t, err)
	assert.NotSame(t, before, cr.cipher)
	assert.Equal(t, uint64(16), cr.used)

	det := NewChaCha20([32]byte{}).(*chacha20Reader)
	det.used = rekeyAfter
	_, err = det.Read(p)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConcurrentReads(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			r, err := New(name)
			require.NoError(t, err)

			const workers, reads = 8, 200
			var mu sync.Mutex
			seen := make(map[string]bool, workers*reads)

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < reads; i++ {
						p := make([]byte, 16)
						if _, err := io.ReadFull(r, p); err != nil {
							t.Error(err)
							return
						}
						mu.Lock()
						seen[string(p)] = true
						mu.Unlock()
					}
				}()
			}
			wg.Wait()
			assert.Len(t, seen, workers*reads)
		})
	}
}

func TestPCGPartialRead(t *testing.T) {
	a := make([]byte, 13)
	_, err := io.ReadFull(NewPCG(1, 1), a)
	require.NoError(t, err)

	b := make([]byte, 16)
	_, err = io.ReadFull(NewPCG(1, 1), b)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, a))
}
