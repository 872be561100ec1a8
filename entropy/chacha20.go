// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package entropy

import (
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

const (
	// rekeyAfter bounds the keystream drawn from one key. The 32-bit block
	// counter of a 96-bit nonce runs out at 256 GiB.
	rekeyAfter = 1 << 36
)

// chacha20Reader emits the ChaCha20 keystream. With a rekey function it
// derives a fresh key and nonce before the block counter can wrap; without
// one the stream is deterministic and ends with io.EOF at the limit.
type chacha20Reader struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
	used   uint64
	rekey  func() (*chacha20.Cipher, error)
}

// NewChaCha20 returns a deterministic reader over the ChaCha20 keystream for
// key with an all-zero nonce
func NewChaCha20(key [chacha20.KeySize]byte) io.Reader {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// only reachable with a wrong key or nonce size
		panic(err)
	}
	return &chacha20Reader{cipher: c}
}

func openChaCha20() (io.Reader, error) {
	r := &chacha20Reader{rekey: randomChaCha20}
	c, err := r.rekey()
	if err != nil {
		return nil, err
	}
	r.cipher = c
	return r, nil
}

// randomChaCha20 keys a cipher from crypto/rand
func randomChaCha20() (*chacha20.Cipher, error) {
	var material [chacha20.KeySize + chacha20.NonceSize]byte
	if err := seed(material[:]); err != nil {
		return nil, err
	}
	return chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
}

func (r *chacha20Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.used+uint64(len(p)) > rekeyAfter {
		if r.rekey == nil {
			return 0, io.EOF
		}
		c, err := r.rekey()
		if err != nil {
			return 0, err
		}
		r.cipher, r.used = c, 0
	}

	clear(p)
	r.cipher.XORKeyStream(p, p)
	r.used += uint64(len(p))
	return len(p), nil
}
