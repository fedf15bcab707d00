package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// ErrTokenCorrupt is returned when a sealed token cannot be opened.
var ErrTokenCorrupt = errors.New("sealed token is corrupt")

// TokenBox encrypts GitHub access tokens before they are stored.
// Sealed values are base64(nonce || secretbox(token)).
type TokenBox struct {
	key [32]byte
}

// NewTokenBox derives the secretbox key from a configured passphrase.
func NewTokenBox(passphrase string) *TokenBox {
	return &TokenBox{key: sha256.Sum256([]byte(passphrase))}
}

// Seal encrypts a plaintext token.
func (b *TokenBox) Seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &b.key)
	return base64.RawStdEncoding.EncodeToString(out), nil
}

// Open decrypts a value produced by Seal.
func (b *TokenBox) Open(sealed string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrTokenCorrupt
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrTokenCorrupt
	}
	return string(plain), nil
}
