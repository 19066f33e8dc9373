// Package statetoken encodes render-state snapshots (htmlkit.Vars) into
// compact tokens safe to embed in data-attributes or URLs, and restores
// them on the next request.
//
// Two modes are supported:
//   - Signed (default): msgpack + base64 with an HMAC-SHA256 signature -
//     visible to clients but tamper-proof. Debuggable.
//   - Encrypted: AES-256-GCM - fully opaque. Use when the state carries
//     anything a client should not read.
package statetoken

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/openbridge/htmlkit"
)

// Sentinel errors for token decoding.
var (
	ErrInvalidFormat    = errors.New("statetoken: invalid token format")
	ErrSignatureInvalid = errors.New("statetoken: signature verification failed")
	ErrDecryptFailed    = errors.New("statetoken: decryption failed")
)

// Codec signs and encrypts state tokens with a fixed key.
type Codec struct {
	key []byte
	gcm cipher.AEAD
}

// New creates a codec from the given key. Keys shorter than 32 bytes are
// stretched with SHA-256 so AES-256 always has a full-size key.
func New(key []byte) (*Codec, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Codec{key: key, gcm: gcm}, nil
}

// Sign serializes the state and returns a signed token: payload.signature,
// both base64url. The payload is readable; the signature prevents
// tampering.
func (c *Codec) Sign(state htmlkit.Vars) (string, error) {
	packed, err := msgpack.Marshal(map[string]any(state))
	if err != nil {
		return "", err
	}

	b64 := base64.RawURLEncoding.EncodeToString(packed)
	mac := hmac.New(sha256.New, c.key)
	mac.Write(packed)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16])
	return b64 + "." + sig, nil
}

// Verify checks a signed token and returns the state it carries.
func (c *Codec) Verify(token string) (htmlkit.Vars, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return nil, ErrInvalidFormat
	}

	packed, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	mac := hmac.New(sha256.New, c.key)
	mac.Write(packed)
	expected := mac.Sum(nil)[:16]

	if !hmac.Equal(got, expected) {
		return nil, ErrSignatureInvalid
	}

	return unpack(packed)
}

// Encrypt serializes and encrypts the state into an opaque token.
func (c *Codec) Encrypt(state htmlkit.Vars) (string, error) {
	packed, err := msgpack.Marshal(map[string]any(state))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := c.gcm.Seal(nonce, nonce, packed, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decodes and decrypts an opaque token back into state.
func (c *Codec) Decrypt(token string) (htmlkit.Vars, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if len(ciphertext) < c.gcm.NonceSize() {
		return nil, ErrInvalidFormat
	}

	nonce := ciphertext[:c.gcm.NonceSize()]
	packed, err := c.gcm.Open(nil, nonce, ciphertext[c.gcm.NonceSize():], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}

	return unpack(packed)
}

func unpack(packed []byte) (htmlkit.Vars, error) {
	var data map[string]any
	if err := msgpack.Unmarshal(packed, &data); err != nil {
		return nil, ErrInvalidFormat
	}
	return htmlkit.Vars(data), nil
}
