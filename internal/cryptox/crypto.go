// Package cryptox implements the envelope encryption used for shared files:
// a random data-encrypting key (DEK) encrypts the file with AES-256-GCM and
// is itself wrapped with AES-256-GCM under a key-encrypting key (KEK)
// derived from the recipient's one-time password via PBKDF2-HMAC-SHA256.
//
// Everything here is free of I/O. Randomness comes from an injected reader
// so tests can substitute a deterministic source.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the AES-256 key length used for both DEK and KEK.
	KeySize = 32
	// SaltSize is the PBKDF2 salt length.
	SaltSize = 16
	// NonceSize is the GCM nonce length for file_iv and key_iv.
	NonceSize = 12
	// KDFIterations must be identical between wrap and unwrap.
	KDFIterations = 100000
	// OTPLength is the number of decimal digits in an OTP.
	OTPLength = 6
)

var (
	// ErrAuthentication is returned when GCM authentication fails: wrong key,
	// wrong nonce or tampered ciphertext.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrInvalidLength is returned for keys, nonces or salts of the wrong size.
	ErrInvalidLength = errors.New("invalid length")
)

var (
	otpMin   = big.NewInt(100000)
	otpRange = big.NewInt(900000)
)

// Envelope draws the per-upload random values. It is safe for concurrent use
// as long as the underlying reader is (crypto/rand.Reader is).
type Envelope struct {
	rand io.Reader
}

// NewEnvelope returns an Envelope reading from r. A nil reader selects
// crypto/rand.Reader.
func NewEnvelope(r io.Reader) *Envelope {
	if r == nil {
		r = rand.Reader
	}
	return &Envelope{rand: r}
}

// RandomBytes returns n bytes read from the envelope's random source.
func (e *Envelope) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(e.rand, b); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return b, nil
}

// NewDEK returns a fresh 256-bit data-encrypting key.
func (e *Envelope) NewDEK() ([]byte, error) { return e.RandomBytes(KeySize) }

// NewSalt returns a fresh 16-byte PBKDF2 salt.
func (e *Envelope) NewSalt() ([]byte, error) { return e.RandomBytes(SaltSize) }

// NewIV returns a fresh 12-byte GCM nonce.
func (e *Envelope) NewIV() ([]byte, error) { return e.RandomBytes(NonceSize) }

// GenerateOTP returns a 6-digit decimal code drawn uniformly from
// [100000, 999999].
func (e *Envelope) GenerateOTP() (string, error) {
	n, err := rand.Int(e.rand, otpRange)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return n.Add(n, otpMin).String(), nil
}

// HashSHA256 returns the lowercase hex SHA-256 digest of data.
func HashSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// EqualHex compares two hex digests in constant time.
func EqualHex(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// DeriveKEK stretches the OTP into a 256-bit key-encrypting key.
func DeriveKEK(otp, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt: %w", ErrInvalidLength)
	}
	return pbkdf2.Key(otp, salt, KDFIterations, KeySize, sha256.New), nil
}

// WrapKey encrypts the DEK under the KEK. The output carries the GCM tag.
func WrapKey(dek, kek, keyIV []byte) ([]byte, error) {
	if len(dek) != KeySize {
		return nil, fmt.Errorf("dek: %w", ErrInvalidLength)
	}
	return seal(dek, kek, keyIV)
}

// UnwrapKey reverses WrapKey. A wrong KEK or a modified wrapped key yields
// ErrAuthentication.
func UnwrapKey(wrapped, kek, keyIV []byte) ([]byte, error) {
	dek, err := open(wrapped, kek, keyIV)
	if err != nil {
		return nil, err
	}
	if len(dek) != KeySize {
		return nil, fmt.Errorf("dek: %w", ErrInvalidLength)
	}
	return dek, nil
}

// EncryptFile encrypts the plaintext with the DEK under fileIV.
func EncryptFile(plaintext, dek, fileIV []byte) ([]byte, error) {
	return seal(plaintext, dek, fileIV)
}

// DecryptFile reverses EncryptFile, failing with ErrAuthentication on any
// tampering.
func DecryptFile(ciphertext, dek, fileIV []byte) ([]byte, error) {
	return open(ciphertext, dek, fileIV)
}

// EncodeKey renders binary key material for storage.
func EncodeKey(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeKey parses stored key material and checks its length when size > 0.
func DecodeKey(s string, size int) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode key material: %w", err)
	}
	if size > 0 && len(b) != size {
		return nil, fmt.Errorf("key material of %d bytes: %w", len(b), ErrInvalidLength)
	}
	return b, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key: %w", ErrInvalidLength)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func seal(plaintext, key, nonce []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, fmt.Errorf("nonce: %w", ErrInvalidLength)
	}
	return aesgcm.Seal(nil, nonce, plaintext, nil), nil
}

func open(ciphertext, key, nonce []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, fmt.Errorf("nonce: %w", ErrInvalidLength)
	}
	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
