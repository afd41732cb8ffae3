package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"
)

const (
	// MinSecretLength is the minimum secret length in characters.
	MinSecretLength = 32
	// version prefixes every sealed value and is covered by the authentication tag.
	version   = "v1"
	separator = "."
	saltSize  = 16
	keySize   = 32 // AES-256
	kdfInfo   = "sealedsession/seal v1"
)

var encoding = base64.RawURLEncoding.Strict()

// Params controls the freshness check applied to sealed values.
type Params struct {
	// TTL is the lifetime of a sealed value. Zero disables expiry.
	TTL time.Duration
	// TimestampSkew is the clock skew tolerated when checking expiry.
	TimestampSkew time.Duration
}

// DefaultParams are used unless WithParams is given: no expiry, 60 seconds of skew.
var DefaultParams = Params{
	TTL:           0,
	TimestampSkew: 60 * time.Second,
}

// Codec seals values into opaque, tamper-evident strings and back.
// It is safe for concurrent use.
type Codec struct {
	secrets []string
	params  Params
	now     func() time.Time
	rand    io.Reader
}

// New creates a codec. The first secret seals; every secret is tried when unsealing
// so secrets can be rotated by prepending a new one.
func New(secrets []string, opts ...Option) (*Codec, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i := range secrets {
		if len(secrets[i]) < MinSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d",
				ErrSecretTooShort, i, len(secrets[i]), MinSecretLength)
		}
	}

	c := &Codec{
		secrets: secrets,
		params:  DefaultParams,
		now:     time.Now,
		rand:    rand.Reader,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Params returns the parameters the codec was built with.
func (c *Codec) Params() Params {
	return c.params
}

// Seal encodes v as JSON and encrypts it.
func (c *Codec) Seal(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("seal: marshal value: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("seal: generate salt: %w", err)
	}

	var expiry string
	if c.params.TTL > 0 {
		expiry = strconv.FormatInt(c.now().Add(c.params.TTL).UnixMilli(), 10)
	}

	gcm, err := newAEAD(c.secrets[0], salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("seal: generate nonce: %w", err)
	}

	encodedSalt := encoding.EncodeToString(salt)
	sealed := gcm.Seal(nonce, nonce, plaintext, additionalData(encodedSalt, expiry))

	return strings.Join([]string{version, encodedSalt, encoding.EncodeToString(sealed), expiry}, separator), nil
}

// Unseal decrypts sealed into v. Malformed, tampered, expired or foreign input
// yields an error; nothing is decoded into v unless authentication succeeds.
func (c *Codec) Unseal(sealed string, v any) error {
	parts := strings.Split(sealed, separator)
	if len(parts) != 4 || parts[0] != version {
		return ErrInvalidFormat
	}
	encodedSalt, encodedBox, expiry := parts[1], parts[2], parts[3]

	salt, err := encoding.DecodeString(encodedSalt)
	if err != nil || len(salt) != saltSize {
		return ErrInvalidFormat
	}

	box, err := encoding.DecodeString(encodedBox)
	if err != nil {
		return ErrInvalidFormat
	}

	if expiry != "" {
		expiresAt, err := strconv.ParseInt(expiry, 10, 64)
		if err != nil {
			return ErrInvalidFormat
		}
		if c.now().Add(-c.params.TimestampSkew).UnixMilli() >= expiresAt {
			return ErrExpired
		}
	}

	aad := additionalData(encodedSalt, expiry)

	var plaintext []byte
	var lastErr error
	for _, secret := range c.secrets {
		gcm, err := newAEAD(secret, salt)
		if err != nil {
			lastErr = err
			continue
		}
		if len(box) < gcm.NonceSize() {
			return ErrInvalidFormat
		}

		nonce, ciphertext := box[:gcm.NonceSize()], box[gcm.NonceSize():]
		plaintext, err = gcm.Open(nil, nonce, ciphertext, aad)
		if err == nil {
			lastErr = nil
			break
		}
		lastErr = err
	}

	if lastErr != nil {
		return ErrDecryptionFailed
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return errors.Join(ErrInvalidFormat, err)
	}

	return nil
}

// newAEAD derives a per-seal AES-256-GCM cipher from secret and salt.
func newAEAD(secret string, salt []byte) (cipher.AEAD, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), salt, []byte(kdfInfo)), key); err != nil {
		return nil, fmt.Errorf("seal: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

func additionalData(encodedSalt, expiry string) []byte {
	return []byte(version + separator + encodedSalt + separator + expiry)
}
