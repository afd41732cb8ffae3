package seal

import "errors"

var (
	// ErrNoSecret indicates no usable secret was provided.
	ErrNoSecret = errors.New("seal: no secret provided")

	// ErrSecretTooShort indicates a secret is shorter than MinSecretLength.
	ErrSecretTooShort = errors.New("seal: secret must be at least 32 characters long")

	// ErrInvalidFormat indicates the sealed value is not in the expected layout.
	ErrInvalidFormat = errors.New("seal: invalid sealed value format")

	// ErrDecryptionFailed indicates authentication failed for every configured secret,
	// which means tampering, corruption or an unknown key.
	ErrDecryptionFailed = errors.New("seal: failed to decrypt sealed value")

	// ErrExpired indicates the sealed value outlived its TTL.
	ErrExpired = errors.New("seal: sealed value expired")
)
