// Package seal turns structured values into opaque, tamper-evident, optionally
// time-bounded strings and back.
//
// Values are JSON encoded and encrypted with AES-256-GCM. Each seal uses a fresh
// random salt; the encryption key is derived from the secret and the salt with
// HKDF-SHA256, so no two seals share a key. The layout is
//
//	v1.<salt>.<nonce+ciphertext>.<expiry>
//
// with base64url (unpadded) segments and expiry in Unix milliseconds, empty when
// the codec has no TTL. The version, salt and expiry are authenticated together
// with the ciphertext: changing any byte makes Unseal fail.
//
// Usage:
//
//	codec, err := seal.New([]string{os.Getenv("SESSION_COOKIE_SECRET")})
//	if err != nil {
//		return err
//	}
//
//	sealed, err := codec.Seal(payload)
//	// ...
//	var out Payload
//	if err := codec.Unseal(sealed, &out); err != nil {
//		// treat as "no value"
//	}
//
// # Key rotation
//
// Pass several secrets, newest first. Seal always uses the first one; Unseal
// tries each in order, so values sealed before a rotation stay readable until
// the old secret is removed.
//
// # Expiry
//
// DefaultParams seal without expiry, leaving lifetime to the transport (for
// example cookie Max-Age). WithParams sets a TTL that is checked on Unseal with
// a tolerance of TimestampSkew.
package seal
