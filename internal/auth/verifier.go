package auth

import "crypto/subtle"

// Verifier checks whether a credential presented in a request header
// authorizes write operations. Route logic depends only on this interface,
// so stronger schemes (per-client keys, signed tokens) can be substituted
// without touching the handlers.
type Verifier interface {
	Verify(credential string) bool
}

// StaticKeyVerifier accepts exactly one shared secret.
type StaticKeyVerifier struct {
	key string
}

// NewStaticKeyVerifier creates a verifier for the given shared secret.
func NewStaticKeyVerifier(key string) *StaticKeyVerifier {
	return &StaticKeyVerifier{key: key}
}

// Verify reports whether the presented credential matches the configured key.
func (v *StaticKeyVerifier) Verify(credential string) bool {
	if credential == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(v.key)) == 1
}
