package strava

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

var (
	ErrInvalidVerifyToken = errors.New("invalid verify token")
	ErrMissingSignature   = errors.New("missing signature")
	ErrInvalidSignature   = errors.New("invalid signature")
)

// Verifier authenticates inbound webhook traffic: the one-time subscription
// handshake and the signature on every event delivery. It never mutates
// anything.
type Verifier struct {
	verifyToken   string
	webhookSecret string
}

func NewVerifier(verifyToken, webhookSecret string) *Verifier {
	return &Verifier{
		verifyToken:   verifyToken,
		webhookSecret: webhookSecret,
	}
}

// VerifySubscription checks the handshake verify token, byte for byte.
func (v *Verifier) VerifySubscription(verifyToken string) error {
	if subtle.ConstantTimeCompare([]byte(verifyToken), []byte(v.verifyToken)) != 1 {
		return ErrInvalidVerifyToken
	}
	return nil
}

// VerifySignature recomputes the HMAC-SHA256 of the raw wire bytes and
// compares it to the signature header ("sha256=<hex>") in constant time. The
// body must be the exact bytes received, any re-serialization before this
// check invalidates the signature.
func (v *Verifier) VerifySignature(rawBody []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}

	mac := hmac.New(sha256.New, []byte(v.webhookSecret))
	mac.Write(rawBody)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
