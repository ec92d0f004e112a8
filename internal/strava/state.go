package strava

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidState = errors.New("invalid oauth state")

// ConnectState is the context carried through the provider's oauth redirect:
// who started the flow and where their client should land afterwards.
type ConnectState struct {
	CustomerID  int    `json:"customerId"`
	RedirectURI string `json:"redirectUri"`
}

// StateCodec encodes the oauth state blob as base64 JSON plus an HMAC-SHA256
// signature, so the callback can trust the embedded customer id. A plain
// base64 blob would let anyone connect their Strava account to an arbitrary
// customer.
type StateCodec struct {
	secret []byte
}

func NewStateCodec(secret string) *StateCodec {
	return &StateCodec{secret: []byte(secret)}
}

func (c *StateCodec) Encode(state ConnectState) (string, error) {
	stateJson, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(stateJson)
	return payload + "." + c.sign(payload), nil
}

func (c *StateCodec) Decode(encoded string) (*ConnectState, error) {
	payload, signature, found := strings.Cut(encoded, ".")
	if !found {
		return nil, ErrInvalidState
	}
	if !hmac.Equal([]byte(signature), []byte(c.sign(payload))) {
		return nil, ErrInvalidState
	}

	stateJson, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidState
	}

	var state ConnectState
	if err := json.Unmarshal(stateJson, &state); err != nil {
		return nil, ErrInvalidState
	}
	if state.CustomerID <= 0 || state.RedirectURI == "" {
		return nil, ErrInvalidState
	}

	return &state, nil
}

func (c *StateCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
