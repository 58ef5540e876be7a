// Package sessiontoken implements the compact signed credential used for
// chat sessions. A token binds a subject to a fixed validity window and is
// verified statelessly from the token string alone, so issuance never
// touches storage.
//
// Wire format (stable, interop with previously issued tokens):
//
//	chatkit_<subject>_<issuedAtMillis>_<expiresAtMillis>_<sig16hex>
//
// where sig16hex is the first 16 hex characters of
// HMAC-SHA256(secret, "<subject>_<issuedAtMillis>_<expiresAtMillis>").
package sessiontoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// Prefix is the literal first field of every token.
	Prefix = "chatkit"

	// DefaultValidity is the issuance window when none is configured.
	DefaultValidity = time.Hour

	// NearExpiryWindow is how close to expiry a token must be before
	// IsNearExpiry reports true. Advisory only, never an authz decision.
	NearExpiryWindow = 5 * time.Minute

	// signatureHexLen is the truncated HMAC length on the wire.
	signatureHexLen = 16
)

// Reason classifies why a token failed validation. The values are wire-stable
// snake_case codes; callers treat every non-valid outcome as unauthenticated
// and use the reason for diagnostics only.
type Reason string

const (
	ReasonInvalidFormat    Reason = "invalid_format"
	ReasonUserMismatch     Reason = "user_mismatch"
	ReasonInvalidTimestamp Reason = "invalid_timestamp"
	ReasonExpired          Reason = "expired"
	ReasonInvalidSignature Reason = "invalid_signature"
)

// Result is the outcome of Validate. Validation failures are data, not
// errors; nothing in this package panics or errors on malformed input.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason Reason `json:"reason,omitempty"`
}

// ErrEmptySubject reports an Issue call for an empty subject.
var ErrEmptySubject = errors.New("sessiontoken: empty subject")

// Codec issues and validates session tokens. The zero value is not usable;
// construct with New so the secret is always explicit. Codec is immutable
// after construction and safe for unlimited concurrent use.
type Codec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// Option customises a Codec.
type Option func(*Codec)

// WithValidity overrides the issuance window.
func WithValidity(d time.Duration) Option {
	return func(c *Codec) {
		if d > 0 {
			c.validity = d
		}
	}
}

// WithClock overrides the wall clock. Tests use this to pin issuance and
// expiry deterministically.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a Codec signing with secret. The secret comes from service
// configuration; the codec itself never reads the environment.
func New(secret string, opts ...Option) *Codec {
	c := &Codec{
		secret:   []byte(secret),
		validity: DefaultValidity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validity returns the configured issuance window.
func (c *Codec) Validity() time.Duration { return c.validity }

// Ready reports whether the codec has a signing secret loaded.
func (c *Codec) Ready() bool { return len(c.secret) > 0 }

// Issue mints a token for subject, valid from now until now+validity.
// The subject is opaque and may itself contain the "_" delimiter; parsing
// anchors on the three trailing fields so such subjects round-trip.
func (c *Codec) Issue(subject string) (token string, expiresAt time.Time, err error) {
	if subject == "" {
		return "", time.Time{}, ErrEmptySubject
	}

	issuedMs := c.now().UnixMilli()
	expiresMs := issuedMs + c.validity.Milliseconds()

	payload := subject + "_" +
		strconv.FormatInt(issuedMs, 10) + "_" +
		strconv.FormatInt(expiresMs, 10)

	token = Prefix + "_" + payload + "_" + c.sign(payload)
	return token, time.UnixMilli(expiresMs).UTC(), nil
}

// Validate checks token against expectedSubject. Checks run in a fixed
// order and the first failure wins: format, subject match, timestamp
// parsing, expiry, signature. Expiry is deliberately checked before the
// signature, so an expired-and-forged token reports "expired"; this
// ordering is load-bearing for compatibility and must not change.
func (c *Codec) Validate(token, expectedSubject string) Result {
	subject, issuedMs, expiresMs, sig, ok := split(token)
	if !ok {
		return Result{Reason: ReasonInvalidFormat}
	}

	if subject != expectedSubject {
		return Result{Reason: ReasonUserMismatch}
	}

	if _, err := strconv.ParseInt(issuedMs, 10, 64); err != nil {
		return Result{Reason: ReasonInvalidTimestamp}
	}
	expires, err := strconv.ParseInt(expiresMs, 10, 64)
	if err != nil {
		return Result{Reason: ReasonInvalidTimestamp}
	}

	if c.now().UnixMilli() > expires {
		return Result{Reason: ReasonExpired}
	}

	want := c.sign(subject + "_" + issuedMs + "_" + expiresMs)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(want)) != 1 {
		return Result{Reason: ReasonInvalidSignature}
	}

	return Result{Valid: true}
}

// PeekExpiry extracts the embedded expiry without verifying the signature
// or subject. It exists for advisory UI warnings only; authorization always
// goes through Validate. Malformed input reports ok=false, never an error.
func (c *Codec) PeekExpiry(token string) (time.Time, bool) {
	_, _, expiresMs, _, ok := split(token)
	if !ok {
		return time.Time{}, false
	}
	expires, err := strconv.ParseInt(expiresMs, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(expires).UTC(), true
}

// IsNearExpiry reports whether token expires within NearExpiryWindow.
// Unparseable tokens are treated as already expired.
func (c *Codec) IsNearExpiry(token string) bool {
	expiry, ok := c.PeekExpiry(token)
	if !ok {
		return true
	}
	return c.now().Add(NearExpiryWindow).After(expiry)
}

// Subject extracts the embedded subject without verification. Like
// PeekExpiry this is advisory; never use it to authenticate a caller.
func (c *Codec) Subject(token string) (string, bool) {
	subject, _, _, _, ok := split(token)
	return subject, ok
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))[:signatureHexLen]
}

// split decomposes a token into its fields. The subject is unconstrained
// and may contain the delimiter, so the three trailing fields (issuedAt,
// expiresAt, signature) anchor the parse from the right and the subject is
// whatever sits between the prefix and them.
func split(token string) (subject, issuedMs, expiresMs, sig string, ok bool) {
	rest, found := strings.CutPrefix(token, Prefix+"_")
	if !found {
		return "", "", "", "", false
	}

	parts := strings.Split(rest, "_")
	if len(parts) < 4 {
		return "", "", "", "", false
	}

	n := len(parts)
	sig = parts[n-1]
	expiresMs = parts[n-2]
	issuedMs = parts[n-3]
	subject = strings.Join(parts[:n-3], "_")

	if subject == "" || issuedMs == "" || expiresMs == "" || len(sig) != signatureHexLen {
		return "", "", "", "", false
	}
	return subject, issuedMs, expiresMs, sig, true
}
