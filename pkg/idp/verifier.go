package idp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed  = errors.New("idp: malformed token")
	ErrUnknownKID = errors.New("idp: unknown kid")
	ErrInvalid    = errors.New("idp: token rejected")
	ErrNoSubject  = errors.New("idp: token has no subject")
)

// allowedAlgs are the signing algorithms we accept from the provider.
// Anything else (notably the HS* family) is rejected outright.
var allowedAlgs = []string{"RS256", "ES256", "EdDSA"}

// Claims is the slice of provider claims the service cares about.
type Claims struct {
	Subject  string
	Issuer   string
	IssuedAt time.Time
}

// Verifier checks identity-provider JWTs against the provider's JWKS.
// Keys are cached; an unknown kid triggers a refetch so provider-side key
// rotation is picked up without a restart. Safe for concurrent use.
type Verifier struct {
	issuer   string
	audience []string
	jwksURL  string
	client   *http.Client

	mu          sync.RWMutex
	keys        map[string]any // kid -> crypto public key
	lastFetch   time.Time
	minInterval time.Duration
}

// New builds a Verifier fetching keys from jwksURL. Audience may be empty
// when the provider does not set one.
func New(issuer, jwksURL string, audience []string) *Verifier {
	return &Verifier{
		issuer:      issuer,
		audience:    audience,
		jwksURL:     jwksURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		keys:        make(map[string]any),
		minInterval: time.Minute,
	}
}

// NewStatic builds a Verifier with a fixed key set and no fetching.
// Used in tests and air-gapped deployments where the JWKS is pinned.
func NewStatic(issuer string, audience []string, keys map[string]any) *Verifier {
	return &Verifier{
		issuer:   issuer,
		audience: audience,
		keys:     keys,
	}
}

// Verify parses and verifies a provider token, returning its claims.
// All failures collapse into ErrInvalid (wrapping the cause) except key
// lookup problems, which report ErrUnknownKID.
func (v *Verifier) Verify(ctx context.Context, token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrMalformed
	}

	keyfunc := func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownKID
		}
		if key, ok := v.lookup(kid); ok {
			return key, nil
		}
		// Cache miss: the provider may have rotated. Refetch once.
		if err := v.refresh(ctx); err != nil {
			return nil, err
		}
		if key, ok := v.lookup(kid); ok {
			return key, nil
		}
		return nil, ErrUnknownKID
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(allowedAlgs),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	for _, aud := range v.audience {
		opts = append(opts, jwt.WithAudience(aud))
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, keyfunc, opts...)
	if err != nil {
		if errors.Is(err, ErrUnknownKID) {
			return Claims{}, ErrUnknownKID
		}
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	reg, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || reg.Subject == "" {
		return Claims{}, ErrNoSubject
	}

	claims := Claims{
		Subject: reg.Subject,
		Issuer:  reg.Issuer,
	}
	if reg.IssuedAt != nil {
		claims.IssuedAt = reg.IssuedAt.Time
	}
	return claims, nil
}

// Ready reports whether at least one verification key is loaded.
func (v *Verifier) Ready() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.keys) > 0
}

// Warm fetches the JWKS ahead of the first verification. Errors are
// returned so startup can decide whether to treat a cold cache as fatal.
func (v *Verifier) Warm(ctx context.Context) error {
	return v.refresh(ctx)
}

func (v *Verifier) lookup(kid string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	key, ok := v.keys[kid]
	return key, ok
}

// refresh refetches the JWKS, rate-limited so a flood of unknown-kid
// tokens cannot hammer the provider.
func (v *Verifier) refresh(ctx context.Context) error {
	if v.jwksURL == "" {
		return nil // static key set
	}

	v.mu.Lock()
	if time.Since(v.lastFetch) < v.minInterval {
		v.mu.Unlock()
		return nil
	}
	v.lastFetch = time.Now()
	v.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("idp: fetch jwks: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("idp: jwks endpoint returned %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("idp: decode jwks: %w", err)
	}

	keys := make(map[string]any, len(set.Keys))
	for _, jwk := range set.Keys {
		if jwk.Use != "" && jwk.Use != "sig" {
			continue
		}
		key, err := jwk.PublicKey()
		if err != nil {
			continue // skip keys we can't use rather than failing the set
		}
		keys[jwk.Kid] = key
	}

	v.mu.Lock()
	v.keys = keys
	v.mu.Unlock()
	return nil
}
