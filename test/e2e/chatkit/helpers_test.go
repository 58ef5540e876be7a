package chatkit_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
)

/*
 * Common constants and helper functions for chatkit service end-to-end tests.
 * This includes the stub identity provider, container setup, and assertions.
 *
 * The service only trusts subjects proven by an upstream identity provider,
 * so the tests run a tiny JWKS server on the host and point the container at
 * it via testcontainers' host access port forwarding.
 */

const (
	testImageName = "chatkit-test:latest"

	sessionSecret = "e2e-session-secret-not-for-prod"
	idpIssuer     = "https://idp.e2e.test"
	idpAudience   = "chatkit"
	idpKeyID      = "e2e-idp-key-001"
)

var (
	idpPrivateKey ed25519.PrivateKey
	idpPublicKey  ed25519.PublicKey
	jwksPort      int
)

// TestMain manages the test lifecycle: generates the stub identity
// provider's signing key, serves its JWKS from the host, builds the Docker
// image once before all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	var err error
	idpPublicKey, idpPrivateKey, err = ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate IdP key: %v\n", err)
		os.Exit(1)
	}

	stopJWKS, err := startJWKSServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start JWKS server: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Building ChatKit Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up ChatKit Service Docker image...")
	cleanupDockerImage()
	stopJWKS()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// startJWKSServer serves the stub provider's JWKS document on a host port.
// The container reaches it through host.testcontainers.internal.
func startJWKSServer() (func(), error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	jwksPort = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.HandleFunc("GET /jwks.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{
				{
					"kty": "OKP",
					"crv": "Ed25519",
					"use": "sig",
					"alg": "EdDSA",
					"kid": idpKeyID,
					"x":   base64.RawURLEncoding.EncodeToString(idpPublicKey),
				},
			},
		})
	})

	server := &http.Server{Handler: mux}
	go func() { _ = server.Serve(listener) }()

	return func() { _ = server.Close() }, nil
}

// mintProviderToken signs a short-lived identity-provider JWT for subject,
// the way the real provider would.
func mintProviderToken(t *testing.T, subject string) string {
	t.Helper()
	return mintProviderTokenWithClaims(t, jwt.MapClaims{
		"iss": idpIssuer,
		"sub": subject,
		"aud": idpAudience,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	})
}

func mintProviderTokenWithClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = idpKeyID

	signed, err := token.SignedString(idpPrivateKey)
	require.NoError(t, err)
	return signed
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/chatkit/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

func containerEnv() map[string]string {
	return map[string]string{
		"CHATKIT_SESSION_SECRET": sessionSecret,
		"CHATKIT_DATABASE_FILE":  "/chatkit.db",
		"IDP_ISSUER":             idpIssuer,
		"IDP_JWKS_URL":           fmt.Sprintf("http://%s:%d/jwks.json", testcontainers.HostInternal, jwksPort),
		"IDP_AUDIENCE":           idpAudience,
		"ENV":                    "test",
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
}

// setupChatkitContainer starts the chatkit service in a container and
// returns the base URL. Rate limits are relaxed so rapid test requests
// don't trip the production defaults.
func setupChatkitContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := containerEnv()
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupChatkitContainerWithDefaultRateLimits starts the service with the
// production rate limit defaults. Only the rate limiting tests want this;
// everything else should use setupChatkitContainer.
func setupChatkitContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, containerEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:           testImageName,
		ExposedPorts:    []string{"8080/tcp"},
		Env:             env,
		HostAccessPorts: []int{jwksPort},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// createSession mints a provider token for subject and exchanges it for a
// chatkit session.
func createSession(t *testing.T, client *chatkitsdk.SDKClient, subject string) *chatkitsdk.Session {
	t.Helper()

	session, err := client.CreateSession(t.Context(), mintProviderToken(t, subject))
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, subject, session.UserID)
	require.NotEmpty(t, session.Token)

	return session
}

// assertHealthy verifies a health response reports ok.
func assertHealthy(t *testing.T, health *chatkitsdk.HealthResponse, err error) {
	t.Helper()

	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
