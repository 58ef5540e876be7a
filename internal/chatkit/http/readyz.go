package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
	"github.com/aussiebroadwan/chatkit/pkg/chatkitsdk"
	"github.com/aussiebroadwan/chatkit/pkg/httpx"
	"github.com/aussiebroadwan/chatkit/pkg/sessiontoken"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and session token codec
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	chatkitsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	chatkitsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	codec *sessiontoken.Codec,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &chatkitsdk.HealthChecks{
			Database: "ok",
			Codec:    "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check the codec has a signing secret loaded
		if codec == nil || !codec.Ready() {
			checks.Codec = "error: no signing secret loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := chatkitsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
