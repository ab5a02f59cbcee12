package relayapi

import "net/http"

// shouldRetry classifies one failed attempt. Only upstream overload (502)
// and connection-level failures (status 0) are transient; every other HTTP
// status is treated as a permanent answer from the relay.
func shouldRetry(status, attempt, maxAttempts int) bool {
	if attempt >= maxAttempts {
		return false
	}
	return status == 0 || status == http.StatusBadGateway
}
