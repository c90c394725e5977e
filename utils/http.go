package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by every outbound call (Discord token exchange and
// profile fetch). The default client has no timeout.
var HTTPClient = &http.Client{
	Timeout: 15 * time.Second,
}
