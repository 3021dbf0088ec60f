package httpclient

import (
	"net/http"
	"time"
)

// DefaultTimeout acota cada llamada saliente cuando la config no define otro valor.
const DefaultTimeout = 20 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewDefaultHTTPClient crea un *http.Client con timeout. Si timeout <= 0 se usa DefaultTimeout.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}
