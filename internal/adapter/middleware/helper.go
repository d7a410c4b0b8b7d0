package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the originating address, trusting the first entry
// of X-Forwarded-For when a proxy sets it. Returns "" when nothing
// usable is present.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
