package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "socket peer address",
			remoteAddr: "192.0.2.10:54321",
			want:       "192.0.2.10",
		},
		{
			name:       "x-real-ip takes precedence",
			remoteAddr: "192.0.2.10:54321",
			headers:    map[string]string{"X-Real-IP": "203.0.113.5"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-forwarded-for single hop",
			remoteAddr: "192.0.2.10:54321",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-forwarded-for chain keeps first hop",
			remoteAddr: "192.0.2.10:54321",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 198.51.100.1, 192.0.2.1"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-real-ip wins over x-forwarded-for",
			remoteAddr: "192.0.2.10:54321",
			headers: map[string]string{
				"X-Real-IP":       "203.0.113.5",
				"X-Forwarded-For": "198.51.100.1",
			},
			want: "203.0.113.5",
		},
		{
			name:       "unparseable remote addr returned as-is",
			remoteAddr: "bad-addr",
			want:       "bad-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
