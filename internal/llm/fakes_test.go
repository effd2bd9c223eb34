package llm

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// vendorReply is one canned HTTP answer from a fake vendor API.
type vendorReply struct {
	status  int
	headers map[string]string
	body    any
}

// fakeVendor serves reply to every request and records the last request
// body. It returns the server URL.
func fakeVendor(t *testing.T, reply vendorReply) (string, *[]byte) {
	t.Helper()
	var got []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
		for k, v := range reply.headers {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		if reply.status != 0 {
			w.WriteHeader(reply.status)
		}
		_ = json.NewEncoder(w).Encode(reply.body)
	}))
	t.Cleanup(server.Close)
	return server.URL, &got
}

func vendorError(kind, message string) map[string]any {
	return map[string]any{
		"type":  "error",
		"error": map[string]any{"type": kind, "message": message},
	}
}

// assertErrorKind checks err against the provider error type named by want.
func assertErrorKind(t *testing.T, err error, want string) {
	t.Helper()
	var (
		rl      *ErrRateLimit
		auth    *ErrAuth
		unavail *ErrProviderUnavailable
		maxTok  *ErrMaxTokensExceeded
		invalid *ErrInvalidResponse
	)
	var ok bool
	switch want {
	case "rate_limit":
		ok = errors.As(err, &rl)
	case "auth":
		ok = errors.As(err, &auth)
	case "unavailable":
		ok = errors.As(err, &unavail)
	case "max_tokens":
		ok = errors.As(err, &maxTok)
	case "invalid":
		ok = errors.As(err, &invalid)
	default:
		t.Fatalf("unknown error kind %q", want)
	}
	if !ok {
		t.Fatalf("expected %s error, got %T (%v)", want, err, err)
	}
}
