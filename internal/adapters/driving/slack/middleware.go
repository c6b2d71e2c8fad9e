package slack

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	slackapi "github.com/slack-go/slack"

	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// HeaderRetryNum is set when Slack redelivers an event.
const HeaderRetryNum = "X-Slack-Retry-Num"

const maxBodyBytes = 1 << 20

// VerifySignature rejects requests that are not signed with secret or whose
// timestamp is more than five minutes off. The body is restored for handlers.
func VerifySignature(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verifier, err := slackapi.NewSecretsVerifier(r.Header, secret)
			if err != nil {
				logger.Debug("rejected request from %s: %v", r.RemoteAddr, err)
				http.Error(w, "invalid signature", http.StatusUnauthorized)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			if err != nil {
				http.Error(w, "read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if _, err := verifier.Write(body); err != nil {
				http.Error(w, "invalid signature", http.StatusUnauthorized)
				return
			}
			if err := verifier.Ensure(); err != nil {
				logger.Warn("rejected request with bad signature from %s", r.RemoteAddr)
				http.Error(w, "invalid signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs incoming requests.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.With("request_id", middleware.GetReqID(r.Context())).Info(
			"%s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start).Round(time.Millisecond),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
