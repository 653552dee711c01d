package log

import (
	"net/http"
	"time"
)

// statusRecorder captures the response status and size for access logging
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// HTTPRequestLogger wraps a handler with per-request access logging at
// debug level.
func HTTPRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, req)

		Debugf("%s %s %d %v %d bytes (%s)",
			req.Method, req.URL.Path, rec.status,
			time.Since(start).Round(time.Microsecond), rec.size, req.RemoteAddr)
	})
}
