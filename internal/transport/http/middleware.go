package httptransport

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger emits one [http] line per request, in the same register as
// the [worker] and [service] lines. Must run after middleware.RequestID so
// the request id is in the context.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		log.Printf("[http] req_id=%s method=%s path=%s remote=%s status=%d bytes=%d duration_ms=%d",
			middleware.GetReqID(r.Context()),
			r.Method,
			r.URL.Path,
			r.RemoteAddr,
			rec.status,
			rec.bytes,
			time.Since(start).Milliseconds(),
		)
	})
}

// responseRecorder captures what the handler wrote. Status defaults to 200,
// matching net/http's behavior when WriteHeader is never called.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
