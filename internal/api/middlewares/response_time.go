package middlewares

import (
	"net/http"
	"time"
)

type timedWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
}

// stamp must run before the first WriteHeader/Write; headers are
// immutable after that.
func (w *timedWriter) stamp() {
	if !w.stamped {
		w.Header().Set("X-Response-Time", time.Since(w.start).String())
		w.stamped = true
	}
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

// ResponseTime reports handler latency in an X-Response-Time header.
func ResponseTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)

		// bodyless responses (204, HEAD) never hit stamp above
		if !tw.stamped {
			tw.Header().Set("X-Response-Time", time.Since(tw.start).String())
		}
	})
}
