package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

// defaultBodyLimit is sized for the largest request this API accepts,
// a cover image upload.
const defaultBodyLimit = int64(10 << 20)

// BodySizeLimit caps request bodies so an oversized upload or contact
// payload fails with 413 instead of buffering unbounded. MAX_BODY_SIZE
// overrides the limit in bytes.
func BodySizeLimit(next http.Handler) http.Handler {
	limit := defaultBodyLimit
	if env := os.Getenv("MAX_BODY_SIZE"); env != "" {
		if n, err := strconv.ParseInt(env, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
