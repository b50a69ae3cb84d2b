package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"
)

// Recovery turns a handler panic into a plain 500. The panic value and
// stack go to the log, tagged with the request ID, never to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				rid := GetRequestID(r)
				if rid == "" {
					rid = "-"
				}
				log.Printf("panic rid=%s %s %s: %v\n%s", rid, r.Method, r.URL.Path, err, debug.Stack())
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
