package sitegate

import (
	"mime"
	"net/http"
)

// limitBody caps the size of request bodies before any handler reads
// them.
func limitBody(max int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, max)
		}
		next.ServeHTTP(w, r)
	})
}

// parseBody eagerly parses urlencoded form bodies so that downstream
// handlers see r.Form populated. JSON bodies are decoded by the JSON
// handlers themselves; other content types pass through untouched.
func parseBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			t, _, err := mime.ParseMediaType(
				r.Header.Get("Content-Type"),
			)
			if err == nil && t == "application/x-www-form-urlencoded" {
				if err := r.ParseForm(); err != nil {
					http.Error(
						w, err.Error(),
						http.StatusBadRequest,
					)
					return
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
