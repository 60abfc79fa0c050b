package sitegate

import (
	"net/http"
)

// redirectHandler sends every plain HTTP request to the HTTPS origin of
// the given domain, preserving the request path and query.
func redirectHandler(domain string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := "https://" + domain + r.URL.RequestURI()

		code := http.StatusMovedPermanently
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			// Preserve the method and body for non-GET requests.
			code = http.StatusPermanentRedirect
		}
		http.Redirect(w, r, target, code)
	})
}
