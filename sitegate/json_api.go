package sitegate

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const jsonContentType = "application/json"

// jsonAPI wraps a request/response function into an HTTP handler that
// decodes a JSON request body and encodes a JSON response.
func jsonAPI[R, S any](f func(ctx context.Context, req *R) (*S, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		req := new(R)
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if dec.More() {
			http.Error(w, "extra data after request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		resp, err := f(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", jsonContentType)

		enc := json.NewEncoder(w)
		if err := enc.Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

type pingRequest struct {
	Echo string `json:"echo,omitempty"`
}

type pingResponse struct {
	Echo       string `json:"echo,omitempty"`
	ServerTime string `json:"server_time"`
}

func ping(_ context.Context, req *pingRequest) (*pingResponse, error) {
	return &pingResponse{
		Echo:       req.Echo,
		ServerTime: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
