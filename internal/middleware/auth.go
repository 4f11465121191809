package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/config"
)

// APIKeyHeader carries the client API key on basket mutations
const APIKeyHeader = "api_key"

// APIKeyAuth middleware validates API key from header
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	keys := make([][]byte, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		keys = append(keys, []byte(key))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)

			if apiKey == "" {
				writeAuthError(w, http.StatusUnauthorized, "API key required")
				return
			}

			valid := false
			for _, key := range keys {
				if subtle.ConstantTimeCompare([]byte(apiKey), key) == 1 {
					valid = true
					break
				}
			}

			if !valid {
				writeAuthError(w, http.StatusForbidden, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
