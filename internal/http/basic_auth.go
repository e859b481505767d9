package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

func (s *Server) basicAuth(next http.Handler) http.Handler {
	expectedUsername := sha256.Sum256([]byte(s.opts.BasicAuth.Username))
	expectedPassword := sha256.Sum256([]byte(s.opts.BasicAuth.Password))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Preflight requests never carry credentials
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if ok {
			usernameHash := sha256.Sum256([]byte(username))
			passwordHash := sha256.Sum256([]byte(password))

			usernameMatch := (subtle.ConstantTimeCompare(usernameHash[:], expectedUsername[:]) == 1)
			passwordMatch := (subtle.ConstantTimeCompare(passwordHash[:], expectedPassword[:]) == 1)

			if usernameMatch && passwordMatch {
				next.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="tasks", charset="UTF-8"`)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)

		_ = json.NewEncoder(w).Encode(map[string]string{"detail": http.StatusText(http.StatusUnauthorized)})
	})
}
