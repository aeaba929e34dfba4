package challenge

import (
	"encoding/json"
	"net/http"
)

// withCORS wraps h with the permissive CORS headers and Connection: close
// every response in this surface must carry.
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Connection", "close")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func registerRoutes(mux *http.ServeMux, sess *session) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if !validToken(r, sess.token) {
			http.Error(w, "invalid or missing token", http.StatusForbidden)
			return
		}
		body, err := renderPage(sess.params, sess.state, sess.token)
		if err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})

	mux.HandleFunc("/approve", func(w http.ResponseWriter, r *http.Request) {
		if !isGetOrPost(r) {
			http.NotFound(w, r)
			return
		}
		if !validToken(r, sess.token) {
			http.Error(w, "invalid or missing token", http.StatusForbidden)
			return
		}
		sess.resolver.resolve(Result{Approved: true, Kind: sess.params.Kind})
		writeJSONStatus(w, "approved")
	})

	mux.HandleFunc("/deny", func(w http.ResponseWriter, r *http.Request) {
		if !isGetOrPost(r) {
			http.NotFound(w, r)
			return
		}
		if !validToken(r, sess.token) {
			http.Error(w, "invalid or missing token", http.StatusForbidden)
			return
		}
		sess.resolver.resolve(Result{Approved: false, Kind: sess.params.Kind, Reason: "user denial"})
		writeJSONStatus(w, "denied")
	})

	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func isGetOrPost(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodPost
}

func validToken(r *http.Request, want string) bool {
	return r.URL.Query().Get("token") == want
}

func writeJSONStatus(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
