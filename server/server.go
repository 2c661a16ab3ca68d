// Package server implements the HTTP service that accepts image uploads from
// logged in users and reports the EXIF metadata found in them.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Server holds the state shared by the handlers.
type Server struct {
	cfg      Config
	log      *logrus.Logger
	users    *userStore
	sessions *sessions
	recent   *recentUploads
	handler  http.Handler
}

// New returns a Server for cfg. The upload directory is created if missing.
func New(cfg Config, log *logrus.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	users, err := newUserStore(cfg.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("hashing demo passwords: %w", err)
	}
	s := &Server{
		cfg:      cfg,
		log:      log,
		users:    users,
		sessions: newSessions(cfg.SessionSecret),
		recent:   newRecentUploads(cfg.RecentUploads),
	}
	s.handler = cors(rateLimit(logRequests(s.routes(), log), cfg.RateLimit, cfg.RateBurst))
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /login", s.page("login.html"))
	mux.HandleFunc("GET /login-admin", s.page("login-admin.html"))
	mux.HandleFunc("GET /dashboard", s.requireAuth(s.page("dashboard.html")))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/session", s.handleSession)
	mux.HandleFunc("POST /api/upload-image", s.requireAuth(s.handleUpload))
	mux.HandleFunc("GET /api/admin/uploads", s.requireRole(RoleAdmin, s.handleAdminUploads))

	mux.Handle("GET /", http.FileServer(http.Dir(s.cfg.StaticDir)))
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessions.user(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(s.cfg.StaticDir, name))
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&creds); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed request"})
			return
		}
	} else {
		creds.Username = r.PostFormValue("username")
		creds.Password = r.PostFormValue("password")
	}
	log := logEntry(r.Context()).WithField("username", creds.Username)
	u, ok := s.users.authenticate(creds.Username, creds.Password)
	if !ok {
		log.Info("login failed")
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
		return
	}
	if err := s.sessions.save(w, u); err != nil {
		log.WithError(err).Error("saving session")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Login failed"})
		return
	}
	log.Info("logged in")
	writeJSON(w, http.StatusOK, struct {
		OK   bool `json:"ok"`
		Role Role `json:"role"`
	}{OK: true, Role: u.Role})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.clear(w)
	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	var resp struct {
		User *User `json:"user"`
	}
	if u, ok := s.sessions.user(r); ok {
		resp.User = &u
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminUploads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		OK      bool            `json:"ok"`
		Uploads []uploadSummary `json:"uploads"`
	}{OK: true, Uploads: s.recent.list()})
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
