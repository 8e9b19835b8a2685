package server

import (
	"net/http"

	"github.com/coursedeck/coursedeck/internal/utils"
	"github.com/coursedeck/coursedeck/pkg/storage"
)

type Server struct {
	DB       *storage.DB
	Username string
	Password string
}

func New(db *storage.DB, user, pass string) *Server {
	return &Server{
		DB:       db,
		Username: user,
		Password: pass,
	}
}

func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/courses", s.basicAuth(s.handleCourses))
	mux.HandleFunc("GET /api/options", s.basicAuth(s.handleOptions))
	mux.HandleFunc("GET /api/selection", s.basicAuth(s.handleSelection))
	mux.HandleFunc("POST /api/selection/toggle", s.basicAuth(s.handleToggle))
	mux.HandleFunc("GET /api/calendar", s.basicAuth(s.handleCalendar))
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))

	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
