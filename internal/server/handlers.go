package server

import (
	"encoding/json"
	"net/http"

	"github.com/coursedeck/coursedeck/pkg/catalog"
	"github.com/coursedeck/coursedeck/pkg/schedule"
	"github.com/coursedeck/coursedeck/pkg/view"
)

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.DB.LoadCatalog(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	filters := view.Filters{
		Department: q.Get("department"),
		Day:        q.Get("day"),
		Time:       q.Get("time"),
		Term:       q.Get("term"),
		Credits:    q.Get("credits"),
		Search:     q.Get("search"),
	}

	filtered := view.Apply(courses, filters)
	sorted := view.Sort(filtered, q.Get("sort"), q.Get("dir") == "desc")
	json.NewEncoder(w).Encode(sorted)
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	courses, err := s.DB.LoadCatalog(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(view.CollectOptions(courses))
}

type selectionResponse struct {
	Sections []schedule.Selected `json:"sections"`
	Total    int                 `json:"total"`
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	sections, err := s.DB.SelectedSections(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	marked := schedule.MarkConflicts(sections)
	json.NewEncoder(w).Encode(selectionResponse{
		Sections: marked,
		Total:    schedule.Total(marked),
	})
}

type toggleRequest struct {
	CourseCode string `json:"course_code"`
	SessionID  string `json:"session_id"`
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	selected, err := s.DB.ToggleSelection(r.Context(), catalog.NormalizeCode(req.CourseCode), req.SessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"selected": selected})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	sections, err := s.DB.SelectedSections(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	marked := schedule.MarkConflicts(sections)
	scope := schedule.ParseScope(r.URL.Query().Get("scope"))
	json.NewEncoder(w).Encode(schedule.CollectEvents(marked, scope))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.DB.GetStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(stats)
}
