package httpapi

import (
	"net/http"
	"strconv"
)

const defaultSearchLimit = 20

func (s *Server) handleOnlineUsers(w http.ResponseWriter, r *http.Request) {
	online, err := s.users.OnlineUsers()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if online == nil {
		online = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"users": online})
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	usernames, err := s.index.SearchUsers(r.Context(), query, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if usernames == nil {
		usernames = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"users": usernames})
}
