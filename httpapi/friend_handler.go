package httpapi

import (
	"encoding/json"
	"net/http"

	"chat-core/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (s *Server) handleSendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		To string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.To == "" {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	request, err := s.friends.SendRequest(principal(r), body.To)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (s *Server) handlePendingFriendRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.friends.PendingFor(principal(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.FriendRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (s *Server) handleAcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	conversation, err := s.friends.Accept(principal(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversation)
}

func (s *Server) handleDeclineFriendRequest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	if err := s.friends.Decline(principal(r), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
