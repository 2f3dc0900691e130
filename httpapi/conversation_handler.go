package httpapi

import (
	"encoding/json"
	"net/http"

	"chat-core/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type createConversationRequest struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
	Group        bool     `json:"group"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

type messagesResponse struct {
	Messages []domain.Message `json:"messages"`
	Cursor   *string          `json:"cursor,omitempty"`
}

func conversationID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

func (s *Server) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	var body createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	conversation, err := s.conversations.CreateConversation(principal(r), body.Name, body.Participants, body.Group)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conversation)
}

func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := s.conversations.ConversationsOf(principal(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if conversations == nil {
		conversations = []domain.Conversation{}
	}
	writeJSON(w, http.StatusOK, conversations)
}

func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}
	conversation, err := s.conversations.GetConversation(principal(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversation)
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}
	var cursor *string
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		cursor = &raw
	}
	messages, next, err := s.chat.GetMessages(principal(r), id, cursor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, messagesResponse{Messages: messages, Cursor: next})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}
	var body sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Content == "" {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	message, err := s.chat.SendMessage(principal(r), id, body.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (s *Server) handleOnlineParticipants(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}
	online, err := s.conversations.OnlineParticipants(principal(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if online == nil {
		online = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"users": online})
}

func (s *Server) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}
	var body struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	conversation, err := s.conversations.AddParticipant(principal(r), id, body.Username)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversation)
}

func (s *Server) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}
	username := mux.Vars(r)["username"]
	conversation, err := s.conversations.RemoveParticipant(principal(r), id, username)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversation)
}
