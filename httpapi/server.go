package httpapi

import (
	"log/slog"
	"net/http"

	"chat-core/contract"
	"chat-core/search"
	"chat-core/services"
	"chat-core/transport"

	"github.com/gorilla/mux"
)

// Server exposes the REST surface plus the websocket upgrade endpoint.
type Server struct {
	log           *slog.Logger
	auth          services.IAuthService
	chat          services.IChatService
	conversations services.IConversationService
	friends       services.IFriendService
	index         search.IUserIndex
	users         contract.IUserStore
	validator     contract.IAuthValidator
	hub           *transport.Hub
}

func NewServer(
	log *slog.Logger,
	auth services.IAuthService,
	chat services.IChatService,
	conversations services.IConversationService,
	friends services.IFriendService,
	index search.IUserIndex,
	users contract.IUserStore,
	validator contract.IAuthValidator,
	hub *transport.Hub,
) *Server {
	return &Server{
		log:           log,
		auth:          auth,
		chat:          chat,
		conversations: conversations,
		friends:       friends,
		index:         index,
		users:         users,
		validator:     validator,
		hub:           hub,
	}
}

// Router wires every route. Authenticated routes go through the bearer
// middleware; the websocket endpoint does its own admission check.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)

	r.HandleFunc("/ws", s.hub.ServeWS)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.requireAuth)

	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	api.HandleFunc("/users/online", s.handleOnlineUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/search", s.handleSearchUsers).Methods(http.MethodGet)

	api.HandleFunc("/conversations", s.handleListConversations).Methods(http.MethodGet)
	api.HandleFunc("/conversations", s.handleCreateConversation).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}", s.handleGetConversation).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/messages", s.handleGetMessages).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/messages", s.handleSendMessage).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}/online", s.handleOnlineParticipants).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/participants", s.handleAddParticipant).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}/participants/{username}", s.handleRemoveParticipant).Methods(http.MethodDelete)

	api.HandleFunc("/friends/requests", s.handleSendFriendRequest).Methods(http.MethodPost)
	api.HandleFunc("/friends/requests", s.handlePendingFriendRequests).Methods(http.MethodGet)
	api.HandleFunc("/friends/requests/{id}/accept", s.handleAcceptFriendRequest).Methods(http.MethodPost)
	api.HandleFunc("/friends/requests/{id}/decline", s.handleDeclineFriendRequest).Methods(http.MethodPost)

	return r
}
