package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-core/auth"
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/httpapi"
	"chat-core/internal"
	"chat-core/moderation"
	"chat-core/presence"
	"chat-core/repositories"
	"chat-core/runtime"
	"chat-core/runtime/workers"
	"chat-core/search"
	"chat-core/services"
	"chat-core/transport"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the HTTP server and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Databases (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = blugeWriter.Close()
	}()

	// 3. Repositories & search index
	userRepository := repositories.NewUserRepository(db)
	conversationRepository := repositories.NewConversationRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	friendRequestRepository := repositories.NewFriendRequestRepository(db)

	userIndex := search.NewUserIndex(blugeWriter, log)
	allUsers, err := userRepository.AllUsers()
	if err != nil {
		return fmt.Errorf("user scan failed: %w", err)
	}
	if err = userIndex.Rebuild(allUsers); err != nil {
		return fmt.Errorf("search index rebuild failed: %w", err)
	}

	// 4. Moderation (embedded blacklists)
	censored, err := runtime.NewCensoredLoader(runtime.CensoredFS).LoadAll("censored")
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	log.Info("Moderation dictionaries loaded",
		"words", len(censored.Words), "languages", censored.Languages)
	moderator, err := moderation.NewModerator(censored.Words, []rune(config.ModerationCharReplacement)[0], log)
	if err != nil {
		return fmt.Errorf("moderator init failed: %w", err)
	}

	// 5. Presence core
	closeCodes, err := domain.ParseCloseCodes(config.NormalCloseCodes)
	if err != nil {
		return fmt.Errorf("close code config invalid: %w", err)
	}
	if len(closeCodes) == 0 {
		closeCodes = domain.DefaultNormalCloseCodes
	}
	policy := domain.NewClosePolicy(closeCodes)

	registry := presence.NewSessionRegistry()
	subscriptions := presence.NewSubscriptionStore()
	broadcaster := presence.NewBroadcaster(log, registry, userRepository,
		conversationRepository, config.DeliveryBufferSize, config.MembershipCacheTTL)
	coordinator := presence.NewCoordinator(log, registry, subscriptions,
		userRepository, conversationRepository, broadcaster, policy, config.GracePeriod)

	validator := auth.NewJWTValidator()
	gate := presence.NewGate(log, validator, config.APIKey)

	// 6. Transport (websocket hub, optionally teed into NATS)
	hub := transport.NewHub(log, gate, coordinator, subscriptions, config.SendBufferSize)
	var delivery contract.ITransport = hub
	if config.NatsURL != "" {
		natsTransport, err := transport.NewNatsTransport(log, config.NatsURL, "chat-core")
		if err != nil {
			return fmt.Errorf("nats transport init failed: %w", err)
		}
		defer natsTransport.Close()
		delivery = transport.NewTee(hub, natsTransport)
	}

	// 7. Services
	authService := services.NewAuthService(userRepository, userIndex, coordinator, config.AuthTokenDuration)
	chatService := services.NewChatService(log, conversationRepository, messageRepository, &moderator, delivery)
	conversationService := services.NewConversationService(log, conversationRepository, broadcaster, coordinator, delivery)
	friendService := services.NewFriendService(log, friendRequestRepository, userRepository, conversationService, delivery)

	hub.SetSendHandler(func(sender string, conversationID uuid.UUID, body string) {
		if _, err := chatService.SendMessage(sender, conversationID, body); err != nil {
			log.Warn("Inbound message rejected", "sender", sender, "error", err)
		}
	})

	// 8. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 9. Supervision: delivery pool + heartbeat
	sup := workers.NewSupervisor(log).WithRestartInterval(config.RestartInterval)
	for i := 0; i < config.DeliveryWorkers; i++ {
		sup.Add(workers.NewDeliveryWorker(log, broadcaster.Jobs(), delivery))
	}
	sup.Add(workers.NewHeartbeatWorker(log, config.HeartbeatInterval))
	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	// 10. Debug server (metrics + keyspace inspector)
	internal.StartDebugServer(db, config.DebugPort, nil, func() map[string]any {
		return map[string]any{
			"online_users": len(registry.ActiveUsers()),
		}
	})

	// 11. HTTP server
	apiServer := httpapi.NewServer(log, authService, chatService, conversationService,
		friendService, userIndex, userRepository, validator, hub)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:    address,
		Handler: apiServer.Router(),
	}

	// Use an error channel to capture ListenAndServe() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 12. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 13. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
