package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-client/domain/event"
	"chat-client/internal"
	"chat-client/moderation"
	"chat-client/observability"
	"chat-client/repositories"
	"chat-client/rpc"
	"chat-client/runtime"
	"chat-client/runtime/workers"
	"chat-client/search"
	"chat-client/services"
	"chat-client/sink"
	"chat-client/transport/ws"
	"chat-client/ui"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the session lifecycle, and
// centralizes error reporting. Returning instead of calling os.Exit
// directly keeps every defer (database, index, socket) honored and the
// wiring testable.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	stats := observability.NewSessionStats(logger)

	// 2. Session storage (in-memory BadgerDB + Bluge index)
	// The server owns the durable history; everything here dies with the
	// process, so both stores run purely in memory.
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := search.NewIndex(logger, config.SearchLimit)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = index.Close()
	}()

	archive := repositories.NewArchive(db, logger, config.LimitMessages)

	// 3. Moderation
	censored, err := runtime.LoadCensoredWords()
	if err != nil {
		return exitConfig, fmt.Errorf("loading censored words: %w", err)
	}
	logger.Info("Censored dictionaries loaded",
		"words", len(censored.Words), "languages", censored.Languages)

	moderator, err := moderation.NewModerator(censored.Words, charReplacement, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("building moderator: %w", err)
	}

	// 4. Transport & RPC
	channel := ws.NewChannel(logger, config.ServerURL, config.SendBufferSize, stats)
	client := rpc.NewClient(logger, channel, config.CallTimeout, stats)
	channel.Notify(client)

	events := make(chan event.DomainEvent, config.EventBufferSize)
	directory := services.NewDirectoryService(logger, client, events)
	directory.Bind()
	client.OnOpen(directory.HandleOpen)
	client.OnError(func(err error) {
		logger.Error("Transport error", "err", err)
	})
	client.OnClose(func() {
		logger.Info("Connection closed")
	})

	// 5. State replica & rendering
	console := ui.NewConsole(os.Stdout)
	userRegistry := runtime.NewUserRegistry(logger)
	userRegistry.Observe(console)
	conversationRegistry := runtime.NewConversationRegistry(logger, directory)
	conversationRegistry.Observe(console)

	dispatcher := workers.NewDispatcherWorker(logger, events,
		userRegistry, conversationRegistry, moderator, stats)
	dispatcher.NotifySession(console)
	dispatcher.AddSink(console)
	dispatcher.AddSink(sink.NewArchiveSink(archive, index))

	health := workers.NewHealthMonitoringWorker(logger, stats, config.MetricInterval)

	sup := workers.NewSupervisor(logger)
	sup.Add(dispatcher, health)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 7. Connect
	if err := channel.Connect(ctx); err != nil {
		sup.Stop()
		return exitRuntime, fmt.Errorf("connect failed: %w", err)
	}

	// 8. Interactive loop
	repl := NewREPL(logger, directory, conversationRegistry, console, archive, index, stats)
	replErr := make(chan error, 1)
	go func() {
		replErr <- repl.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-replErr:
		if err != nil {
			logger.Error("REPL error", "err", err)
		}
	}

	// 9. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	_ = channel.Close()
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
