// cmd/chatbot/main.go
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"movie-chatbot/internal/booking"
	"movie-chatbot/internal/catalog"
	"movie-chatbot/internal/common/config"
	"movie-chatbot/internal/common/logger"
	"movie-chatbot/internal/dialogue"
	"movie-chatbot/internal/intent"
	"movie-chatbot/internal/nlp"
	"movie-chatbot/internal/nlp/wordnet"
	"movie-chatbot/internal/profile"
)

const banner = `
🎬 Movie Booking Chatbot
========================
Type 'help' to see what I can do, or 'bye' to leave.
`

func main() {
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.Wrap(zapLog)
	log.Info("starting chatbot", map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
	})

	store, closeStore := buildStore(cfg, log)
	defer closeStore()

	cat, err := buildCatalog(cfg)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	classifier := intent.NewClassifier(
		nlp.NewNormalizer(log),
		wordnet.NewGraph(),
		intent.DefaultLibrary(),
		cfg.Classifier.Threshold,
		log,
	)

	engine := booking.NewEngine(cat, log)
	manager := dialogue.NewManager(classifier, store, cat, engine, log)

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address, log)
	}

	session := manager.NewSession()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nChatbot: Goodbye!")
		os.Exit(0)
	}()

	fmt.Print(banner)
	fmt.Println("Chatbot:", manager.WelcomeMessage(session))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Println("Chatbot: I didn't catch that. Could you please say something?")
			continue
		}

		fmt.Println("Chatbot:", manager.ProcessInput(session, input))

		if session.LastIntent() == intent.Farewell {
			break
		}
	}

	log.Info("session ended", map[string]interface{}{
		"turns": len(session.History),
	})
}

func buildStore(cfg *config.Config, log logger.Logger) (profile.Store, func()) {
	if cfg.Profile.Backend == "redis" {
		rs := profile.NewRedisStore(cfg.Profile.Redis, cfg.Profile.Key)
		return rs, func() { _ = rs.Close() }
	}
	return profile.NewFileStore(cfg.Profile.Path, log), func() {}
}

func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Seed(), nil
	}
	return catalog.Load(cfg.Catalog.Path)
}

func serveMetrics(addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("metrics listener starting", map[string]interface{}{"address": addr})
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Warn("metrics listener stopped", nil)
	}
}
