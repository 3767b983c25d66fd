package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nullkernel/AI-Chatbot/chatbot/config"
	"github.com/Nullkernel/AI-Chatbot/chatbot/controllers"
	"github.com/Nullkernel/AI-Chatbot/chatbot/routes"
	"github.com/Nullkernel/AI-Chatbot/chatbot/services/llm"
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql"
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/dao"
	"github.com/Nullkernel/AI-Chatbot/chatbot/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	sessionDAO := dao.NewSessionDAO(db.DB)
	messageDAO := dao.NewMessageDAO(db.DB)
	statusDAO := dao.NewStatusDAO(db.DB)

	// Without a key the chat endpoint returns a configuration error; the
	// rest of the API stays up.
	var generator llm.Generator
	if cfg.LLMAPIKey != "" {
		client, err := llm.NewClient(cfg.LLMAPIKey, cfg.LLMBaseURL)
		if err != nil {
			logging.ErrorLogger.Error("llm client init error", zap.Error(err))
			os.Exit(1)
		}
		generator = client
	} else {
		logging.AppLogger.Warn("LLM_API_KEY not set, chat requests will fail")
	}

	chatCtrl := controllers.NewChatController(sessionDAO, messageDAO, generator, cfg.LLMAPIKey)
	statusCtrl := controllers.NewStatusController(statusDAO)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api := chi.NewRouter()
	api.Mount("/status", routes.StatusRoutes(statusCtrl))
	api.Mount("/chat", routes.ChatRoutes(chatCtrl))
	api.Mount("/", routes.HealthRoutes(healthCtrl))
	r.Mount("/api", api)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
