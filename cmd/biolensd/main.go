// biolensd is a self-contained mock of the BioLens backend, serving the
// full HTTP contract from an in-memory store for offline viewer work.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/omaressa123/RAG-BioL/internal/logger"
	"github.com/omaressa123/RAG-BioL/internal/mockapi"
)

func main() {
	addr := flag.String("addr", ":5000", "Listen address")
	level := flag.String("level", "info", "Log level")
	logFile := flag.String("log-file", "", "Optional log file path")
	flag.Parse()

	if err := logger.Init(*level, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	handler := mockapi.NewHandler(mockapi.NewStore())
	handler.RegisterRoutes(r)

	logger.Info("mock backend listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
