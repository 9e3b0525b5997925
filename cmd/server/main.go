package main

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"todo-api/internal/config"
	httpx "todo-api/internal/http"
	"todo-api/internal/store"
)

func main() {
	logger := log.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	st, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}
	defer st.Close()

	srv := httpx.NewServer(st, logger)
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Infof("listening on %s", addr)
	logger.Fatal(http.ListenAndServe(addr, srv.R))
}
