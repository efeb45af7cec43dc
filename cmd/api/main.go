package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stocktrail-app/stocktrail/internal/config"
	"github.com/stocktrail-app/stocktrail/internal/database"
	"github.com/stocktrail-app/stocktrail/internal/export"
	stHttp "github.com/stocktrail-app/stocktrail/internal/http"
	exportHandler "github.com/stocktrail-app/stocktrail/internal/http/export"
	importHandler "github.com/stocktrail-app/stocktrail/internal/http/importcsv"
	inventoryHandler "github.com/stocktrail-app/stocktrail/internal/http/inventory"
	transferHandler "github.com/stocktrail-app/stocktrail/internal/http/transfer"
	"github.com/stocktrail-app/stocktrail/internal/importer"
	"github.com/stocktrail-app/stocktrail/internal/inventory"
	invStore "github.com/stocktrail-app/stocktrail/internal/inventory/store"
	"github.com/stocktrail-app/stocktrail/internal/item"
	itemStore "github.com/stocktrail-app/stocktrail/internal/item/store"
	"github.com/stocktrail-app/stocktrail/internal/party"
	partyStore "github.com/stocktrail-app/stocktrail/internal/party/store"
	"github.com/stocktrail-app/stocktrail/internal/transfer"
	transferStore "github.com/stocktrail-app/stocktrail/internal/transfer/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		partyService     = party.NewService(partyStore.New(db))
		itemService      = item.NewService(itemStore.New(db))
		inventoryService = inventory.NewService(invStore.New(db))
		transferService  = transfer.NewService(transferStore.New(db), partyService)
		importService    = importer.NewService(partyService, itemService, inventoryService)
		exportService    = export.NewService(inventoryService, partyService, itemService)
	)

	var (
		transferH  = transferHandler.NewHandler(transferService)
		inventoryH = inventoryHandler.NewHandler(inventoryService)
		importH    = importHandler.NewHandler(importService)
		exportH    = exportHandler.NewHandler(exportService)
	)

	router := stHttp.New(transferH, inventoryH, importH, exportH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
