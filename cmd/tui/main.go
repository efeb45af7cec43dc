package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/stocktrail-app/stocktrail/cmd/tui/internal/view"
	"github.com/stocktrail-app/stocktrail/internal/config"
	"github.com/stocktrail-app/stocktrail/internal/database"
	"github.com/stocktrail-app/stocktrail/internal/inventory"
	invStore "github.com/stocktrail-app/stocktrail/internal/inventory/store"
	"github.com/stocktrail-app/stocktrail/internal/item"
	itemStore "github.com/stocktrail-app/stocktrail/internal/item/store"
	"github.com/stocktrail-app/stocktrail/internal/party"
	partyStore "github.com/stocktrail-app/stocktrail/internal/party/store"
	"github.com/stocktrail-app/stocktrail/internal/transfer"
	transferStore "github.com/stocktrail-app/stocktrail/internal/transfer/store"
)

type model struct {
	transferService  *transfer.Service
	inventoryService *inventory.Service
	partyService     *party.Service
	itemService      *item.Service
	username         string

	currentView View

	transfersView     view.TransfersModel
	discrepanciesView view.DiscrepanciesModel
	inventoryView     view.InventoryModel
}

type View int

const (
	ViewMenu          View = 0
	ViewTransfers     View = 1
	ViewDiscrepancies View = 2
	ViewInventory     View = 3
)

func initialModel() model {
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

	username := os.Getenv("STOCKTRAIL_USER")
	if username == "" {
		username = os.Getenv("USER")
	}

	partySvc := party.NewService(partyStore.New(db))
	itemSvc := item.NewService(itemStore.New(db))
	invSvc := inventory.NewService(invStore.New(db))
	transferSvc := transfer.NewService(transferStore.New(db), partySvc)

	return model{
		transferService:  transferSvc,
		inventoryService: invSvc,
		partyService:     partySvc,
		itemService:      itemSvc,
		username:         username,
		currentView:      ViewMenu,
		transfersView:    view.NewTransfersModel(transferSvc, partySvc, username),
		discrepanciesView: view.NewDiscrepanciesModel(
			invSvc, partySvc, itemSvc, username,
		),
		inventoryView: view.NewInventoryModel(invSvc, partySvc, itemSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTransfers
				m.transfersView = view.NewTransfersModel(m.transferService, m.partyService, m.username)

				return m, m.transfersView.Init()
			case "2":
				m.currentView = ViewDiscrepancies
				m.discrepanciesView = view.NewDiscrepanciesModel(
					m.inventoryService, m.partyService, m.itemService, m.username,
				)

				return m, m.discrepanciesView.Init()
			case "3":
				m.currentView = ViewInventory
				m.inventoryView = view.NewInventoryModel(m.inventoryService, m.partyService, m.itemService)

				return m, m.inventoryView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTransfers:
		var newModel tea.Model
		newModel, cmd = m.transfersView.Update(msg)
		m.transfersView = newModel.(view.TransfersModel)
	case ViewDiscrepancies:
		var newModel tea.Model
		newModel, cmd = m.discrepanciesView.Update(msg)
		m.discrepanciesView = newModel.(view.DiscrepanciesModel)
	case ViewInventory:
		var newModel tea.Model
		newModel, cmd = m.inventoryView.Update(msg)
		m.inventoryView = newModel.(view.InventoryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"StockTrail TUI\n\n" +
				"1. Transfers\n" +
				"2. Discrepancies\n" +
				"3. Inventory\n\n" +
				"q. Quit",
		)
	case ViewTransfers:
		return m.transfersView.View()
	case ViewDiscrepancies:
		return m.discrepanciesView.View()
	case ViewInventory:
		return m.inventoryView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
