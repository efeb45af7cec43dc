package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/item"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

// InventoryModel browses live inventory records. 'v' cross-checks the
// selected row's stock against the movement ledger.
type InventoryModel struct {
	CommonModel
	invSvc   *inventory.Service
	partySvc *party.Service
	itemSvc  *item.Service

	table     table.Model
	records   []*inventory.Record
	itemNames map[uuid.UUID]string

	statusFilterIdx int
	filter          inventory.RecordFilter

	loading bool
	err     error
	status  string
}

func NewInventoryModel(invSvc *inventory.Service, partySvc *party.Service, itemSvc *item.Service) InventoryModel {
	columns := []table.Column{
		{Title: "Location", Width: 22},
		{Title: "Item", Width: 26},
		{Title: "Qty", Width: 8},
		{Title: "Status", Width: 14},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return InventoryModel{
		invSvc:   invSvc,
		partySvc: partySvc,
		itemSvc:  itemSvc,
		table:    t,
	}
}

func (m InventoryModel) Title() string { return "Inventory" }
func (m InventoryModel) ShortHelp() string {
	return "Esc: back | v: validate history | s: status filter | r: refresh"
}

func (m InventoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInventoryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.itemNames = msg.itemNames
		m.err = nil
		m.refreshTable()
		return m, nil

	case validateMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("MISMATCH: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("History consistent: ledger %d = records %d",
				msg.report.LedgerQuantity, msg.report.RecordedQuantity)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "v":
			return m, m.validateCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 5
			m.applyFilter()
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InventoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading inventory...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Normal", "Missing", "Over-received", "Consumed"}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *InventoryModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.Status = new(inventory.StatusNormal)
	case 2:
		m.filter.Status = new(inventory.StatusMissing)
	case 3:
		m.filter.Status = new(inventory.StatusOverReceived)
	case 4:
		m.filter.Status = new(inventory.StatusConsumed)
	default:
		m.filter.Status = nil
	}
}

func (m *InventoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.records))

	for _, rec := range m.records {
		ctx, cancel := DbCtx()
		location := m.partySvc.Name(ctx, rec.Location)
		cancel()

		itemName := m.itemNames[rec.ItemTypeID]
		if itemName == "" {
			itemName = rec.ItemTypeID.String()
		}

		rows = append(rows, table.Row{
			location,
			itemName,
			FormatQuantity(rec.Quantity),
			string(rec.Status),
			FormatDate(rec.CreatedAt),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadInventoryMsg struct {
	records   []*inventory.Record
	itemNames map[uuid.UUID]string
	err       error
}

func (m InventoryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.invSvc.Records(ctx, m.filter)
		if err != nil {
			return loadInventoryMsg{err: err}
		}

		types, err := m.itemSvc.List(ctx)
		if err != nil {
			return loadInventoryMsg{err: err}
		}

		itemNames := make(map[uuid.UUID]string, len(types))
		for _, t := range types {
			itemNames[t.ID] = t.Name
		}

		return loadInventoryMsg{records: records, itemNames: itemNames}
	}
}

type validateMsg struct {
	report *inventory.HistoryReport
	err    error
}

func (m InventoryModel) validateCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return nil
	}

	rec := m.records[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.invSvc.ValidateHistory(ctx, rec.Location, rec.ItemTypeID)
		return validateMsg{report: report, err: err}
	}
}
