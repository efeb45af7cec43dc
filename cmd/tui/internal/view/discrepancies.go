package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/inventory"
	"github.com/stocktrail-app/stocktrail/internal/item"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

type discrepanciesState int

const (
	discrepanciesStateBrowse discrepanciesState = iota
	discrepanciesStateResolve
)

// DiscrepanciesModel lists unresolved MISSING and OVER_RECEIVED records
// and lets the operator close them out with an explanation. Resolution
// never touches quantities; the screen is an investigation log.
type DiscrepanciesModel struct {
	CommonModel
	invSvc   *inventory.Service
	partySvc *party.Service
	itemSvc  *item.Service
	username string

	state     discrepanciesState
	table     table.Model
	records   []*inventory.Record
	itemNames map[uuid.UUID]string
	form      *huh.Form

	loading bool
	err     error
	status  string

	formNotes string
}

func NewDiscrepanciesModel(invSvc *inventory.Service, partySvc *party.Service, itemSvc *item.Service, username string) DiscrepanciesModel {
	columns := []table.Column{
		{Title: "Created", Width: 12},
		{Title: "Type", Width: 14},
		{Title: "Item", Width: 24},
		{Title: "Location", Width: 20},
		{Title: "Qty", Width: 7},
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

	return DiscrepanciesModel{
		invSvc:   invSvc,
		partySvc: partySvc,
		itemSvc:  itemSvc,
		username: username,
		table:    t,
	}
}

func (m DiscrepanciesModel) Title() string { return "Discrepancies" }
func (m DiscrepanciesModel) ShortHelp() string {
	if m.state == discrepanciesStateResolve {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | enter: resolve | r: refresh"
}

func (m DiscrepanciesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DiscrepanciesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDiscrepanciesMsg:
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

	case resolveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Discrepancy resolved"
		}
		m.state = discrepanciesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == discrepanciesStateResolve {
		return m.updateResolve(msg)
	}

	return m.updateBrowse(msg)
}

func (m DiscrepanciesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "enter":
			return m.enterResolveMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DiscrepanciesModel) enterResolveMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return m, nil
	}

	m.formNotes = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("notes").
				Title("Resolution notes").
				Placeholder("what was found out").
				Value(&m.formNotes),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = discrepanciesStateResolve
	m.table.Blur()

	return m, m.form.Init()
}

func (m DiscrepanciesModel) updateResolve(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = discrepanciesStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.resolveCmd()
}

func (m DiscrepanciesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading discrepancies...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Resolve Discrepancy\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *DiscrepanciesModel) refreshTable() {
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
			FormatDate(rec.CreatedAt),
			string(rec.Status),
			itemName,
			location,
			FormatQuantity(rec.Quantity),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadDiscrepanciesMsg struct {
	records   []*inventory.Record
	itemNames map[uuid.UUID]string
	err       error
}

func (m DiscrepanciesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.invSvc.Records(ctx, inventory.RecordFilter{Unresolved: true})
		if err != nil {
			return loadDiscrepanciesMsg{err: err}
		}

		types, err := m.itemSvc.List(ctx)
		if err != nil {
			return loadDiscrepanciesMsg{err: err}
		}

		itemNames := make(map[uuid.UUID]string, len(types))
		for _, t := range types {
			itemNames[t.ID] = t.Name
		}

		return loadDiscrepanciesMsg{records: records, itemNames: itemNames}
	}
}

type resolveMsg struct {
	err error
}

func (m DiscrepanciesModel) resolveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return nil
	}

	id := m.records[idx].ID
	notes := m.formNotes

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.invSvc.ResolveDiscrepancy(ctx, id, m.username, notes)
		return resolveMsg{err: err}
	}
}
