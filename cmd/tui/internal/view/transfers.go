package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/stocktrail-app/stocktrail/internal/party"
	"github.com/stocktrail-app/stocktrail/internal/transfer"
)

type transfersState int

const (
	transfersStateBrowse transfersState = iota
	transfersStateAccept
	transfersStateReject
)

type TransfersModel struct {
	CommonModel
	transferSvc *transfer.Service
	partySvc    *party.Service
	username    string

	state     transfersState
	table     table.Model
	transfers []*transfer.Transfer
	form      *huh.Form

	statusFilterIdx int
	filter          transfer.ListFilter

	loading bool
	err     error
	status  string

	// Form bindings. formQtys is index-aligned with the selected
	// transfer's items; blank means "not received".
	formQtys    []string
	formComment string
	formReason  string
}

func NewTransfersModel(transferSvc *transfer.Service, partySvc *party.Service, username string) TransfersModel {
	columns := []table.Column{
		{Title: "Batch", Width: 8},
		{Title: "Date", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "From", Width: 20},
		{Title: "To", Width: 20},
		{Title: "Items", Width: 6},
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

	return TransfersModel{
		transferSvc: transferSvc,
		partySvc:    partySvc,
		username:    username,
		table:       t,
		filter:      transfer.ListFilter{},
	}
}

func (m TransfersModel) Title() string { return "Transfers" }
func (m TransfersModel) ShortHelp() string {
	switch m.state {
	case transfersStateAccept, transfersStateReject:
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: accept | x: reject | s: status filter | r: refresh"
}

func (m TransfersModel) Init() tea.Cmd {
	return m.loadTransfersCmd()
}

func (m TransfersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTransfersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.transfers = msg.transfers
		m.err = nil
		m.refreshTable()
		return m, nil

	case transferActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.note
		}
		m.state = transfersStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadTransfersCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case transfersStateBrowse:
		return m.updateBrowse(msg)
	case transfersStateAccept, transfersStateReject:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m TransfersModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTransfersCmd()
		case "a":
			return m.enterAcceptMode()
		case "x":
			return m.enterRejectMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, m.loadTransfersCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransfersModel) selected() *transfer.Transfer {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.transfers) {
		return nil
	}

	return m.transfers[idx]
}

func (m TransfersModel) enterAcceptMode() (tea.Model, tea.Cmd) {
	t := m.selected()
	if t == nil {
		return m, nil
	}

	if t.Status != transfer.StatusPending {
		m.status = fmt.Sprintf("Transfer %d is already %s", t.BatchNumber, t.Status)
		return m, nil
	}

	m.formQtys = make([]string, len(t.Items))
	m.formComment = ""

	fields := make([]huh.Field, 0, len(t.Items)+1)

	for i, it := range t.Items {
		name := it.ItemTypeName
		if name == "" {
			name = it.ItemTypeID.String()
		}

		fields = append(fields, huh.NewInput().
			Key(it.ID.String()).
			Title(fmt.Sprintf("%s (claimed %d)", name, it.Quantity)).
			Placeholder("received quantity, blank = not received").
			Value(&m.formQtys[i]).
			Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return nil
				}

				if _, err := strconv.ParseInt(s, 10, 64); err != nil {
					return fmt.Errorf("must be a whole number")
				}

				return nil
			}))
	}

	fields = append(fields, huh.NewInput().
		Key("comment").
		Title("Comment").
		Value(&m.formComment))

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(55).WithShowHelp(false)
	m.state = transfersStateAccept
	m.table.Blur()

	return m, m.form.Init()
}

func (m TransfersModel) enterRejectMode() (tea.Model, tea.Cmd) {
	t := m.selected()
	if t == nil {
		return m, nil
	}

	if t.Status != transfer.StatusPending {
		m.status = fmt.Sprintf("Transfer %d is already %s", t.BatchNumber, t.Status)
		return m, nil
	}

	m.formReason = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("reason").
				Title("Rejection reason").
				Value(&m.formReason).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("reason cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = transfersStateReject
	m.table.Blur()

	return m, m.form.Init()
}

func (m TransfersModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transfersStateBrowse
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

	if m.state == transfersStateAccept {
		return m, m.acceptCmd()
	}

	return m, m.rejectCmd()
}

func (m TransfersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transfers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Pending", "Accepted", "Rejected"}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.form != nil {
		title := "Accept Transfer"
		if m.state == transfersStateReject {
			title = "Reject Transfer"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(60).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *TransfersModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.Status = new(transfer.StatusPending)
	case 2:
		m.filter.Status = new(transfer.StatusAccepted)
	case 3:
		m.filter.Status = new(transfer.StatusRejected)
	default:
		m.filter.Status = nil
	}
}

func (m *TransfersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.transfers))

	for _, t := range m.transfers {
		ctx, cancel := DbCtx()
		from := m.partySvc.Name(ctx, t.Sender)
		to := m.partySvc.Name(ctx, t.Receiver)
		cancel()

		rows = append(rows, table.Row{
			strconv.FormatInt(t.BatchNumber, 10),
			FormatDate(t.TransferDate),
			string(t.Status),
			from,
			to,
			strconv.Itoa(len(t.Items)),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadTransfersMsg struct {
	transfers []*transfer.Transfer
	err       error
}

func (m TransfersModel) loadTransfersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		transfers, err := m.transferSvc.List(ctx, m.filter)
		return loadTransfersMsg{transfers: transfers, err: err}
	}
}

type transferActionMsg struct {
	note string
	err  error
}

func (m TransfersModel) acceptCmd() tea.Cmd {
	t := m.selected()
	if t == nil {
		return nil
	}

	params := transfer.AcceptParams{
		Quantities:  make(map[uuid.UUID]int64),
		NotReceived: make(map[uuid.UUID]bool),
		ActingUser:  m.username,
		Comment:     m.formComment,
	}

	for i, it := range t.Items {
		qty := strings.TrimSpace(m.formQtys[i])
		if qty == "" {
			params.NotReceived[it.ID] = true
			continue
		}

		v, err := strconv.ParseInt(qty, 10, 64)
		if err != nil {
			continue
		}

		params.Quantities[it.ID] = v
	}

	id := t.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.transferSvc.Accept(ctx, id, params)
		if err != nil {
			return transferActionMsg{err: err}
		}

		note := fmt.Sprintf("Transfer %d accepted", result.BatchNumber)
		if result.Status == transfer.StatusRejected {
			note = fmt.Sprintf("Transfer %d rejected: %s", result.BatchNumber, result.RejectionReason)
		}

		return transferActionMsg{note: note}
	}
}

func (m TransfersModel) rejectCmd() tea.Cmd {
	t := m.selected()
	if t == nil {
		return nil
	}

	id := t.ID
	reason := m.formReason

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.transferSvc.Reject(ctx, id, reason, m.username)
		if err != nil {
			return transferActionMsg{err: err}
		}

		return transferActionMsg{note: fmt.Sprintf("Transfer %d rejected", result.BatchNumber)}
	}
}
