package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	catalogdto "grindlock/internal/modules/catalog/dto"
	enforcedto "grindlock/internal/modules/enforce/dto"
	historydto "grindlock/internal/modules/history/dto"
	"grindlock/internal/ui/theme"
)

// Each port is the minimal interface this dashboard requires.

type enforcePort interface {
	RunCheck(ctx context.Context, mode string) (enforcedto.DecisionOutput, error)
	NextTask(ctx context.Context, open bool) (enforcedto.GuidedTaskOutput, error)
	ForceUnblock(ctx context.Context) error
}

type historyPort interface {
	Recent(ctx context.Context, limit int) ([]historydto.CheckOutput, error)
}

type catalogPort interface {
	Summarize(ctx context.Context, done map[string]bool) (catalogdto.SummaryOutput, error)
}

const historyDepth = 8

// ─── async messages ──────────────────────────────────────────────────────────

type statusLoadedMsg struct {
	decision enforcedto.DecisionOutput
	err      error
}

type summaryLoadedMsg struct {
	summary catalogdto.SummaryOutput
	err     error
}

type historyLoadedMsg struct {
	checks []historydto.CheckOutput
	err    error
}

type nextOpenedMsg struct {
	task enforcedto.GuidedTaskOutput
	err  error
}

type unblockDoneMsg struct{ err error }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Refresh key.Binding
	Next    key.Binding
	Unblock key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Next:    key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "open next problem")),
		Unblock: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "force unblock")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Next},
		{k.Unblock},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: a single dashboard showing the
// current decision, today's progress, the next problem, and recent checks.
// All business logic stays behind the ports; every load is an async tea.Msg.
type Model struct {
	enforce enforcePort
	history historyPort
	catalog catalogPort

	decision    enforcedto.DecisionOutput
	hasDecision bool
	summary     catalogdto.SummaryOutput
	checks      []historydto.CheckOutput

	dailyBar progress.Model
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(enforce enforcePort, history historyPort, catalog catalogPort) Model {
	bar := progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green)))
	return Model{
		enforce:  enforce,
		history:  history,
		catalog:  catalog,
		dailyBar: bar,
		keys:     defaultKeys(),
		help:     help.New(),
		status:   "loading",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatusCmd(), m.loadHistoryCmd())
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		decision, err := m.enforce.RunCheck(context.Background(), "status")
		return statusLoadedMsg{decision: decision, err: err}
	}
}

func (m Model) loadSummaryCmd(completed map[string]bool) tea.Cmd {
	return func() tea.Msg {
		summary, err := m.catalog.Summarize(context.Background(), completed)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		checks, err := m.history.Recent(context.Background(), historyDepth)
		return historyLoadedMsg{checks: checks, err: err}
	}
}

func (m Model) openNextCmd() tea.Cmd {
	return func() tea.Msg {
		task, err := m.enforce.NextTask(context.Background(), true)
		return nextOpenedMsg{task: task, err: err}
	}
}

func (m Model) unblockCmd() tea.Cmd {
	return func() tea.Msg {
		return unblockDoneMsg{err: m.enforce.ForceUnblock(context.Background())}
	}
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.dailyBar.Width = min(m.width-12, 48)

	case statusLoadedMsg:
		if msg.err != nil {
			m.status = "progress unavailable: " + msg.err.Error()
			return m, nil
		}
		m.decision = msg.decision
		m.hasDecision = true
		m.status = "ready"
		completed := make(map[string]bool, len(msg.decision.CompletedSlugs))
		for _, slug := range msg.decision.CompletedSlugs {
			completed[slug] = true
		}
		return m, m.loadSummaryCmd(completed)

	case summaryLoadedMsg:
		if msg.err != nil {
			m.status = "catalog summary: " + msg.err.Error()
		} else {
			m.summary = msg.summary
		}

	case historyLoadedMsg:
		if msg.err != nil {
			m.status = "history: " + msg.err.Error()
		} else {
			m.checks = msg.checks
		}

	case nextOpenedMsg:
		if msg.err != nil {
			m.status = "next problem: " + msg.err.Error()
		} else {
			m.status = "opened " + msg.task.Title
		}

	case unblockDoneMsg:
		if msg.err != nil {
			m.status = "unblock failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "block removed"
		return m, m.loadStatusCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Refresh):
			m.status = "refreshing"
			return m, tea.Batch(m.loadStatusCmd(), m.loadHistoryCmd())
		case key.Matches(msg, m.keys.Next):
			m.status = "opening next problem"
			return m, m.openNextCmd()
		case key.Matches(msg, m.keys.Unblock):
			m.status = "removing block"
			return m, m.unblockCmd()
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("grindlock"))
	b.WriteString("\n\n")
	b.WriteString(m.decisionPane())
	b.WriteString("\n")
	b.WriteString(m.progressPane())
	b.WriteString("\n")
	b.WriteString(m.historyPane())
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(m.status))
	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return theme.App.Render(b.String())
}

func (m Model) decisionPane() string {
	if !m.hasDecision {
		return theme.Pane.Render(theme.Muted.Render("checking progress..."))
	}
	d := m.decision

	var state string
	if d.BlockActive {
		state = theme.Blocked.Render("BLOCKED")
	} else if d.Delta == 0 {
		state = theme.Good.Render("GOAL MET")
	} else {
		state = theme.Hot.Render(fmt.Sprintf("%d TO GO", d.Delta))
	}

	lines := []string{
		state,
		fmt.Sprintf("today %d · yesterday %d", d.Today, d.Yesterday),
	}
	if d.GuidedTask != nil {
		lines = append(lines, theme.Muted.Render("next: ")+d.GuidedTask.Title)
	}
	return theme.PaneActive.Render(strings.Join(lines, "\n"))
}

func (m Model) progressPane() string {
	if !m.hasDecision {
		return ""
	}
	target := m.decision.Today + m.decision.Delta
	ratio := 1.0
	if target > 0 {
		ratio = float64(m.decision.Today) / float64(target)
	}
	lines := []string{
		theme.Title.Render("Today"),
		m.dailyBar.ViewAs(ratio),
	}
	if m.summary.Total > 0 {
		lines = append(lines, theme.Muted.Render(
			fmt.Sprintf("catalog %d/%d solved", m.summary.Done, m.summary.Total)))
	}
	return theme.Pane.Render(strings.Join(lines, "\n"))
}

func (m Model) historyPane() string {
	if len(m.checks) == 0 {
		return theme.Pane.Render(theme.Muted.Render("no checks recorded yet"))
	}
	lines := []string{theme.Title.Render("Recent checks")}
	for _, check := range m.checks {
		verdict := theme.Good.Render("ok")
		if check.ShouldBlock {
			verdict = theme.Blocked.Render("block")
		}
		lines = append(lines, fmt.Sprintf("%s  %-8s %s  today %d",
			theme.Muted.Render(check.At.Format("Jan 02 15:04")),
			check.Phase, verdict, check.Today))
	}
	return theme.Pane.Render(strings.Join(lines, "\n"))
}
