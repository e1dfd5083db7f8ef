package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	achievementdto "focusforge/internal/modules/achievement/dto"
	rewardsdto "focusforge/internal/modules/rewards/dto"
	sessiondto "focusforge/internal/modules/session/dto"
	shopdto "focusforge/internal/modules/shop/dto"
	apperrors "focusforge/internal/platform/errors"
	uistate "focusforge/internal/ui/state"
	"focusforge/internal/ui/theme"
	"focusforge/internal/ui/views/achievementsview"
	"focusforge/internal/ui/views/shopview"
	"focusforge/internal/ui/views/statsview"
	"focusforge/internal/ui/views/timerview"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type sessionPort interface {
	Start(ctx context.Context, durationSeconds int) (sessiondto.StartOutput, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stop(ctx context.Context) (sessiondto.OutcomeOutput, error)
	ReportInput(ctx context.Context, target string) (bool, error)
	Reset(ctx context.Context) error
	Status(ctx context.Context) (sessiondto.TimerView, error)
	Subscribe(listener func(sessiondto.Event)) func()
	SetSafePredicate(safe func(target string) bool)
}

type rewardsPort interface {
	Snapshot(ctx context.Context) (rewardsdto.LedgerOutput, error)
	SubscribeChange(listener func()) func()
}

type achievementPort interface {
	List(ctx context.Context) ([]achievementdto.DefinitionOutput, error)
}

type shopPort interface {
	ListItems(ctx context.Context) ([]shopdto.ItemOutput, error)
	Purchase(ctx context.Context, itemID string) (shopdto.PurchaseOutput, error)
}

type settingsPort interface {
	Load() uistate.Settings
	Save(settings uistate.Settings)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabStats
	tabAchievements
	tabShop
	tabCount
)

var tabLabels = [tabCount]string{"Timer", "Stats", "Achievements", "Shop"}

// ─── async messages ──────────────────────────────────────────────────────────

type sessionEventMsg struct {
	event sessiondto.Event
}

type ledgerChangedMsg struct{}

type snapshotLoadedMsg struct {
	snapshot rewardsdto.LedgerOutput
	err      error
}

type definitionsLoadedMsg struct {
	defs []achievementdto.DefinitionOutput
	err  error
}

type itemsLoadedMsg struct {
	items []shopdto.ItemOutput
	err   error
}

type purchaseDoneMsg struct {
	out shopdto.PurchaseOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Start  key.Binding
	Toggle key.Binding
	Abort  key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Buy    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch tab")),
		Start:  key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start session")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Abort:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "abort session")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "shorter")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "longer")),
		Buy:    key.NewBinding(key.WithKeys("b", "enter"), key.WithHelp("b", "buy item")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Start, k.Toggle, k.Abort, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Start, k.Toggle, k.Abort},
		{k.Up, k.Down, k.Left, k.Right, k.Buy},
		{k.Help, k.Quit},
	}
}

// safeTargets is the interactive zone handed to the interruption classifier:
// timer controls, navigation and view controls never break focus. Any other
// key or a mouse press during a running session is an interruption.
var safeTargets = map[string]bool{
	"key:tab": true, "key:shift+tab": true,
	"key:s": true, "key:enter": true, "key: ": true, "key:x": true,
	"key:up": true, "key:down": true, "key:left": true, "key:right": true,
	"key:k": true, "key:j": true, "key:h": true, "key:l": true, "key:b": true,
	"key:?": true, "key:q": true, "key:ctrl+c": true,
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	session      sessionPort
	rewards      rewardsPort
	achievements achievementPort
	shop         shopPort
	settings     settingsPort

	keys    keyMap
	help    help.Model
	tab     tabID
	prefs   uistate.Settings
	events  chan sessiondto.Event
	changes chan struct{}

	timerView       timerview.Model
	statsView       statsview.Model
	achievementView achievementsview.Model
	shopView        shopview.Model

	status string
	width  int
	height int
}

func NewModel(session sessionPort, rewards rewardsPort, achievements achievementPort, shop shopPort, settings settingsPort) *Model {
	m := &Model{
		session:         session,
		rewards:         rewards,
		achievements:    achievements,
		shop:            shop,
		settings:        settings,
		keys:            newKeyMap(),
		help:            help.New(),
		events:          make(chan sessiondto.Event, 64),
		changes:         make(chan struct{}, 1),
		timerView:       timerview.New(),
		statsView:       statsview.New(),
		achievementView: achievementsview.New(),
		shopView:        shopview.New(),
	}
	m.prefs = settings.Load()
	theme.Apply(m.prefs.Theme)
	m.timerView.SelectPreset(m.prefs.LastDurationSeconds)

	session.SetSafePredicate(func(target string) bool { return safeTargets[target] })
	session.Subscribe(func(ev sessiondto.Event) {
		select {
		case m.events <- ev:
		default: // drop rather than block the tick loop
		}
	})
	rewards.SubscribeChange(func() {
		select {
		case m.changes <- struct{}{}:
		default: // a pending refresh already covers this change
		}
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), m.waitForChange(), m.loadSnapshot(), m.loadDefinitions(), m.loadItems())
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return sessionEventMsg{event: <-m.events}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return ledgerChangedMsg{}
	}
}

func (m *Model) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.rewards.Snapshot(context.Background())
		return snapshotLoadedMsg{snapshot: snapshot, err: err}
	}
}

func (m *Model) loadDefinitions() tea.Cmd {
	return func() tea.Msg {
		defs, err := m.achievements.List(context.Background())
		return definitionsLoadedMsg{defs: defs, err: err}
	}
}

func (m *Model) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.shop.ListItems(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m *Model) purchase(itemID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.shop.Purchase(context.Background(), itemID)
		return purchaseDoneMsg{out: out, err: err}
	}
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		inner := msg.Width - 8
		m.timerView.SetSize(inner, msg.Height-8)
		m.statsView.SetSize(inner, msg.Height-8)
		m.achievementView.SetSize(inner, msg.Height-8)
		m.shopView.SetSize(inner, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Mouse presses are never part of the safe zone.
		interrupted, _ := m.session.ReportInput(context.Background(), fmt.Sprintf("mouse:%d,%d", msg.X, msg.Y))
		if interrupted {
			m.status = "Interruption! The house came down."
		}
		return m, nil

	case sessionEventMsg:
		return m.handleSessionEvent(msg.event)

	case ledgerChangedMsg:
		// The ledger emitted a change; re-pull everything derived from it.
		return m, tea.Batch(m.waitForChange(), m.loadSnapshot(), m.loadItems())

	case snapshotLoadedMsg:
		if msg.err == nil {
			m.statsView.SetSnapshot(msg.snapshot)
			m.achievementView.SetStates(msg.snapshot.Achievements)
		}
		return m, nil

	case definitionsLoadedMsg:
		if msg.err == nil {
			m.achievementView.SetDefinitions(msg.defs)
		}
		return m, nil

	case itemsLoadedMsg:
		if msg.err == nil {
			m.shopView.SetItems(msg.items)
		}
		return m, nil

	case purchaseDoneMsg:
		return m.handlePurchaseDone(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Every key goes through the classifier first; it decides whether this
	// is an interruption based on timer state and the safe zone.
	interrupted, _ := m.session.ReportInput(context.Background(), "key:"+msg.String())
	if interrupted {
		m.status = "Interruption! The house came down."
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		if msg.String() == "shift+tab" {
			m.tab = (m.tab - 1 + tabCount) % tabCount
		} else {
			m.tab = (m.tab + 1) % tabCount
		}
		return m, nil
	}

	switch m.tab {
	case tabTimer:
		return m.handleTimerKey(msg)
	case tabAchievements:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.achievementView.MoveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.achievementView.MoveCursor(1)
		}
	case tabShop:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.shopView.MoveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.shopView.MoveCursor(1)
		case key.Matches(msg, m.keys.Buy):
			if item, ok := m.shopView.Selected(); ok {
				return m, m.purchase(item.ID)
			}
		}
	}
	return m, nil
}

func (m *Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.timerView.CyclePreset(-1)
	case key.Matches(msg, m.keys.Right):
		m.timerView.CyclePreset(1)
	case key.Matches(msg, m.keys.Start):
		status := m.timerView.Status()
		if status == "completed" || status == "stopped" {
			_ = m.session.Reset(ctx)
		}
		seconds := m.timerView.SelectedSeconds()
		if _, err := m.session.Start(ctx, seconds); err != nil {
			if errors.Is(err, apperrors.ErrSessionActive) {
				return m, nil
			}
			m.status = "Session could not start."
		} else {
			m.status = ""
			m.timerView.SetOutcome(nil)
			if seconds != m.prefs.LastDurationSeconds {
				m.prefs.LastDurationSeconds = seconds
				m.settings.Save(m.prefs)
			}
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.timerView.Status() == "paused" {
			_ = m.session.Resume(ctx)
		} else {
			_ = m.session.Pause(ctx)
		}
	case key.Matches(msg, m.keys.Abort):
		_, _ = m.session.Stop(ctx)
	}
	return m, nil
}

func (m *Model) handleSessionEvent(ev sessiondto.Event) (tea.Model, tea.Cmd) {
	m.timerView.SetTimer(ev.Timer)
	cmds := []tea.Cmd{m.waitForEvent()}

	switch ev.Kind {
	case sessiondto.EventCompleted, sessiondto.EventInterrupted, sessiondto.EventStopped:
		// Ledger refreshes arrive through the change subscription once the
		// outcome is recorded; only the timer pane updates here.
		m.timerView.SetOutcome(ev.Outcome)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handlePurchaseDone(msg purchaseDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, apperrors.ErrItemOwned):
		m.shopView.SetMessage("Already owned.")
	case errors.Is(msg.err, apperrors.ErrItemLocked):
		m.shopView.SetMessage("Keep building to unlock this.")
	case msg.err != nil:
		m.shopView.SetMessage("Purchase failed.")
	case !msg.out.Purchased:
		m.shopView.SetMessage("Not enough coins.")
	default:
		m.shopView.SetMessage(fmt.Sprintf("Bought %s for %d coins.", msg.out.ItemID, msg.out.Price))
		// The coin balance refresh rides the ledger change event; ownership
		// lives in the game state, so the item list reloads here.
		return m, m.loadItems()
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m *Model) View() string {
	var tabs []string
	for i, label := range tabLabels {
		if tabID(i) == m.tab {
			tabs = append(tabs, theme.Hot.Render("["+label+"]"))
		} else {
			tabs = append(tabs, theme.Muted.Render(" "+label+" "))
		}
	}
	header := strings.Join(tabs, " ")

	var body string
	switch m.tab {
	case tabTimer:
		body = m.timerView.View()
	case tabStats:
		body = m.statsView.View()
	case tabAchievements:
		body = m.achievementView.View()
	case tabShop:
		body = m.shopView.View()
	}

	sections := []string{header, theme.PaneActive.Width(max(m.width-6, 20)).Render(body)}
	if m.status != "" {
		sections = append(sections, theme.Bad.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
