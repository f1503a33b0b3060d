package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ellisvega/mlmuse/internal/export"
	"github.com/ellisvega/mlmuse/internal/mentor"
	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/saved"
)

// Thinking spinner — Braille dots animation (smooth)
var ThinkingSpinner = spinner.Spinner{
	Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	FPS:    time.Second / 12,
}

type screen int

const (
	screenForm screen = iota
	screenProposals
	screenDetail
	screenChat
	screenSaved
)

var difficulties = []mentor.Difficulty{mentor.Beginner, mentor.Intermediate, mentor.Advanced}

const (
	tabOverview = iota
	tabArchitecture
	tabStarterCode
	tabResources
)

var tabNames = []string{"Overview", "Architecture", "Starter Code", "Resources"}

// Messages from async provider calls back into the update loop.
type proposalsMsg struct {
	items []saved.Item
	err   error
}

type briefMsg struct {
	id      string
	writeup *mentor.Writeup
	err     error
}

type resourcesMsg struct {
	id   string
	list *mentor.ResourceList
	err  error
}

type chatReplyMsg struct {
	session string
	reply   string
}

type detailState struct {
	item             saved.Item
	tab              int
	writeup          *mentor.Writeup
	resources        *mentor.ResourceList
	briefErr         string
	resourcesErr     string
	loadingBrief     bool
	loadingResources bool
}

// proposalEntry adapts a saved.Item to the bubbles list.
type proposalEntry struct {
	item       saved.Item
	bookmarked bool
}

func (e proposalEntry) Title() string {
	mark := "  "
	if e.bookmarked {
		mark = SavedMarkStyle.Render("★ ")
	}
	return mark + e.item.Title
}

func (e proposalEntry) Description() string {
	desc := DifficultyStyle.Render(e.item.Difficulty)
	if len(e.item.Tags) > 0 {
		desc += "  " + TagStyle.Render(strings.Join(e.item.Tags, ", "))
	}
	return desc
}

func (e proposalEntry) FilterValue() string { return e.item.Title }

type Model struct {
	width, height int
	screen        screen

	mentor       *mentor.Mentor
	store        *saved.Store
	log          *zap.Logger
	sessionsDir  string
	providerName string
	modelName    string

	// Topic form
	topicInput textinput.Model
	diffIndex  int

	// Proposal list
	proposals  list.Model
	items      []saved.Item
	generating bool

	// Detail tabs
	detail   detailState
	viewport viewport.Model

	// Advisory chat
	chat        *mentor.ChatSession
	chatInput   textarea.Model
	chatWaiting bool
	menu        MenuModel

	// Saved collection
	savedList list.Model

	spinner  spinner.Model
	status   string
	renderer *glamour.TermRenderer

	ctx    context.Context
	cancel context.CancelFunc
}

func NewModel(mtr *mentor.Mentor, store *saved.Store, sessionsDir, providerName, modelName string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. bird migration, reinforcement learning, my city's air quality"
	ti.Focus()
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Ask your mentor..."
	ta.SetHeight(1)
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	sp := spinner.New()
	sp.Spinner = ThinkingSpinner
	sp.Style = SpinnerStyle

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = ItemSelectedStyle
	d.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(DimViolet)
	proposals := list.New(nil, d, 80, 20)
	proposals.Title = "Project proposals"
	proposals.SetShowHelp(false)
	proposals.SetShowStatusBar(false)
	proposals.Styles.Title = TitleStyle

	sd := list.NewDefaultDelegate()
	sd.Styles.SelectedTitle = ItemSelectedStyle
	sd.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(DimViolet)
	savedL := list.New(nil, sd, 80, 20)
	savedL.Title = "Saved proposals"
	savedL.SetShowHelp(false)
	savedL.SetShowStatusBar(false)
	savedL.Styles.Title = TitleStyle

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		screen:       screenForm,
		mentor:       mtr,
		store:        store,
		log:          log,
		sessionsDir:  sessionsDir,
		providerName: providerName,
		modelName:    modelName,
		topicInput:   ti,
		diffIndex:    1, // intermediate
		proposals:    proposals,
		savedList:    savedL,
		chatInput:    ta,
		spinner:      sp,
		viewport:     viewport.New(80, 20),
		renderer:     r,
		menu:         NewMenuModel(),
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// --- Async commands ---

func (m *Model) generateCmd(topic string, diff mentor.Difficulty) tea.Cmd {
	ctx := m.ctx
	mtr := m.mentor
	return func() tea.Msg {
		items, err := mtr.SuggestProjects(ctx, topic, diff)
		return proposalsMsg{items: items, err: err}
	}
}

func (m *Model) briefCmd(item saved.Item) tea.Cmd {
	ctx := m.ctx
	mtr := m.mentor
	return func() tea.Msg {
		w, err := mtr.Brief(ctx, item)
		return briefMsg{id: item.ID, writeup: w, err: err}
	}
}

func (m *Model) resourcesCmd(item saved.Item) tea.Cmd {
	ctx := m.ctx
	mtr := m.mentor
	return func() tea.Msg {
		rl, err := mtr.FindResources(ctx, item)
		return resourcesMsg{id: item.ID, list: rl, err: err}
	}
}

func (m *Model) chatCmd(text string) tea.Cmd {
	ctx := m.ctx
	session := m.chat
	return func() tea.Msg {
		// Send never fails; provider errors become an in-band apology turn.
		return chatReplyMsg{session: session.ID(), reply: session.Send(ctx, text)}
	}
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case proposalsMsg:
		m.generating = false
		if msg.err != nil {
			m.status = ErrorStyle.Render("✗ " + msg.err.Error())
			return m, nil
		}
		m.items = msg.items
		m.status = ""
		m.refreshProposalList()
		m.screen = screenProposals

	case briefMsg:
		// A reply for a proposal we already navigated away from is dropped.
		if msg.id != m.detail.item.ID {
			return m, nil
		}
		m.detail.loadingBrief = false
		if msg.err != nil {
			m.detail.briefErr = msg.err.Error()
		} else {
			m.detail.writeup = msg.writeup
		}
		m.renderDetail()

	case resourcesMsg:
		if msg.id != m.detail.item.ID {
			return m, nil
		}
		m.detail.loadingResources = false
		if msg.err != nil {
			m.detail.resourcesErr = msg.err.Error()
		} else {
			m.detail.resources = msg.list
		}
		m.renderDetail()

	case chatReplyMsg:
		if m.chat == nil || msg.session != m.chat.ID() {
			return m, nil
		}
		m.chatWaiting = false
		m.renderChat()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Forward everything else to the focused widget.
	var cmd tea.Cmd
	switch m.screen {
	case screenForm:
		m.topicInput, cmd = m.topicInput.Update(msg)
	case screenProposals:
		m.proposals, cmd = m.proposals.Update(msg)
	case screenDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	case screenChat:
		if !m.menu.active {
			m.chatInput, cmd = m.chatInput.Update(msg)
		}
	case screenSaved:
		m.savedList, cmd = m.savedList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) resize() {
	m.viewport.Width = m.width - 4
	m.viewport.Height = m.height - 10
	m.proposals.SetSize(m.width-4, m.height-10)
	m.savedList.SetSize(m.width-4, m.height-10)
	m.topicInput.Width = m.width - 10
	m.chatInput.SetWidth(m.width - 8)
	if m.width > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(m.width-8),
		)
		if err == nil {
			m.renderer = r
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.cancel()
		return m, tea.Quit
	}

	switch m.screen {
	case screenForm:
		return m.handleFormKey(msg)
	case screenProposals:
		return m.handleProposalsKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenChat:
		return m.handleChatKey(msg)
	case screenSaved:
		return m.handleSavedKey(msg)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancel()
		return m, tea.Quit
	case "tab", "right":
		m.diffIndex = (m.diffIndex + 1) % len(difficulties)
		return m, nil
	case "shift+tab", "left":
		m.diffIndex = (m.diffIndex + len(difficulties) - 1) % len(difficulties)
		return m, nil
	case "ctrl+s":
		m.refreshSavedList()
		m.screen = screenSaved
		return m, nil
	case "enter":
		topic := strings.TrimSpace(m.topicInput.Value())
		if topic == "" {
			m.status = ErrorStyle.Render("✗ Describe an interest area first")
			return m, nil
		}
		if m.generating {
			return m, nil
		}
		m.generating = true
		m.status = ""
		return m, tea.Batch(m.generateCmd(topic, difficulties[m.diffIndex]), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.topicInput, cmd = m.topicInput.Update(msg)
	return m, cmd
}

func (m Model) handleProposalsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.screen = screenForm
		m.status = ""
		return m, nil
	case "s":
		if entry, ok := m.proposals.SelectedItem().(proposalEntry); ok {
			m.toggleSaved(entry.item)
			m.refreshProposalList()
		}
		return m, nil
	case "ctrl+s":
		m.refreshSavedList()
		m.screen = screenSaved
		return m, nil
	case "enter":
		if entry, ok := m.proposals.SelectedItem().(proposalEntry); ok {
			return m.openDetail(entry.item)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.proposals, cmd = m.proposals.Update(msg)
	return m, cmd
}

func (m Model) openDetail(item saved.Item) (tea.Model, tea.Cmd) {
	m.detail = detailState{item: item, loadingBrief: true}
	m.screen = screenDetail
	m.status = ""
	m.renderDetail()
	// Architecture and starter code are fetched together up front; the
	// resource list waits until its tab is opened.
	return m, tea.Batch(m.briefCmd(item), m.spinner.Tick)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.screen = screenProposals
		return m, nil
	case "tab", "right", "l":
		m.detail.tab = (m.detail.tab + 1) % len(tabNames)
		return m.enterTab()
	case "shift+tab", "left", "h":
		m.detail.tab = (m.detail.tab + len(tabNames) - 1) % len(tabNames)
		return m.enterTab()
	case "1", "2", "3", "4":
		m.detail.tab = int(msg.String()[0] - '1')
		return m.enterTab()
	case "s":
		m.toggleSaved(m.detail.item)
		m.renderDetail()
		return m, nil
	case "c":
		m.chat = m.mentor.NewChat(m.detail.item, m.sessionsDir)
		m.chatInput.Reset()
		m.chatInput.Focus()
		m.screen = screenChat
		m.renderChat()
		return m, textarea.Blink
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) enterTab() (tea.Model, tea.Cmd) {
	m.renderDetail()
	if m.detail.tab == tabResources && m.detail.resources == nil &&
		!m.detail.loadingResources && m.detail.resourcesErr == "" {
		m.detail.loadingResources = true
		m.renderDetail()
		return m, tea.Batch(m.resourcesCmd(m.detail.item), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.active {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		if msg.String() == "enter" {
			if sel := m.menu.list.SelectedItem(); sel != nil {
				m.menu.active = false
				return m.handleSlashCommand(sel.(menuItem).Title())
			}
		}
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.screen = screenDetail
		m.renderDetail()
		return m, nil
	case "/":
		if m.chatInput.Value() == "" && !m.chatWaiting {
			m.menu.active = true
			m.menu.list.ResetSelected()
			m.menu.list.ResetFilter()
			return m, nil
		}
	case "enter":
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chatWaiting {
			return m, nil
		}
		m.chatInput.Reset()
		if strings.HasPrefix(text, "/") {
			return m.handleSlashCommand(text)
		}
		m.chatWaiting = true
		m.renderChat()
		return m, tea.Batch(m.chatCmd(text), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) handleSlashCommand(text string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(text)
	switch parts[0] {
	case "/help":
		m.status = SystemMsgStyle.Render("/save /export /compact /tokens /clear /back /quit — Esc returns to the proposal")
	case "/save":
		path, err := m.chat.Save()
		if err != nil {
			m.status = ErrorStyle.Render("✗ " + err.Error())
		} else {
			m.status = SuccessStyle.Render("✓ Saved to " + path)
		}
	case "/export":
		path := "mlmuse-chat.md"
		if len(parts) > 1 {
			path = parts[1]
		}
		if err := m.chat.Export(path); err != nil {
			m.status = ErrorStyle.Render("✗ " + err.Error())
		} else {
			m.status = SuccessStyle.Render("✓ Exported to " + path)
		}
	case "/compact":
		before := m.chat.EstimatedTokens()
		m.chat.Compact()
		m.status = SystemMsgStyle.Render(fmt.Sprintf("Compacted: ~%dk -> ~%dk tokens", before/1000, m.chat.EstimatedTokens()/1000))
		m.renderChat()
	case "/tokens":
		m.status = SystemMsgStyle.Render(fmt.Sprintf("~%dk tokens, %d messages", m.chat.EstimatedTokens()/1000, m.chat.Len()))
	case "/clear":
		m.chat.Clear()
		m.status = SystemMsgStyle.Render("Conversation cleared")
		m.renderChat()
	case "/back":
		m.screen = screenDetail
		m.renderDetail()
	case "/quit":
		m.cancel()
		return m, tea.Quit
	default:
		m.status = ErrorStyle.Render("Unknown command: " + parts[0])
	}
	return m, nil
}

func (m Model) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.screen = screenForm
		m.status = ""
		return m, nil
	case "d", "x":
		if entry, ok := m.savedList.SelectedItem().(proposalEntry); ok {
			m.store.Remove(entry.item.ID)
			m.status = SystemMsgStyle.Render("Removed " + entry.item.Title)
			m.refreshSavedList()
		}
		return m, nil
	case "e":
		path := "mlmuse-saved.md"
		if err := export.WriteMarkdown(m.store.List(), path); err != nil {
			m.status = ErrorStyle.Render("✗ " + err.Error())
		} else {
			m.status = SuccessStyle.Render("✓ Exported to " + path)
		}
		return m, nil
	case "enter":
		if entry, ok := m.savedList.SelectedItem().(proposalEntry); ok {
			return m.openDetail(entry.item)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.savedList, cmd = m.savedList.Update(msg)
	return m, cmd
}

// --- State helpers ---

func (m *Model) toggleSaved(item saved.Item) {
	if m.store.IsSaved(item.ID) {
		m.store.Remove(item.ID)
		m.status = SystemMsgStyle.Render("Removed from saved")
		return
	}
	item.SavedAt = time.Now().Format(time.RFC3339)
	if m.store.Add(item) {
		m.status = SuccessStyle.Render("✓ Saved")
	} else {
		m.status = ErrorStyle.Render("✗ Could not save (see log)")
	}
}

func (m *Model) refreshProposalList() {
	entries := make([]list.Item, len(m.items))
	for i, it := range m.items {
		entries[i] = proposalEntry{item: it, bookmarked: m.store.IsSaved(it.ID)}
	}
	m.proposals.SetItems(entries)
}

func (m *Model) refreshSavedList() {
	items := m.store.List()
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = proposalEntry{item: it, bookmarked: true}
	}
	m.savedList.SetItems(entries)
}

// --- Rendering ---

func (m *Model) markdown(s string) string {
	out, err := m.renderer.Render(s)
	if err != nil {
		return s
	}
	return out
}

func (m *Model) renderDetail() {
	d := &m.detail
	var body string

	switch d.tab {
	case tabOverview:
		md := fmt.Sprintf("# %s\n\n**Difficulty:** %s\n\n%s\n", d.item.Title, d.item.Difficulty, d.item.Summary)
		if len(d.item.Tags) > 0 {
			md += fmt.Sprintf("\nTags: %s\n", strings.Join(d.item.Tags, ", "))
		}
		if len(d.item.Datasets) > 0 {
			md += "\nDatasets:\n"
			for _, ds := range d.item.Datasets {
				md += "- " + ds + "\n"
			}
		}
		body = m.markdown(md)
	case tabArchitecture:
		switch {
		case d.loadingBrief:
			body = SystemMsgStyle.Render("Generating the write-up...")
		case d.briefErr != "":
			body = ErrorStyle.Render("✗ " + d.briefErr)
		case d.writeup != nil:
			body = m.markdown(d.writeup.Architecture)
		}
	case tabStarterCode:
		switch {
		case d.loadingBrief:
			body = SystemMsgStyle.Render("Generating the write-up...")
		case d.briefErr != "":
			body = ErrorStyle.Render("✗ " + d.briefErr)
		case d.writeup != nil:
			body = m.markdown(d.writeup.StarterCode)
		}
	case tabResources:
		switch {
		case d.loadingResources:
			body = SystemMsgStyle.Render("Searching for resources...")
		case d.resourcesErr != "":
			body = ErrorStyle.Render("✗ " + d.resourcesErr)
		case d.resources != nil:
			body = m.markdown(d.resources.Markdown)
			if len(d.resources.Sources) > 0 {
				var sb strings.Builder
				sb.WriteString("\n" + SubtitleStyle.Render("Grounded on:") + "\n")
				for _, src := range d.resources.Sources {
					sb.WriteString("  " + SourceStyle.Render(src.URL) + "  " + src.Title + "\n")
				}
				body += sb.String()
			}
		default:
			body = SystemMsgStyle.Render("Open this tab to search for resources.")
		}
	}

	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}

func (m *Model) renderChat() {
	var sb strings.Builder
	sb.WriteString(SubtitleStyle.Render("Advisory chat about: "+m.chat.Item().Title) + "\n\n")
	for _, msg := range m.chat.Messages() {
		switch msg.Role {
		case provider.RoleUser:
			sb.WriteString(StudentLabelStyle.Render("You") + "\n")
			sb.WriteString(msg.Content + "\n\n")
		case provider.RoleAssistant:
			sb.WriteString(MentorLabelStyle.Render("Mentor") + "\n")
			sb.WriteString(m.markdown(msg.Content) + "\n")
		}
	}
	if m.chatWaiting {
		sb.WriteString(m.spinner.View() + " Thinking...\n")
	}
	m.viewport.SetContent(sb.String())
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	header := m.header()

	var body string
	switch m.screen {
	case screenForm:
		body = m.formView()
	case screenProposals:
		if m.generating {
			body = fmt.Sprintf("\n  %s Generating proposals...\n", m.spinner.View())
		} else {
			body = m.proposals.View()
		}
	case screenDetail:
		body = m.tabBar() + "\n" + ViewportStyle.Render(m.viewport.View())
	case screenChat:
		chatView := ViewportStyle.Render(m.viewport.View()) + "\n" +
			InputBoxStyle.Width(m.width-4).Render("> "+m.chatInput.View())
		if m.menu.active {
			chatView += "\n" + m.menu.View()
		}
		body = chatView
	case screenSaved:
		body = m.savedList.View()
	}

	footer := HelpStyle.Render("  " + m.helpLine())
	if m.status != "" {
		footer = "  " + m.status + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) header() string {
	banner := BannerStyle.Render(Banner)
	line := SubtitleStyle.Render(fmt.Sprintf("  ML project mentor · %s / %s", m.providerName, m.modelName))
	return lipgloss.JoinVertical(lipgloss.Left, banner, line, "")
}

func (m Model) formView() string {
	var diffs []string
	for i, d := range difficulties {
		label := string(d)
		if i == m.diffIndex {
			diffs = append(diffs, ActiveTabStyle.Render(label))
		} else {
			diffs = append(diffs, TabStyle.Render(label))
		}
	}

	extra := ""
	if m.generating {
		extra = fmt.Sprintf("\n  %s Generating proposals...\n", m.spinner.View())
	}

	return fmt.Sprintf("\n  %s\n\n%s\n\n  %s\n  %s\n%s",
		TitleStyle.Render("What are you curious about?"),
		InputBoxStyle.Width(m.width-4).Render(m.topicInput.View()),
		SubtitleStyle.Render("Difficulty (Tab to change):"),
		lipgloss.JoinHorizontal(lipgloss.Top, diffs...),
		extra,
	)
}

func (m Model) tabBar() string {
	var tabs []string
	for i, name := range tabNames {
		if i == m.detail.tab {
			tabs = append(tabs, ActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, TabStyle.Render(name))
		}
	}
	mark := ""
	if m.store.IsSaved(m.detail.item.ID) {
		mark = "  " + SavedMarkStyle.Render("★ saved")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + mark
}

func (m Model) helpLine() string {
	switch m.screen {
	case screenForm:
		return "Enter: generate  •  Tab: difficulty  •  Ctrl+S: saved  •  Esc: quit"
	case screenProposals:
		return "Enter: open  •  s: save/unsave  •  Ctrl+S: saved  •  Esc: back"
	case screenDetail:
		return "Tab/1-4: tabs  •  s: save/unsave  •  c: chat  •  Esc: back"
	case screenChat:
		return "Enter: send  •  /: commands  •  Esc: back"
	case screenSaved:
		return "Enter: open  •  d: remove  •  e: export  •  Esc: back"
	}
	return ""
}
