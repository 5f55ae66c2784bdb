package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"bemali/internal/carousel"
	"bemali/internal/content"
	"bemali/internal/metrics"
	"bemali/internal/modeswitch"
	"bemali/internal/schedule"
	"bemali/internal/sheet"
	"bemali/internal/tagline"
)

// Fallback terminal size used before the first WindowSizeMsg (and in tests).
const (
	defaultWidth  = 80
	defaultHeight = 30
)

// Options configure the root model.
type Options struct {
	Site        *content.Site
	Mode        modeswitch.Mode
	Fetcher     *tagline.Fetcher // nil: every tagline is the fallback
	AutoAdvance time.Duration
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

// AppModel is the root model: it owns every piece of mutable page state and
// renders the current mode's content. Each piece of state has a single writer:
// the carousel index belongs to Carousel, the mode to Modes.
type AppModel struct {
	Site         *content.Site
	Modes        *modeswitch.Controller
	Carousel     *carousel.Controller
	Tagline      *tagline.Fetcher
	ServiceSheet sheet.Sheet[content.ServiceEntry]
	TeamSheet    sheet.Sheet[content.TeamMember]
	FAQ          sheet.Expander
	Focus        *FocusManager
	KeyHandler   *KeyHandler
	Theme        Theme

	faqCursor  int
	teamCursor int
	swipe      carousel.Tracker
	timers     schedule.Group
	interval   time.Duration

	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int

	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model showing opts.Mode.
func NewAppModel(opts Options) *AppModel {
	if opts.AutoAdvance <= 0 {
		opts.AutoAdvance = carousel.DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Fetcher == nil {
		opts.Fetcher = tagline.NewFetcher(nil, tagline.Options{Logger: opts.Logger, Metrics: opts.Metrics})
	}

	s := spinner.New()
	s.Spinner = spinner.Ellipsis

	ctx, cancel := context.WithCancel(context.Background())
	a := &AppModel{
		Site:       opts.Site,
		Modes:      modeswitch.New(opts.Mode),
		Tagline:    opts.Fetcher,
		Focus:      NewFocusManager(SectionCarousel, SectionTeam),
		KeyHandler: NewKeyHandler(newKeybindings()),
		Theme:      ThemeFor(opts.Mode),
		interval:   opts.AutoAdvance,
		viewport:   viewport.New(defaultWidth, defaultHeight),
		spinner:    s,
		ctx:        ctx,
		cancel:     cancel,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}
	a.Carousel = carousel.New(len(a.profile().Services))
	a.KeyHandler.Mode = opts.Mode
	a.timers.Add(a.Carousel.Slots()...)
	a.timers.Add(a.Modes.Slot())
	a.syncViewport()
	return a
}

// newKeybindings registers the page's key sequences.
func newKeybindings() *KeybindRegistry {
	quit := func() tea.Msg { return QuitMsg{} }
	toggle := func() tea.Msg { return ToggleModeMsg{} }
	refresh := func() tea.Msg { return RefreshTaglineMsg{} }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", quit, "Sair")
	reg.BindWithDesc("ctrl+c", quit, "Sair")
	reg.BindWithDesc("SPC q", quit, "Sair")
	reg.BindWithDesc("m", toggle, "Alternar perfil")
	reg.BindWithDescForMode("SPC p", toggle, "Perfil pessoal", []modeswitch.Mode{modeswitch.Institutional})
	reg.BindWithDescForMode("SPC i", toggle, "Perfil institucional", []modeswitch.Mode{modeswitch.Personal})
	reg.BindWithDesc("r", refresh, "Nova frase")
	reg.BindWithDesc("SPC r", refresh, "Nova frase")
	reg.BindWithDesc("SPC g c", func() tea.Msg { return FocusSectionMsg{Section: SectionCarousel} }, "Serviços")
	reg.BindWithDesc("SPC g t", func() tea.Msg { return FocusSectionMsg{Section: SectionTeam} }, "Equipe")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model: starts the auto-advance interval and the first tagline request.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		autoAdvanceCmd(a.interval, a.Carousel.Start()),
		a.requestTagline(),
	)
}

// Update implements tea.Model. Nothing changes after teardown.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.closed {
		return a, nil
	}
	cmd := a.update(msg)
	if !a.closed {
		a.syncViewport()
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.view()
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return nil
	case QuitMsg:
		a.Teardown()
		return tea.Quit
	case autoAdvanceMsg:
		return a.handleAutoAdvance(msg)
	case settleMsg:
		a.Carousel.Settle(msg.token)
		return nil
	case switchDoneMsg:
		return a.handleSwitchDone(msg)
	case taglineMsg:
		if a.Tagline.Resolve(msg.result) {
			outcome := tagline.OutcomeOK
			if msg.result.Fallback {
				outcome = tagline.OutcomeFallback
			}
			a.logger.Info("tagline resolved", zap.String("mode", msg.result.Request.Mode), zap.String("outcome", outcome))
		}
		return nil
	case spinner.TickMsg:
		if !a.Tagline.Loading() && !a.Modes.Switching() {
			return nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return cmd
	case ToggleModeMsg:
		return a.toggleMode()
	case RefreshTaglineMsg:
		if a.Modes.Switching() {
			return nil
		}
		return a.requestTagline()
	case FocusSectionMsg:
		a.Focus.SetFocus(msg.Section)
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	}
	return nil
}

// profile returns the content set of the mode on display.
func (a *AppModel) profile() *content.Profile {
	return a.Site.ProfileFor(a.Modes.Mode() == modeswitch.Personal)
}

// interactionBlocked reports whether auto-advance must hold still.
func (a *AppModel) interactionBlocked() bool {
	return a.sheetOpen() || a.Modes.Switching()
}

func (a *AppModel) sheetOpen() bool {
	return a.ServiceSheet.IsOpen() || a.TeamSheet.IsOpen()
}

func (a *AppModel) handleAutoAdvance(msg autoAdvanceMsg) tea.Cmd {
	rearm, settle, started := a.Carousel.AutoTick(msg.token, a.interactionBlocked())
	var cmds []tea.Cmd
	if rearm != 0 {
		cmds = append(cmds, autoAdvanceCmd(a.interval, rearm))
	}
	if started {
		a.metrics.CarouselAdvance(metrics.SourceAuto)
		cmds = append(cmds, settleCmd(settle))
	}
	return tea.Batch(cmds...)
}

// advance starts a manual transition; dropped while switching or mid-transition.
func (a *AppModel) advance(dir carousel.Direction, source string) tea.Cmd {
	if a.Modes.Switching() {
		return nil
	}
	tok, ok := a.Carousel.Advance(dir)
	if !ok {
		return nil
	}
	a.metrics.CarouselAdvance(source)
	return settleCmd(tok)
}

func (a *AppModel) toggleMode() tea.Cmd {
	req, ok := a.Modes.Toggle()
	if !ok {
		return nil
	}
	a.swipe.Abort()
	if req.ScrollTop {
		a.viewport.GotoTop()
	}
	a.logger.Info("mode switch started", zap.Stringer("target", req.Target))
	return tea.Batch(switchDoneCmd(req.Token), a.spinner.Tick)
}

func (a *AppModel) handleSwitchDone(msg switchDoneMsg) tea.Cmd {
	mode, ok := a.Modes.Complete(msg.token)
	if !ok {
		return nil
	}
	a.Carousel.Reset(len(a.profile().Services))
	a.closeSheets()
	a.teamCursor = 0
	a.Theme = ThemeFor(mode)
	a.KeyHandler.Mode = mode
	a.metrics.ModeSwitch(mode.String())
	a.logger.Info("mode switched", zap.Stringer("mode", mode))
	return a.requestTagline()
}

// requestTagline issues one tagline request for the current mode, superseding
// any request in flight.
func (a *AppModel) requestTagline() tea.Cmd {
	p := a.profile()
	req := a.Tagline.Begin(a.ctx, a.Modes.Mode().String(), p.Prompt, p.FallbackTagline)
	return tea.Batch(fetchTaglineCmd(a.Tagline, req), a.spinner.Tick)
}

// OpenService shows the service sheet for id, replacing any open sheet.
func (a *AppModel) OpenService(id string) bool {
	svc, ok := a.profile().Service(id)
	if !ok {
		return false
	}
	a.TeamSheet.Close()
	a.ServiceSheet.Open(svc)
	a.FAQ.Reset()
	a.faqCursor = 0
	return true
}

// OpenMember shows the team sheet for the i-th member, replacing any open sheet.
func (a *AppModel) OpenMember(i int) bool {
	team := a.profile().Team
	if i < 0 || i >= len(team) {
		return false
	}
	a.ServiceSheet.Close()
	a.TeamSheet.Open(team[i])
	return true
}

func (a *AppModel) closeSheets() {
	a.ServiceSheet.Close()
	a.TeamSheet.Close()
	a.FAQ.Reset()
	a.faqCursor = 0
}

// Teardown cancels every pending timer and the tagline request in flight.
// Messages arriving afterwards are ignored.
func (a *AppModel) Teardown() {
	if a.closed {
		return
	}
	pending := a.timers.Armed()
	a.timers.CancelAll()
	a.Carousel.Stop()
	a.Modes.Stop()
	a.Tagline.Cancel()
	a.cancel()
	a.closed = true
	a.logger.Info("page closed", zap.Strings("cancelled_timers", pending))
}

// Closed reports whether Teardown has run.
func (a *AppModel) Closed() bool { return a.closed }

func (a *AppModel) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// syncViewport fits the scrollable body between header and footer.
func (a *AppModel) syncViewport() {
	w, h := a.size()
	bodyHeight := h - lipgloss.Height(a.renderHeader(w)) - lipgloss.Height(a.renderFooter(w))
	a.viewport.Width = w
	a.viewport.Height = max(bodyHeight, 3)
	a.viewport.SetContent(a.renderBody(w))
}
