package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bemali/internal/content"
	"bemali/internal/modeswitch"
	"bemali/internal/tagline"
)

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) Generate(context.Context, string, float32) (string, error) {
	return g.text, g.err
}

func newTestApp(t *testing.T, mode modeswitch.Mode, gen tagline.Generator) (*AppModel, tea.Model) {
	t.Helper()
	site, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	a := NewAppModel(Options{
		Site:    site,
		Mode:    mode,
		Fetcher: tagline.NewFetcher(gen, tagline.Options{}),
	})
	t.Cleanup(a.Teardown)
	return a, a.AsTeaModel()
}

// settle delivers the pending carousel settle timer.
func settle(t *testing.T, a *AppModel, m tea.Model) {
	t.Helper()
	tok := a.Carousel.Slots()[0].Current()
	if tok == 0 {
		t.Fatal("no transition pending")
	}
	m.Update(settleMsg{token: tok})
}

// finishSwitch delivers the pending mode switch timer.
func finishSwitch(t *testing.T, a *AppModel, m tea.Model) {
	t.Helper()
	tok := a.Modes.Slot().Current()
	if tok == 0 {
		t.Fatal("no switch pending")
	}
	m.Update(switchDoneMsg{token: tok})
}

func TestAppModel_ArrowKeysStepCarousel(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)

	m.Update(keyMsg("right"))
	if !a.Carousel.Transitioning() {
		t.Fatal("expected a transition after right")
	}
	// Input during the transition is ignored.
	m.Update(keyMsg("right"))
	settle(t, a, m)
	if a.Carousel.Index() != 1 {
		t.Errorf("index = %d, want 1", a.Carousel.Index())
	}

	m.Update(keyMsg("left"))
	settle(t, a, m)
	m.Update(keyMsg("left"))
	settle(t, a, m)
	if a.Carousel.Index() != 2 {
		t.Errorf("index = %d, want 2 after wrapping backwards", a.Carousel.Index())
	}
}

func TestAppModel_ToggleResetsCarousel(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	for range 2 {
		m.Update(keyMsg("right"))
		settle(t, a, m)
	}
	if a.Carousel.Index() != 2 {
		t.Fatalf("index = %d, want 2", a.Carousel.Index())
	}

	_, cmd := m.Update(keyMsg("m"))
	if cmd == nil {
		t.Fatal("m should produce a command")
	}
	m.Update(cmd())
	if !a.Modes.Switching() {
		t.Fatal("expected switching after m")
	}
	if !strings.Contains(m.View(), "Carregando perfil pessoal") {
		t.Errorf("expected loading overlay, got:\n%s", m.View())
	}

	finishSwitch(t, a, m)
	if a.Modes.Mode() != modeswitch.Personal {
		t.Fatalf("mode = %v, want personal", a.Modes.Mode())
	}
	if a.Carousel.Index() != 0 || a.Carousel.Len() != 8 {
		t.Errorf("carousel = %d/%d, want 0/8", a.Carousel.Index(), a.Carousel.Len())
	}
	if a.Theme.Mode != modeswitch.Personal || a.KeyHandler.Mode != modeswitch.Personal {
		t.Error("theme and key bindings should follow the new mode")
	}
}

func TestAppModel_DoubleToggleFlipsOnce(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)

	m.Update(ToggleModeMsg{})
	first := a.Modes.Slot().Current()
	m.Update(ToggleModeMsg{})
	if a.Modes.Slot().Current() != first {
		t.Fatal("second toggle during a switch should be dropped")
	}

	finishSwitch(t, a, m)
	if a.Modes.Mode() != modeswitch.Personal {
		t.Errorf("mode = %v, want personal", a.Modes.Mode())
	}
	if a.Modes.Switching() {
		t.Error("switch should be over")
	}
}

func TestAppModel_SwitchToInstitutionalScrollsToTop(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Personal, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	a.viewport.SetYOffset(4)
	if a.viewport.YOffset == 0 {
		t.Fatal("expected page to be scrollable")
	}

	m.Update(ToggleModeMsg{})
	if a.viewport.YOffset != 0 {
		t.Errorf("YOffset = %d, want 0 before the switch completes", a.viewport.YOffset)
	}
	if a.Modes.Mode() != modeswitch.Personal {
		t.Error("mode should flip only after the delay")
	}
}

func TestAppModel_InputIgnoredWhileSwitching(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	m.Update(ToggleModeMsg{})

	m.Update(keyMsg("right"))
	if a.Carousel.Transitioning() {
		t.Error("carousel should not move during a switch")
	}
	m.Update(keyMsg("enter"))
	if a.sheetOpen() {
		t.Error("sheets should not open during a switch")
	}
}

func TestAppModel_SwipeAdvancesOnce(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)

	m.Update(tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	settle(t, a, m)
	if a.Carousel.Index() != 1 {
		t.Errorf("index = %d, want 1 after a left swipe", a.Carousel.Index())
	}

	// A short drag is not a swipe.
	m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if a.Carousel.Transitioning() {
		t.Error("drag within threshold should not advance")
	}
}

func TestAppModel_ServiceSheetReplacesSelection(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)

	m.Update(keyMsg("enter"))
	svc, ok := a.ServiceSheet.Selection()
	if !ok || svc.ID != "psicologia" {
		t.Fatalf("selection = %q, %v; want psicologia", svc.ID, ok)
	}

	if !a.OpenService("casal") {
		t.Fatal("OpenService(casal) failed")
	}
	svc, _ = a.ServiceSheet.Selection()
	if svc.ID != "casal" {
		t.Errorf("selection = %q, want casal", svc.ID)
	}
	if !strings.Contains(m.View(), "Terapia de Casal") {
		t.Error("sheet should show the replaced selection")
	}

	m.Update(keyMsg("esc"))
	if a.ServiceSheet.IsOpen() {
		t.Error("esc should close the sheet")
	}
	if last, ok := a.ServiceSheet.Last(); !ok || last.ID != "casal" {
		t.Error("closed sheet should keep its last selection")
	}
}

func TestAppModel_FAQExpandsInline(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	a.OpenService("psicologia")
	svc, _ := a.ServiceSheet.Selection()
	first := svc.Detail.FAQ[0]

	m.Update(keyMsg("enter"))
	if !a.FAQ.IsOpen(first.ID) {
		t.Fatal("enter should expand the FAQ item under the cursor")
	}
	if !strings.Contains(m.View(), "▾") {
		t.Error("expanded item should be marked")
	}

	m.Update(keyMsg("j"))
	m.Update(keyMsg("enter"))
	if !a.FAQ.IsOpen(svc.Detail.FAQ[1].ID) || !a.FAQ.IsOpen(first.ID) {
		t.Error("items expand independently")
	}
}

func TestAppModel_BackdropClickClosesSheet(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	a.OpenService("neuro")

	// Inside the panel: stays open.
	m.Update(tea.MouseMsg{X: 50, Y: 59, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !a.ServiceSheet.IsOpen() {
		t.Fatal("click on the sheet should not close it")
	}

	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.ServiceSheet.IsOpen() {
		t.Error("click on the backdrop should close the sheet")
	}
}

func TestAppModel_TeamSheetWithoutDetail(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	m.Update(FocusSectionMsg{Section: SectionTeam})
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j")) // clamped at the last member
	m.Update(keyMsg("enter"))

	member, ok := a.TeamSheet.Selection()
	if !ok || member.Name != "Dra. Bárbara" {
		t.Fatalf("selection = %q, %v", member.Name, ok)
	}
	if !strings.Contains(m.View(), "Perfil completo em breve.") {
		t.Error("member without detail should show the placeholder")
	}
}

func TestAppModel_AutoAdvanceBlockedBySheet(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	m.Init()
	auto := a.Carousel.Slots()[1]

	a.OpenService("psicologia")
	m.Update(autoAdvanceMsg{token: auto.Current()})
	if a.Carousel.Transitioning() {
		t.Error("auto-advance should hold while a sheet is open")
	}
	if !auto.Armed() {
		t.Fatal("interval should keep running")
	}

	m.Update(keyMsg("esc"))
	m.Update(autoAdvanceMsg{token: auto.Current()})
	if !a.Carousel.Transitioning() {
		t.Error("auto-advance should resume once the sheet is closed")
	}
}

func TestAppModel_TaglineFallback(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, stubGenerator{err: errors.New("quota")})
	p := a.profile()

	req := a.Tagline.Begin(a.ctx, "institutional", p.Prompt, p.FallbackTagline)
	if !a.Tagline.Loading() {
		t.Fatal("expected loading")
	}
	m.Update(fetchTaglineCmd(a.Tagline, req)())
	if a.Tagline.Loading() {
		t.Error("loading should clear after the fallback")
	}
	if a.Tagline.Text() != p.FallbackTagline {
		t.Errorf("text = %q", a.Tagline.Text())
	}
}

func TestAppModel_StaleTaglineDropped(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, stubGenerator{text: "Aqui você é ouvido."})
	p := a.profile()

	stale := a.Tagline.Begin(a.ctx, "institutional", p.Prompt, p.FallbackTagline)
	staleMsg := fetchTaglineCmd(a.Tagline, stale)()
	current := a.Tagline.Begin(a.ctx, "personal", "outro", "reserva")

	m.Update(staleMsg)
	if !a.Tagline.Loading() || a.Tagline.Text() != "" {
		t.Fatal("superseded result should be dropped")
	}

	m.Update(fetchTaglineCmd(a.Tagline, current)())
	if a.Tagline.Text() != "Aqui você é ouvido." {
		t.Errorf("text = %q", a.Tagline.Text())
	}
}

func TestAppModel_TeardownIgnoresLateTimers(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	m.Init()
	m.Update(keyMsg("right"))
	settleTok := a.Carousel.Slots()[0].Current()
	autoTok := a.Carousel.Slots()[1].Current()
	m.Update(ToggleModeMsg{})
	switchTok := a.Modes.Slot().Current()

	a.Teardown()
	if got := a.timers.Armed(); len(got) != 0 {
		t.Errorf("timers still armed after teardown: %v", got)
	}

	m.Update(settleMsg{token: settleTok})
	m.Update(autoAdvanceMsg{token: autoTok})
	m.Update(switchDoneMsg{token: switchTok})
	if a.Carousel.Index() != 0 {
		t.Errorf("index = %d after teardown", a.Carousel.Index())
	}
	if a.Modes.Mode() != modeswitch.Institutional {
		t.Error("mode should not change after teardown")
	}
	if a.Tagline.Loading() {
		t.Error("tagline request should be cancelled")
	}
	if m.View() != "" {
		t.Error("closed page renders nothing")
	}
}

func TestAppModel_QuitTearsDown(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	_, cmd = m.Update(cmd())
	if !a.Closed() {
		t.Error("quit should tear the page down")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestAppModel_View(t *testing.T) {
	a, m := newTestApp(t, modeswitch.Institutional, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 200})
	a.Tagline.Cancel()

	view := m.View()
	for _, want := range []string{
		"BEM ALI",
		"JK SHOPPING",
		"Psicologia Clínica",
		"1/3",
		"Cuidar de você é o nosso propósito.",
		"Unimed • Amil • SulAmérica ...",
		"CVV 188",
		"Dra. Mara Magalhães",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m.Update(keyMsg("right"))
	if strings.Contains(m.View(), "Psicologia Clínica") {
		t.Error("tile should be blurred while transitioning")
	}
	settle(t, a, m)
	if !strings.Contains(m.View(), "Neuroavaliação") {
		t.Error("expected the next service after settling")
	}
}

func TestFocusManager(t *testing.T) {
	var changes []string
	f := NewFocusManager(SectionCarousel, SectionTeam)
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if f.Next() != SectionTeam || f.Next() != SectionCarousel {
		t.Error("Next should wrap")
	}
	if f.Prev() != SectionTeam {
		t.Error("Prev should wrap")
	}
	if f.SetFocus("unknown") {
		t.Error("unknown section should be rejected")
	}
	if len(changes) != 3 {
		t.Errorf("changes = %v", changes)
	}
}
