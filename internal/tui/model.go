// Package tui is the terminal front end: an input field, a trigger and the
// weather panel, driven by bubbletea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-app/internal/models"
	"github.com/Nazarious-ucu/weather-app/internal/services/icon"
	"github.com/Nazarious-ucu/weather-app/internal/ui"
)

const inputCharLimit = 64

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.Weather, error)
}

type iconFetcher interface {
	Fetch(ctx context.Context, code string) (icon.Image, error)
}

// fetchedMsg carries a finished lookup back into the update loop.
type fetchedMsg struct {
	weather models.Weather
	err     error
}

// iconMsg reports whether the pictogram for code could be downloaded.
type iconMsg struct {
	code string
	ok   bool
}

// Model owns the widgets. They are only touched from Update.
type Model struct {
	ctx    context.Context
	svc    weatherGetterService
	icons  iconFetcher
	logger zerolog.Logger

	ctrl  *ui.Controller
	input textinput.Model
	spin  spinner.Model

	// iconCode is set once the current result's icon was downloaded.
	iconCode string
	quitting bool
}

func New(
	ctx context.Context,
	svc weatherGetterService,
	icons iconFetcher,
	iconTemplate string,
	logger zerolog.Logger,
) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. London"
	ti.CharLimit = inputCharLimit
	ti.Width = panelWidth - len(ui.InputLabel) - 2
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tempStyle

	return Model{
		ctx:    ctx,
		svc:    svc,
		icons:  icons,
		logger: logger,
		ctrl:   ui.NewController(iconTemplate),
		input:  ti,
		spin:   sp,
	}
}

func (m Model) State() ui.State { return m.ctrl.State() }

func (m Model) Panel() ui.Panel { return m.ctrl.View() }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case fetchedMsg:
		m.ctrl.Complete(msg.weather, msg.err)
		cmd := m.input.Focus()
		if msg.err == nil && msg.weather.Icon != "" {
			cmd = tea.Batch(cmd, m.fetchIcon(msg.weather.Icon))
		}
		return m, cmd

	case iconMsg:
		p := m.ctrl.View()
		if msg.ok && p.State == ui.StateResult && p.Icon == msg.code {
			m.iconCode = msg.code
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State() != ui.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.ctrl.DismissWarning()
		city, ok := m.ctrl.Submit(m.input.Value())
		if !ok {
			return m, nil
		}
		m.input.Blur()
		m.iconCode = ""
		return m, tea.Batch(m.spin.Tick, m.fetch(city))
	}

	if !m.ctrl.TriggerEnabled() {
		return m, nil
	}

	m.ctrl.DismissWarning()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// fetch runs the lookup off the update loop.
func (m Model) fetch(city string) tea.Cmd {
	svc, ctx, logger := m.svc, m.ctx, m.logger

	return func() tea.Msg {
		l := logger.With().Str("request_id", uuid.New().String()).Logger()

		w, err := svc.GetByCity(l.WithContext(ctx), city)
		if err != nil {
			l.Error().
				Str("city", city).
				Err(err).
				Msg("weather lookup failed")
		}
		return fetchedMsg{weather: w, err: err}
	}
}

// fetchIcon downloads the pictogram. A failure only hides the icon line.
func (m Model) fetchIcon(code string) tea.Cmd {
	icons, ctx, logger := m.icons, m.ctx, m.logger

	return func() tea.Msg {
		if _, err := icons.Fetch(ctx, code); err != nil {
			logger.Warn().
				Str("icon", code).
				Err(err).
				Msg("icon unavailable")
			return iconMsg{code: code}
		}
		return iconMsg{code: code, ok: true}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.ctrl.View()
	var b strings.Builder

	b.WriteString(titleStyle.Render(ui.Title))
	b.WriteString("\n\n")

	b.WriteString(ui.InputLabel + " " + m.input.View())
	b.WriteString("\n\n")

	if p.TriggerEnabled {
		b.WriteString(triggerStyle.Render(p.TriggerLabel))
	} else {
		b.WriteString(triggerDisabledStyle.Render(p.TriggerLabel))
	}
	b.WriteString("\n\n")

	if p.Warning != "" {
		b.WriteString(warningStyle.Render(ui.WarningTitle+": ") + p.Warning)
		b.WriteString("\n\n")
	}
	if p.Dialog != "" {
		b.WriteString(errorStyle.Render(ui.ErrorTitle+": ") + p.Dialog)
		b.WriteString("\n\n")
	}

	b.WriteString(panelStyle.Render(m.panelBody(p)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: get weather • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) panelBody(p ui.Panel) string {
	switch p.State {
	case ui.StateLoading:
		return m.spin.View() + " " + promptStyle.Render(p.Text)
	case ui.StateResult:
		lines := []string{
			cityStyle.Render(p.City),
			"",
			tempStyle.Render(p.Temperature),
			p.Description,
		}
		if p.Icon != "" && p.Icon == m.iconCode {
			lines = append(lines, "", iconGlyph(p.Icon)+" "+helpStyle.Render(p.IconURL))
		}
		return strings.Join(lines, "\n")
	case ui.StateError:
		return errorStyle.Render(p.Heading) + "\n\n" + p.Text
	default:
		return cityStyle.Render(p.Heading) + "\n\n" + promptStyle.Render(p.Text)
	}
}
