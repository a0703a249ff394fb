// Package tui is the terminal front end of the steps tracker. It follows the bubbletea
// model/update/view loop: every server round-trip is a tea.Cmd whose result comes back
// as a message, and the list on screen is only ever replaced from a fresh fetch.
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/limbo/stepcount/internal/api"
	"github.com/limbo/stepcount/internal/client"
	"github.com/limbo/stepcount/pkg/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	requiredFieldsMessage = "Both date and step count are required."
	wholeNumberMessage    = "Step count must be a whole number."
	unknownFetchMessage   = "An unknown error occurred while fetching steps."
	unknownSubmitMessage  = "An unknown submission error occurred."
)

const (
	fieldDate = iota
	fieldCount
	fieldsTotal
)

// StepsClient is the part of the API client the app needs.
type StepsClient interface {
	ListSteps(ctx context.Context) ([]api.StepResponse, error)
	LogSteps(ctx context.Context, date string, stepCount int) (*api.StepResponse, error)
}

type stepsLoadedMsg struct {
	steps []api.StepResponse
	err   error
}

type stepsSavedMsg struct {
	err error
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock overrides the source of "today" used for the date field.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLocale sets the language used to format step counts.
func WithLocale(tag language.Tag) AppOption {
	return func(a *App) {
		a.printer = message.NewPrinter(tag)
	}
}

type App struct {
	client  StepsClient
	now     func() time.Time
	printer *message.Printer

	steps   []api.StepResponse
	inputs  []textinput.Model
	focus   int
	err     string
	loading bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	dateStyle    = lipgloss.NewStyle().Bold(true).Width(14)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	sectionStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

func NewApp(c StepsClient, opts ...AppOption) *App {
	a := &App{
		client:  c,
		now:     time.Now,
		printer: message.NewPrinter(language.English),
		loading: true,
	}
	for _, opt := range opts {
		opt(a)
	}

	date := textinput.New()
	date.Prompt = ""
	date.Placeholder = entity.DateLayout
	date.CharLimit = len(entity.DateLayout)
	date.SetValue(a.today())

	count := textinput.New()
	count.Prompt = ""
	count.Placeholder = "e.g., 10000"
	count.CharLimit = 10

	a.inputs = []textinput.Model{date, count}
	a.inputs[fieldDate].Focus()
	return a
}

func (a *App) today() string {
	return a.now().UTC().Format(entity.DateLayout)
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.fetchSteps())
}

func (a *App) fetchSteps() tea.Cmd {
	c := a.client
	return func() tea.Msg {
		steps, err := c.ListSteps(context.Background())
		return stepsLoadedMsg{steps: steps, err: err}
	}
}

func (a *App) saveSteps(date string, count int) tea.Cmd {
	c := a.client
	return func() tea.Msg {
		_, err := c.LogSteps(context.Background(), date, count)
		return stepsSavedMsg{err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.err = errorMessage(msg.err, unknownFetchMessage)
			return a, nil
		}
		a.steps = msg.steps
		return a, nil

	case stepsSavedMsg:
		if msg.err != nil {
			a.err = errorMessage(msg.err, unknownSubmitMessage)
			return a, nil
		}
		a.inputs[fieldDate].SetValue(a.today())
		a.inputs[fieldCount].SetValue("")
		a.err = ""
		return a, a.fetchSteps()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "down":
			return a, a.setFocus((a.focus + 1) % fieldsTotal)
		case "shift+tab", "up":
			return a, a.setFocus((a.focus + fieldsTotal - 1) % fieldsTotal)
		case "enter":
			if a.focus == fieldDate {
				return a, a.setFocus(fieldCount)
			}
			return a, a.submit()
		}
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) setFocus(i int) tea.Cmd {
	a.inputs[a.focus].Blur()
	a.focus = i
	return a.inputs[a.focus].Focus()
}

// submit checks the form locally and returns nil when no request must be sent.
func (a *App) submit() tea.Cmd {
	date := strings.TrimSpace(a.inputs[fieldDate].Value())
	countText := strings.TrimSpace(a.inputs[fieldCount].Value())
	if date == "" || countText == "" {
		a.err = requiredFieldsMessage
		return nil
	}
	count, err := strconv.Atoi(countText)
	if err != nil {
		a.err = wholeNumberMessage
		return nil
	}
	return a.saveSteps(date, count)
}

func errorMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Daily Steps Tracker"))
	b.WriteString("\n")

	var form strings.Builder
	form.WriteString(headerStyle.Render("Log New Steps"))
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("Date") + a.inputs[fieldDate].View() + "\n")
	form.WriteString(labelStyle.Render("Step Count") + a.inputs[fieldCount].View())
	if a.err != "" {
		form.WriteString("\n" + errorStyle.Render(a.err))
	}
	b.WriteString(sectionStyle.Render(form.String()))
	b.WriteString("\n\n")

	var history strings.Builder
	history.WriteString(headerStyle.Render("History"))
	history.WriteString("\n")
	switch {
	case a.loading:
		history.WriteString(mutedStyle.Render("Loading..."))
	case len(a.steps) == 0:
		history.WriteString(mutedStyle.Render("No steps logged yet."))
	default:
		rows := make([]string, 0, len(a.steps))
		for _, step := range a.steps {
			rows = append(rows, dateStyle.Render(step.Date)+countStyle.Render(a.formatCount(step.StepCount)))
		}
		history.WriteString(strings.Join(rows, "\n"))
	}
	b.WriteString(sectionStyle.Render(history.String()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch field • enter: save • esc: quit"))
	return b.String()
}

func (a *App) formatCount(n int) string {
	return a.printer.Sprintf("%d steps", n)
}
