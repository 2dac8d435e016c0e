// Package tui provides the interactive chat interface for asking questions
// about the loaded document. It follows the Elm architecture via Bubbletea:
// a transcript viewport on top, a question input below and a status bar at
// the bottom.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// inputChrome is the vertical space taken by the title, the input
	// field border and the status bar.
	inputChrome = 6
)

// answerReceived carries the result of an Ask call back into the update loop.
type answerReceived struct {
	question string
	answer   string
	elapsed  time.Duration
	err      error
}

// faqCompleted carries the result of an FAQ run back into the update loop.
type faqCompleted struct {
	report  domain.FAQReport
	elapsed time.Duration
	err     error
}

// App is the chat TUI model. It implements tea.Model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model

	// history holds the question/answer pairs shown in the transcript.
	history []domain.Exchange

	// busy is true while an Ask or FAQ call is in flight. Input is
	// ignored until the result message arrives.
	busy bool

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the chat TUI with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Digite sua pergunta sobre o documento..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.Muted),
	)

	app := &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		input:      ti,
		transcript: viewport.New(defaultWidth, defaultHeight-inputChrome),
		spinner:    sp,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	app.refreshTranscript()

	return app, nil
}

// WithContext sets the context used for Ask and FAQ calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts the cursor blink.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages following the Elm architecture.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.transcript.Width = msg.Width
		a.transcript.Height = msg.Height - inputChrome
		a.input.Width = msg.Width - 4
		a.ready = true
		a.refreshTranscript()
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !a.busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case answerReceived:
		a.busy = false
		a.err = msg.err
		if msg.err == nil {
			a.history = append(a.history, domain.Exchange{
				Question: msg.question,
				Answer:   msg.answer,
				Elapsed:  msg.elapsed,
			})
		}
		a.refreshTranscript()
		return a, nil

	case faqCompleted:
		a.busy = false
		a.err = msg.err
		if msg.err == nil {
			for i, q := range msg.report.Questions {
				answer := ""
				if i < len(msg.report.Answers) {
					answer = msg.report.Answers[i]
				}
				a.history = append(a.history, domain.Exchange{
					Question: q,
					Answer:   answer,
					Elapsed:  msg.elapsed,
				})
			}
		}
		a.refreshTranscript()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return a, tea.Quit

	case tea.KeyEnter:
		if a.busy {
			return a, nil
		}
		question := strings.TrimSpace(a.input.Value())
		if question == "" {
			return a, nil
		}
		a.input.SetValue("")
		a.busy = true
		a.err = nil
		return a, tea.Batch(a.spinner.Tick, a.askCmd(question))

	case tea.KeyCtrlF:
		if a.busy {
			return a, nil
		}
		a.busy = true
		a.err = nil
		return a, tea.Batch(a.spinner.Tick, a.faqCmd())

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		a.transcript, cmd = a.transcript.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// askCmd runs the question against the ask port in the background.
func (a *App) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		answer, err := a.ports.Ask.Ask(a.ctx, question)
		return answerReceived{
			question: question,
			answer:   answer,
			elapsed:  time.Since(start),
			err:      err,
		}
	}
}

// faqCmd runs the fixed question sequence in the background.
func (a *App) faqCmd() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		report, err := a.ports.FAQ.RunFAQ(a.ctx)
		return faqCompleted{
			report:  report,
			elapsed: time.Since(start),
			err:     err,
		}
	}
}

// refreshTranscript re-renders the history into the viewport and scrolls
// to the latest answer.
func (a *App) refreshTranscript() {
	a.transcript.SetContent(a.renderHistory())
	a.transcript.GotoBottom()
}

func (a *App) renderHistory() string {
	if len(a.history) == 0 {
		return a.styles.Muted.Render(
			"Faça uma pergunta sobre o documento carregado.\n" +
				"Enter envia, Ctrl+F executa o FAQ, Esc sai.")
	}

	var b strings.Builder
	for i, ex := range a.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(a.styles.Question.Render("P: " + ex.Question))
		b.WriteString("\n")
		b.WriteString(a.styles.Answer.Render("R: " + ex.Answer))
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("(%.1fs)", ex.Elapsed.Seconds())))
	}
	return b.String()
}

// View renders the full screen.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("autos"))
	b.WriteString("\n")
	b.WriteString(a.transcript.View())
	b.WriteString("\n")
	b.WriteString(a.styles.InputField.Width(a.width - 2).Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(a.statusLine())

	return b.String()
}

func (a *App) statusLine() string {
	if a.err != nil {
		return a.styles.Error.Render(a.err.Error())
	}
	if a.busy {
		return a.styles.StatusBar.Render(a.spinner.View() + " Gerando resposta...")
	}

	parts := []string{"Enter: perguntar", "Ctrl+F: FAQ", "Esc: sair"}
	if a.ports.Ingest != nil {
		parts = append(parts, "método: "+string(a.ports.Ingest.Method()))
	}
	return a.styles.StatusBar.Render(strings.Join(parts, "  •  "))
}

// History returns the transcript so far, newest last.
func (a *App) History() []domain.Exchange {
	return a.history
}
