package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkallin/driftwalk/internal/core"
	"github.com/mkallin/driftwalk/internal/storage"
)

// Model is the Bubble Tea model for running a walk interactively.
type Model struct {
	cfg    core.Config
	engine *core.Engine
	canvas *Canvas
	store  *storage.Store
	keys   *KeyMapper

	frames   uint64
	started  time.Time
	finished bool
	paused   bool
	quitting bool
	runSaved bool
	err      error
}

// NewModel creates a Bubble Tea model for the given validated config.
func NewModel(cfg core.Config, store *storage.Store) (Model, error) {
	runner, err := core.NewRunner(cfg)
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:     cfg,
		engine:  runner.Engine(),
		canvas:  NewCanvas(cfg.Width, cfg.Height),
		store:   store,
		keys:    NewKeyMapper(),
		started: time.Now(),
	}, nil
}

// Init starts the frame tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.EffectiveDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The plane never resizes mid-run; the canvas stays plane-sized and
		// the terminal clips or letterboxes it.
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes control input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionPause:
		if !m.finished {
			m.paused = !m.paused
		}
		return m, nil

	case ActionRestart:
		return m.restart()
	}

	return m, nil
}

// restart begins a fresh walk with the same configuration. A seed of 0 draws
// a new time-based seed; an explicit seed replays the identical run.
func (m Model) restart() (tea.Model, tea.Cmd) {
	runner, err := core.NewRunner(m.cfg)
	if err != nil {
		// Config was valid at startup, so this is a programming fault.
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	wasFinished := m.finished
	m.engine = runner.Engine()
	m.canvas.Clear()
	m.frames = 0
	m.started = time.Now()
	m.finished = false
	m.paused = false
	m.runSaved = false

	// The tick chain stops once a run finishes; restart it.
	if wasFinished {
		return m, tickCmd(m.cfg.EffectiveDelay())
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished || m.quitting {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.cfg.EffectiveDelay())
	}

	m.canvas.Clear()
	status, err := m.engine.Step(canvasSink{m.canvas})
	m.frames++
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if status == core.Finished {
		m.finished = true
		m.saveRun()
		return m, nil
	}

	return m, tickCmd(m.cfg.EffectiveDelay())
}

// saveRun records the finished run once.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	stats := core.RunStats{
		Frames:   m.frames,
		Spawned:  m.cfg.Particles,
		Duration: time.Since(m.started),
	}
	//nolint:errcheck // Best-effort save, the display continues regardless
	m.store.SaveRun(m.cfg, stats)
	m.runSaved = true
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	statusRow := m.canvas.Height() - 1
	m.canvas.DrawText(0, statusRow, m.statusLine())
	if m.finished {
		m.canvas.DrawTextCentered(m.canvas.Height()/2, " all particles gone - r to restart, q to quit ")
	}

	return RenderCanvas(m.canvas)
}

// statusLine summarizes the run for the bottom row.
func (m Model) statusLine() string {
	switch {
	case m.finished:
		return fmt.Sprintf(" done in %d frames ", m.frames)
	case m.paused:
		return fmt.Sprintf(" paused | frame %d | %d particles ", m.frames, m.engine.Pool().Len())
	default:
		return fmt.Sprintf(" frame %d | %d particles ", m.frames, m.engine.Pool().Len())
	}
}

// Run starts the Bubble Tea program for a single interactive walk.
func Run(cfg core.Config, store *storage.Store) error {
	model, err := NewModel(cfg, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
