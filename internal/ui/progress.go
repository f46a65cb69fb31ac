package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rsharp/internal/buildpipeline"
)

// stageLabels names each pipeline stage while a file is in it.
var stageLabels = map[buildpipeline.Stage]string{
	buildpipeline.StageParse:    "parsing",
	buildpipeline.StageBind:     "binding",
	buildpipeline.StageGenerate: "generating",
	buildpipeline.StageEmit:     "writing",
	buildpipeline.StageLink:     "linking",
}

type fileState uint8

const (
	fileQueued fileState = iota
	fileWorking
	fileDone
	fileFailed
)

type fileItem struct {
	path    string
	state   fileState
	stage   buildpipeline.Stage
	err     error
	elapsed time.Duration
}

func (f fileItem) label() string {
	switch f.state {
	case fileWorking:
		if l, ok := stageLabels[f.stage]; ok {
			return l
		}
		return "working"
	case fileDone:
		return "done"
	case fileFailed:
		return "error"
	default:
		return "queued"
	}
}

// fraction is how far through buildpipeline.Stages the file has got.
func (f fileItem) fraction() float64 {
	if f.state == fileDone || f.state == fileFailed {
		return 1
	}
	if f.state == fileQueued {
		return 0
	}
	for i, s := range buildpipeline.Stages {
		if s == f.stage {
			return float64(i) / float64(len(buildpipeline.Stages))
		}
	}
	return 0
}

type palette struct {
	title, working, done, failed, idle lipgloss.Style
}

func newPalette() palette {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return palette{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		working: fg("6"),
		done:    fg("2"),
		failed:  fg("1"),
		idle:    fg("8"),
	}
}

func (p palette) forState(s fileState) lipgloss.Style {
	switch s {
	case fileWorking:
		return p.working
	case fileDone:
		return p.done
	case fileFailed:
		return p.failed
	default:
		return p.idle
	}
}

type progressModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	bar     progress.Model
	colors  palette
	items   []fileItem
	byPath  map[string]int
	width   int
	closed  bool
}

type eventMsg buildpipeline.Event
type closedMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders build progress
// for files. It quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	colors := newPalette()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(colors.working))

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		colors:  colors,
		items:   make([]fileItem, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, file := range files {
		m.items[i] = fileItem{path: file}
		m.byPath[file] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(buildpipeline.Event(msg)), m.next())
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// next waits for one pipeline event.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

// applyEvent updates the file an event names. Events for unknown files and
// request-wide events are ignored.
func (m *progressModel) applyEvent(ev buildpipeline.Event) tea.Cmd {
	idx, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	if ev.Stage != "" {
		item.stage = ev.Stage
	}
	switch ev.Status {
	case buildpipeline.StatusQueued:
		item.state = fileQueued
	case buildpipeline.StatusWorking:
		item.state = fileWorking
	case buildpipeline.StatusDone:
		item.state = fileDone
		item.elapsed = ev.Elapsed
	case buildpipeline.StatusError:
		item.state = fileFailed
		item.err = ev.Err
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		total += item.fraction()
	}
	return total / float64(len(m.items))
}

func (m *progressModel) finished() int {
	n := 0
	for _, item := range m.items {
		if item.state == fileDone || item.state == fileFailed {
			n++
		}
	}
	return n
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	var b strings.Builder
	lead := m.spinner.View()
	if m.closed {
		lead = "done:"
	}
	header := fmt.Sprintf("%s %s  %d/%d files", lead, m.title, m.finished(), len(m.items))
	b.WriteString(m.colors.title.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-20, 20)
	for _, item := range m.items {
		status := m.colors.forState(item.state).Render(fmt.Sprintf("%10s", item.label()))
		line := "  " + status + "  " + truncate(item.path, nameWidth)
		if item.state == fileDone && item.elapsed > 0 {
			line += fmt.Sprintf(" (%.1f ms)", float64(item.elapsed)/float64(time.Millisecond))
		}
		b.WriteString(line + "\n")
		if item.err != nil {
			b.WriteString(m.colors.failed.Render("              "+truncate(item.err.Error(), nameWidth)) + "\n")
		}
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

// truncate shortens value to width display cells, marking the cut.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
