package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v3/process"
)

// maxListed caps how many bundles the dashboard lists.
const maxListed = 16

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	bundleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Border(lipgloss.NormalBorder(), true, false, false, false)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// resourceSampler reports resident memory in bytes and CPU percent.
type resourceSampler func() (rss uint64, cpu float64, err error)

// processSampler samples the current process through gopsutil.
func processSampler() resourceSampler {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return func() (uint64, float64, error) { return 0, 0, err }
	}
	return func() (uint64, float64, error) {
		mem, err := p.MemoryInfo()
		if err != nil {
			return 0, 0, err
		}
		cpu, err := p.CPUPercent()
		if err != nil {
			return 0, 0, err
		}
		return mem.RSS, cpu, nil
	}
}

type tickMsg time.Time

// dashboard is the bubbletea model behind the watch command. Every tick
// advances the session by batch steps and resamples process resources.
type dashboard struct {
	session  *session
	batch    int
	interval time.Duration
	sample   resourceSampler

	rss       uint64
	cpu       float64
	sampleErr error
	err       error
}

func newDashboard(s *session, batch int, interval time.Duration, sample resourceSampler) dashboard {
	if batch <= 0 {
		batch = defaultBatch
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return dashboard{session: s, batch: batch, interval: interval, sample: sample}
}

func (d dashboard) tick() tea.Cmd {
	return tea.Tick(d.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (d dashboard) Init() tea.Cmd {
	return d.tick()
}

func (d dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return d, tea.Quit
		}
	case tickMsg:
		if err := d.session.advance(d.batch); err != nil {
			d.err = err
			return d, tea.Quit
		}
		if d.sample != nil {
			d.rss, d.cpu, d.sampleErr = d.sample()
		}
		if d.session.done() {
			return d, nil
		}
		return d, d.tick()
	}

	return d, nil
}

func (d dashboard) View() string {
	z := d.session.zip
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", z.Name(), z.ID())))
	b.WriteString("\n")
	b.WriteString(statStyle.Render(d.session.summary()))
	b.WriteString("\n\n")

	bundles := z.Bundles()
	if len(bundles) == 0 {
		b.WriteString(idleStyle.Render("no bundles yet"))
		b.WriteString("\n")
	}
	start := 0
	if len(bundles) > maxListed {
		start = len(bundles) - maxListed
		b.WriteString(idleStyle.Render(fmt.Sprintf("... %d earlier bundles", start)))
		b.WriteString("\n")
	}
	for _, bd := range bundles[start:] {
		act := 0.0
		if bd.Index < len(d.session.last) {
			act = d.session.last[bd.Index]
		}
		line := fmt.Sprintf("bundle %3d cables: %v", bd.Index, bd.Cables)
		if act > 0 {
			b.WriteString(bundleStyle.Render(line + " *"))
		} else {
			b.WriteString(idleStyle.Render(line))
		}
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("rss %s  cpu %.1f%%  q to quit", formatBytes(d.rss), d.cpu)
	if d.sampleErr != nil {
		footer = "resources unavailable  q to quit"
	}
	b.WriteString(footerStyle.Render(footer))
	if d.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(d.err.Error()))
	}

	return boxStyle.Render(b.String()) + "\n"
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
