// Package tui renders the live tracking view used by `courier track --follow`.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courier-org/courier-cli/internal/api"
)

type historyMsg struct {
	pkg    *api.Package
	events []api.TrackingEvent
	err    error
}

type tickMsg time.Time

// FollowModel polls a package's tracking history on an interval and renders
// the latest state.
type FollowModel struct {
	client         *api.Client
	trackingNumber string
	interval       time.Duration

	pkg       *api.Package
	events    []api.TrackingEvent
	err       string
	fetchedAt time.Time
	quitting  bool
	width     int
}

// NewFollow creates a follow model for the given tracking number.
func NewFollow(client *api.Client, trackingNumber string, interval time.Duration) FollowModel {
	return FollowModel{
		client:         client,
		trackingNumber: trackingNumber,
		interval:       interval,
	}
}

func (m FollowModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.tick())
}

func (m FollowModel) fetch() tea.Cmd {
	c := m.client
	tn := m.trackingNumber
	return func() tea.Msg {
		pkg, err := c.Packages.Track(context.Background(), tn)
		if err != nil {
			return historyMsg{err: err}
		}
		events, err := c.Tracking.History(context.Background(), tn)
		if err != nil {
			return historyMsg{err: err}
		}
		return historyMsg{pkg: pkg, events: events}
	}
}

func (m FollowModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m FollowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		if msg.err != nil {
			// Keep showing the last good state; a failed poll is transient.
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.pkg = msg.pkg
		m.events = msg.events
		m.fetchedAt = time.Now()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.fetch(), m.tick())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.fetch()
		}
	}
	return m, nil
}

func (m FollowModel) View() string {
	var b strings.Builder

	b.WriteString("\n " + titleStyle.Render("Tracking "+m.trackingNumber) + "\n\n")

	if m.pkg == nil {
		if m.err != "" {
			return b.String() + " " + errStyle.Render(m.err) + "\n"
		}
		return b.String() + " " + dimStyle.Render("loading...") + "\n"
	}

	fmt.Fprintf(&b, " Status: %s\n", statusStyle(m.pkg.Status).Render(m.pkg.Status))
	fmt.Fprintf(&b, " From:   %s, %s\n", m.pkg.Sender.Address.City, m.pkg.Sender.Address.State)
	fmt.Fprintf(&b, " To:     %s, %s\n\n", m.pkg.Receiver.Address.City, m.pkg.Receiver.Address.State)

	if len(m.events) == 0 {
		b.WriteString(" " + dimStyle.Render("no tracking events yet") + "\n")
	}
	for i := len(m.events) - 1; i >= 0; i-- {
		ev := m.events[i]
		line := fmt.Sprintf(" %s  %s", statusStyle(ev.Status).Render(ev.Status), ev.Location)
		if ev.Remarks != "" {
			line += dimStyle.Render(" · " + ev.Remarks)
		}
		b.WriteString(line + "\n")
		b.WriteString(" " + dimStyle.Render(ev.Timestamp) + "\n")
	}

	b.WriteString("\n " + dimStyle.Render(fmt.Sprintf("updated %s", m.fetchedAt.Format("15:04:05"))))
	if m.err != "" {
		b.WriteString("  " + errStyle.Render("last poll failed: "+m.err))
	}
	if !m.quitting {
		b.WriteString("\n " + dimStyle.Render("r refresh · q quit") + "\n")
	} else {
		b.WriteString("\n")
	}
	return b.String()
}

// RunFollow runs the follow view until the user quits.
func RunFollow(client *api.Client, trackingNumber string, interval time.Duration) error {
	p := tea.NewProgram(NewFollow(client, trackingNumber, interval))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run tracking view: %w", err)
	}
	return nil
}
