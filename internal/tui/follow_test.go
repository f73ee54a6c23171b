package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courier-org/courier-cli/internal/api"
)

func newTestModel() FollowModel {
	return NewFollow(nil, "CR123", time.Second)
}

func TestFollow_LoadingView(t *testing.T) {
	m := newTestModel()
	if got := m.View(); !strings.Contains(got, "loading") {
		t.Errorf("expected loading view, got %q", got)
	}
}

func TestFollow_HistoryMsgUpdatesState(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(historyMsg{
		pkg: &api.Package{TrackingNumber: "CR123", Status: api.StatusInTransit},
		events: []api.TrackingEvent{
			{Status: api.StatusCreated, Location: "Mumbai"},
			{Status: api.StatusInTransit, Location: "Pune", Remarks: "departed hub"},
		},
	})
	m = updated.(FollowModel)

	view := m.View()
	for _, want := range []string{"IN_TRANSIT", "Mumbai", "Pune", "departed hub"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFollow_PollErrorKeepsLastState(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(historyMsg{
		pkg: &api.Package{TrackingNumber: "CR123", Status: api.StatusDelivered},
	})
	m = updated.(FollowModel)

	updated, _ = m.Update(historyMsg{err: errors.New("connection refused")})
	m = updated.(FollowModel)

	view := m.View()
	if !strings.Contains(view, "DELIVERED") {
		t.Errorf("expected last good state retained:\n%s", view)
	}
	if !strings.Contains(view, "connection refused") {
		t.Errorf("expected poll failure surfaced:\n%s", view)
	}
}

func TestFollow_QuitKey(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command for key q")
	}
	if !updated.(FollowModel).quitting {
		t.Error("expected model marked quitting")
	}
}

func TestFollow_TickTriggersFetch(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected tick to schedule a fetch")
	}
}
