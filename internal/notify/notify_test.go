package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/crewdeck/crewdeck/internal/budget"
	slackapi "github.com/slack-go/slack"
)

type mockSlack struct {
	calls   int
	channel string
	err     error
}

func (m *mockSlack) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.calls++
	m.channel = channelID
	return "", "", m.err
}

type mockDiscord struct {
	calls int
	embed *discordgo.MessageEmbed
	err   error
}

func (m *mockDiscord) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.calls++
	m.embed = embed
	return nil, m.err
}

func sampleAlert() budget.Alert {
	return budget.Alert{
		Type:       budget.TypeExceeded,
		Severity:   budget.SeverityCritical,
		Title:      "Global day budget exceeded",
		Message:    "Spend $12.00 is over the $10.00 day limit (120%)",
		Period:     "day",
		Threshold:  10,
		Current:    12,
		Percentage: 120,
	}
}

func TestNewSlack_Validation(t *testing.T) {
	if _, err := NewSlack(SlackOpts{Channel: "#alerts"}); err == nil {
		t.Error("expected error without token")
	}
	if _, err := NewSlack(SlackOpts{Token: "xoxb-x"}); err == nil {
		t.Error("expected error without channel")
	}
}

func TestSlack_Send(t *testing.T) {
	mock := &mockSlack{}
	s, err := NewSlack(SlackOpts{Client: mock, Channel: "#alerts"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Send(context.Background(), sampleAlert()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if mock.calls != 1 || mock.channel != "#alerts" {
		t.Errorf("calls = %d channel = %q", mock.calls, mock.channel)
	}
}

func TestSlack_SendError(t *testing.T) {
	mock := &mockSlack{err: errors.New("rate limited")}
	s, _ := NewSlack(SlackOpts{Client: mock, Channel: "#alerts"})
	if err := s.Send(context.Background(), sampleAlert()); err == nil {
		t.Error("expected wrapped error")
	}
}

func TestDiscord_Send(t *testing.T) {
	mock := &mockDiscord{}
	d, err := NewDiscord(DiscordOpts{Session: mock, ChannelID: "123"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a := sampleAlert()
	a.AgentID = "forge"
	if err := d.Send(context.Background(), a); err != nil {
		t.Fatalf("send: %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("calls = %d", mock.calls)
	}
	if mock.embed.Title != a.Title {
		t.Errorf("embed title = %q", mock.embed.Title)
	}
	if len(mock.embed.Fields) != 3 {
		t.Errorf("embed fields = %d, want 3 with agent scope", len(mock.embed.Fields))
	}
}

func TestBroadcast_BestEffort(t *testing.T) {
	failing := &mockSlack{err: fmt.Errorf("down")}
	working := &mockDiscord{}
	s, _ := NewSlack(SlackOpts{Client: failing, Channel: "#alerts"})
	d, _ := NewDiscord(DiscordOpts{Session: working, ChannelID: "123"})

	Broadcast(context.Background(), []Notifier{s, d}, []budget.Alert{sampleAlert()})

	if working.calls != 1 {
		t.Errorf("working channel calls = %d, a failing channel must not block others", working.calls)
	}
}

func TestSeverityColor(t *testing.T) {
	if severityColor(budget.SeverityCritical) == severityColor(budget.SeverityWarning) {
		t.Error("severities should map to distinct colors")
	}
	if severityColor("other") == "" {
		t.Error("unknown severity still gets a color")
	}
}
