package notify

import (
	"context"
	"fmt"

	"github.com/crewdeck/crewdeck/internal/budget"
	slackapi "github.com/slack-go/slack"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Slack delivers alerts to a Slack channel as colored attachments.
type Slack struct {
	client  slackClient
	channel string
}

// SlackOpts holds parameters for creating a Slack notifier.
type SlackOpts struct {
	Token   string
	Channel string
	// For testing: inject a mock client instead of the real Slack API.
	Client slackClient
}

// NewSlack creates a Slack notifier.
func NewSlack(opts SlackOpts) (*Slack, error) {
	if opts.Client == nil && opts.Token == "" {
		return nil, fmt.Errorf("notify: slack token is required")
	}
	if opts.Channel == "" {
		return nil, fmt.Errorf("notify: slack channel is required")
	}
	client := opts.Client
	if client == nil {
		client = slackapi.New(opts.Token)
	}
	return &Slack{client: client, channel: opts.Channel}, nil
}

// Send posts the alert as a single attachment message.
func (s *Slack) Send(ctx context.Context, a budget.Alert) error {
	fields := []slackapi.AttachmentField{
		{Title: "Period", Value: string(a.Period), Short: true},
		{Title: "Spend", Value: fmt.Sprintf("$%.2f / $%.2f (%.0f%%)", a.Current, a.Threshold, a.Percentage), Short: true},
	}
	if a.AgentID != "" {
		fields = append(fields, slackapi.AttachmentField{Title: "Agent", Value: a.AgentID, Short: true})
	}
	attachment := slackapi.Attachment{
		Color:  severityColor(a.Severity),
		Title:  a.Title,
		Text:   a.Message,
		Fields: fields,
	}
	_, _, err := s.client.PostMessageContext(ctx, s.channel, slackapi.MsgOptionAttachments(attachment))
	if err != nil {
		return fmt.Errorf("notify: slack post: %w", err)
	}
	return nil
}
