package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/crewdeck/crewdeck/internal/budget"
)

// discordSession abstracts the discordgo methods we use, enabling test mocks.
type discordSession interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord delivers alerts to a Discord channel as embeds.
type Discord struct {
	sess      discordSession
	channelID string
}

// DiscordOpts holds parameters for creating a Discord notifier.
type DiscordOpts struct {
	Token     string
	ChannelID string
	// For testing: inject a mock session instead of the real Discord API.
	Session discordSession
}

// NewDiscord creates a Discord notifier.
func NewDiscord(opts DiscordOpts) (*Discord, error) {
	if opts.Session == nil && opts.Token == "" {
		return nil, fmt.Errorf("notify: discord token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("notify: discord channel id is required")
	}
	sess := opts.Session
	if sess == nil {
		s, err := discordgo.New("Bot " + opts.Token)
		if err != nil {
			return nil, fmt.Errorf("notify: discord session: %w", err)
		}
		sess = s
	}
	return &Discord{sess: sess, channelID: opts.ChannelID}, nil
}

// Send posts the alert as an embed.
func (d *Discord) Send(ctx context.Context, a budget.Alert) error {
	color, _ := strconv.ParseInt(severityColor(a.Severity)[1:], 16, 32)
	embed := &discordgo.MessageEmbed{
		Title:       a.Title,
		Description: a.Message,
		Color:       int(color),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Period", Value: string(a.Period), Inline: true},
			{Name: "Spend", Value: fmt.Sprintf("$%.2f / $%.2f (%.0f%%)", a.Current, a.Threshold, a.Percentage), Inline: true},
		},
	}
	if a.AgentID != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Agent", Value: a.AgentID, Inline: true})
	}
	if _, err := d.sess.ChannelMessageSendEmbed(d.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("notify: discord send: %w", err)
	}
	return nil
}
