package main

import (
	"fmt"
	"log"
	"os"

	"github.com/crewdeck/crewdeck/internal/budget"
	"github.com/crewdeck/crewdeck/internal/config"
	"github.com/crewdeck/crewdeck/internal/notify"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// buildNotifiers constructs the configured alert channels. A channel with
// a missing token is skipped with a log line, not an error.
func buildNotifiers(cfg *config.Config) []notify.Notifier {
	var notifiers []notify.Notifier
	if cfg.Notify.Slack.Channel != "" {
		token := os.Getenv(cfg.Notify.Slack.TokenEnv)
		n, err := notify.NewSlack(notify.SlackOpts{Token: token, Channel: cfg.Notify.Slack.Channel})
		if err != nil {
			log.Printf("notify: slack disabled: %v", err)
		} else {
			notifiers = append(notifiers, n)
		}
	}
	if cfg.Notify.Discord.ChannelID != "" {
		token := os.Getenv(cfg.Notify.Discord.TokenEnv)
		n, err := notify.NewDiscord(notify.DiscordOpts{Token: token, ChannelID: cfg.Notify.Discord.ChannelID})
		if err != nil {
			log.Printf("notify: discord disabled: %v", err)
		} else {
			notifiers = append(notifiers, n)
		}
	}
	return notifiers
}

// broadcastAlerts fans alerts out to all channels, best-effort.
func broadcastAlerts(cmd *cobra.Command, notifiers []notify.Notifier, alerts []budget.Alert) {
	notify.Broadcast(cmd.Context(), notifiers, alerts)
}

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Alert channel helpers",
	}
	cmd.AddCommand(newNotifySetupCmd())
	cmd.AddCommand(newNotifyTestCmd())
	return cmd
}

// newNotifySetupCmd prompts for a channel token without echoing it and
// prints the export line to add to the shell profile.
func newNotifySetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [slack|discord]",
		Short: "Interactively capture a channel token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			var envVar string
			switch args[0] {
			case "slack":
				envVar = cfg.Notify.Slack.TokenEnv
			case "discord":
				envVar = cfg.Notify.Discord.TokenEnv
			default:
				return fmt.Errorf("unknown channel %q", args[0])
			}
			if envVar == "" {
				return fmt.Errorf("no token_env configured for %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token for %s: ", args[0])
			token, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Add to your shell profile:\n  export %s=%s\n", envVar, string(token))
			return nil
		},
	}
}

// newNotifyTestCmd sends a synthetic warning alert through every channel.
func newNotifyTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Send a test alert to all configured channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			notifiers := buildNotifiers(cfg)
			if len(notifiers) == 0 {
				return fmt.Errorf("no channels configured")
			}
			broadcastAlerts(cmd, notifiers, []budget.Alert{{
				Type:       budget.TypeWarning,
				Severity:   budget.SeverityWarning,
				Title:      "Test alert",
				Message:    "CrewDeck notification channels are working.",
				Period:     "day",
				Threshold:  10,
				Current:    8,
				Percentage: 80,
			}})
			fmt.Fprintf(cmd.OutOrStdout(), "Sent test alert to %d channel(s)\n", len(notifiers))
			return nil
		},
	}
}
