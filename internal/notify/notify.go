// Package notify delivers budget alerts to chat platforms. Delivery is
// best-effort: failures are logged, never returned to the evaluator.
package notify

import (
	"context"
	"log"

	"github.com/crewdeck/crewdeck/internal/budget"
)

// Notifier delivers one alert to a single channel.
type Notifier interface {
	Send(ctx context.Context, alert budget.Alert) error
}

// severityColor maps alert severity to a sidebar color hint.
func severityColor(severity string) string {
	switch severity {
	case budget.SeverityCritical:
		return "#d63031"
	case budget.SeverityWarning:
		return "#fdcb6e"
	default:
		return "#74b9ff"
	}
}

// Broadcast sends every alert through every notifier. Errors are logged
// and do not stop the remaining deliveries.
func Broadcast(ctx context.Context, notifiers []Notifier, alerts []budget.Alert) {
	for _, n := range notifiers {
		for _, a := range alerts {
			if err := n.Send(ctx, a); err != nil {
				log.Printf("notify: send %s alert: %v", a.Type, err)
			}
		}
	}
}
