// Package notify sends desktop notifications for long-running UI events.
package notify

import (
	"strings"

	"github.com/gen2brain/beeep"
)

// Notifier dispatches desktop notifications when enabled.
type Notifier struct {
	enabled bool
}

// New creates a Notifier. When enabled is false every call is a no-op.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// RunFinished announces the end of a simulated build-and-run cycle.
func (n *Notifier) RunFinished(fileName string) {
	n.send("Run finished", fileName+" completed (simulated, exit code 0)")
}

// send fires a best-effort desktop notification. Failures are ignored; the
// notification channel is purely cosmetic.
func (n *Notifier) send(title, message string) {
	if n == nil || !n.enabled {
		return
	}
	message = strings.TrimSpace(message)
	if len(message) > 200 {
		message = message[:200] + "..."
	}
	_ = beeep.Notify(title, message, "")
}
