// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/esiqveland/notify"
	"github.com/gen2brain/beeep"
	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/xvierd/dusk/internal/config"
	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

const appName = "Dusk"

// connectSessionBus is replaced in tests.
var connectSessionBus = dbus.ConnectSessionBus

// sendFunc delivers one notification.
type sendFunc func(summary, body string) error

// Notifier handles desktop notifications.
type Notifier struct {
	cfg     *config.NotificationConfig
	send    sendFunc
	backend string
	conn    *dbus.Conn
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a notifier for the configured backend. The dbus and auto
// backends fall back to beeep when the session bus cannot be reached; only
// the dbus backend warns about it. A disabled config yields a notifier that
// does nothing.
func New(cfg *config.NotificationConfig, log zerolog.Logger) (*Notifier, error) {
	n := &Notifier{cfg: cfg}
	if !n.IsEnabled() {
		return n, nil
	}

	switch cfg.Backend {
	case config.BackendBeeep:
		n.useBeeep()
	case config.BackendDBus:
		if err := n.useDBus(); err != nil {
			log.Warn().Err(err).Msg("session bus unavailable, falling back to beeep")
			n.useBeeep()
		}
	default:
		if err := n.useDBus(); err != nil {
			log.Debug().Err(err).Msg("session bus unavailable, using beeep")
			n.useBeeep()
		}
	}

	log.Debug().Str("backend", n.backend).Msg("notifications ready")
	return n, nil
}

func (n *Notifier) useDBus() error {
	conn, err := connectSessionBus()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotificationsUnavailable, err)
	}
	n.conn = conn
	n.backend = config.BackendDBus
	n.send = func(summary, body string) error {
		// A zero timeout keeps the notification until dismissed.
		_, err := notify.SendNotification(conn, notify.Notification{
			AppName:       appName,
			AppIcon:       n.cfg.Icon,
			Summary:       summary,
			Body:          body,
			Hints:         map[string]dbus.Variant{},
			ExpireTimeout: 0,
		})
		return err
	}
	return nil
}

func (n *Notifier) useBeeep() {
	n.backend = config.BackendBeeep
	n.send = func(summary, body string) error {
		return beeep.Notify(summary, body, n.cfg.Icon)
	}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(summary, body string) error {
	if !n.IsEnabled() || n.send == nil {
		return nil
	}
	if err := n.send(summary, body); err != nil {
		return fmt.Errorf("failed to send notification via %s: %w", n.backend, err)
	}
	return nil
}

// Backend returns the backend in use, or "" when disabled.
func (n *Notifier) Backend() string {
	return n.backend
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

// Close releases the session bus connection, if any.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
