package presence

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hugolgst/rich-go/client"

	"coursepilot/internal/service"
)

// DiscordProvider publishes rich-presence activity to a local Discord client.
// It implements service.PresenceProvider. Updates flow through a buffered
// channel serviced by one worker goroutine, so callers never block on the
// Discord IPC socket; when the buffer is full the update is dropped.
type DiscordProvider struct {
	clientID string
	updates  chan update
	logger   *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

type update struct {
	activity service.Activity
	clear    bool
}

// NewDiscordProvider connects to the local Discord client and starts the
// worker. It fails when no Discord client is running.
func NewDiscordProvider(clientID string, logger *slog.Logger) (*DiscordProvider, error) {
	if clientID == "" {
		return nil, fmt.Errorf("discord client id required")
	}
	if err := client.Login(clientID); err != nil {
		return nil, fmt.Errorf("failed to connect to discord: %w", err)
	}

	p := &DiscordProvider{
		clientID: clientID,
		updates:  make(chan update, 16),
		logger:   logger,
		done:     make(chan struct{}),
	}
	go p.run()
	return p, nil
}

// run applies queued updates in order. The IPC protocol has no standalone
// "clear", so clearing logs out and the next update reconnects.
func (p *DiscordProvider) run() {
	loggedIn := true
	for u := range p.updates {
		if u.clear {
			if loggedIn {
				client.Logout()
				loggedIn = false
			}
			continue
		}
		if !loggedIn {
			if err := client.Login(p.clientID); err != nil {
				p.logger.Warn("failed to reconnect to discord", "error", err)
				continue
			}
			loggedIn = true
		}
		err := client.SetActivity(client.Activity{
			Details: u.activity.Details,
			State:   u.activity.State,
		})
		if err != nil {
			p.logger.Warn("failed to set discord activity", "error", err)
		}
	}
	if loggedIn {
		client.Logout()
	}
	close(p.done)
}

// UpdateActivity queues an activity update; it never blocks.
func (p *DiscordProvider) UpdateActivity(activity service.Activity) {
	select {
	case p.updates <- update{activity: activity}:
	default:
		p.logger.Debug("presence update dropped, queue full")
	}
}

// ClearActivity queues a clear; it never blocks.
func (p *DiscordProvider) ClearActivity() {
	select {
	case p.updates <- update{clear: true}:
	default:
	}
}

// Close stops the worker and disconnects from Discord.
func (p *DiscordProvider) Close() {
	p.closeOnce.Do(func() {
		close(p.updates)
		<-p.done
	})
}
