// Package ifwatch watches udev netlink events for network interface hotplug:
// adapters appearing, disappearing, or being renamed.
package ifwatch

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"lodestone/internal/logging"
)

// Event describes one interface hotplug occurrence.
type Event struct {
	// Action is the udev action: add, remove, or move.
	Action string
	// Interface is the kernel interface name (e.g. eth0).
	Interface string
}

// Monitor listens for udev netlink events on the net subsystem and forwards
// matched events to a handler. It degrades gracefully: when the netlink
// socket cannot be opened, Start logs a warning and returns nil so hosts
// without udev access still run.
type Monitor struct {
	logger  *slog.Logger
	handler func(Event)

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// NewMonitor creates a monitor delivering events to handler. A nil handler
// means events are only logged.
func NewMonitor(logger *slog.Logger, handler func(Event)) *Monitor {
	return &Monitor{
		logger:  logging.NewComponentLogger(logger, "ifwatch"),
		handler: handler,
	}
}

// Start begins listening for interface hotplug events.
func (m *Monitor) Start(ctx context.Context) error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		m.logger.Warn("failed to connect to netlink socket; interface watching unavailable",
			logging.Error(err),
			logging.String(logging.FieldEventType, "netlink_connect_failed"),
			logging.String(logging.FieldErrorHint, "ensure the process has permission to access netlink sockets"),
			logging.String(logging.FieldImpact, "interface hotplug events will not be reported"),
		)
		return nil
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	// Pass quit channel to the goroutine to avoid reading m.quit without lock
	quit := m.quit
	go m.monitorLoop(ctx, quit)

	m.logger.Info("interface monitor started",
		logging.String(logging.FieldEventType, "ifwatch_started"),
	)
	return nil
}

// Stop shuts down the monitor.
func (m *Monitor) Stop() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false

	m.logger.Info("interface monitor stopped",
		logging.String(logging.FieldEventType, "ifwatch_stopped"),
	)
}

// Running reports whether the monitor is active.
func (m *Monitor) Running() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) monitorLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	matcher := buildMatcher()

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()

	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, matcher)

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(uevent)
		case err := <-errs:
			m.logger.Warn("interface monitor error",
				logging.Error(err),
				logging.String(logging.FieldEventType, "ifwatch_monitor_error"),
				logging.String(logging.FieldErrorHint, "check kernel netlink subsystem"),
			)
		}
	}
}

// buildMatcher creates a matcher for interface hotplug events:
// SUBSYSTEM=net, ACTION=add|remove|move.
func buildMatcher() netlink.Matcher {
	action := "add|remove|move"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "net",
		},
	})
	return rules
}

func (m *Monitor) handleEvent(uevent netlink.UEvent) {
	name := extractInterfaceName(uevent)
	if name == "" {
		m.logger.Debug("ignoring event without interface name",
			logging.String("action", string(uevent.Action)),
			logging.String("kobj", uevent.KObj),
		)
		return
	}

	event := Event{Action: string(uevent.Action), Interface: name}
	m.logger.Info("interface event",
		logging.String(logging.FieldEventType, "ifwatch_event"),
		logging.String("action", event.Action),
		logging.String("interface", event.Interface),
	)

	if m.handler != nil {
		m.handler(event)
	}
}

// extractInterfaceName gets the interface name from a uevent.
func extractInterfaceName(uevent netlink.UEvent) string {
	if name := uevent.Env["INTERFACE"]; name != "" {
		return name
	}

	// Fall back to the DEVPATH leaf (e.g. /devices/virtual/net/br0)
	devpath := uevent.Env["DEVPATH"]
	if devpath == "" {
		return ""
	}
	parts := strings.Split(devpath, "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
