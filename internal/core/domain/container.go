package domain

import (
	"strconv"
	"time"
)

// NotAvailable is rendered in place of values the backend did not report.
const NotAvailable = "N/A"

// Container is a server-owned status snapshot of a pinged container.
// The console never mutates it.
type Container struct {
	ID        int       `json:"id"`
	IPAddress string    `json:"ip_address"`
	LastPing  time.Time `json:"last_ping"`
	Status    bool      `json:"status"`
	PingTime  *float64  `json:"ping_time,omitempty"`
}

// StatusLabel maps the online flag to its display label.
func (c Container) StatusLabel() string {
	if c.Status {
		return "Online"
	}
	return "Offline"
}

// PingTimeLabel returns the ping duration in seconds, or NotAvailable when
// the backend reported none. A zero duration counts as not reported.
func (c Container) PingTimeLabel() string {
	if c.PingTime == nil || *c.PingTime == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(*c.PingTime, 'f', -1, 64)
}

// LastPingLabel formats the last ping timestamp in RFC 3339.
func (c Container) LastPingLabel() string {
	if c.LastPing.IsZero() {
		return NotAvailable
	}
	return c.LastPing.UTC().Format(time.RFC3339)
}
