package stub

import (
	"time"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

// SeedContainers returns a small fixed fleet for local runs.
func SeedContainers(now time.Time) []domain.Container {
	fast, slow := 0.0021, 0.153
	return []domain.Container{
		{ID: 1, IPAddress: "172.18.0.2", LastPing: now.Add(-5 * time.Second), Status: true, PingTime: &fast},
		{ID: 2, IPAddress: "172.18.0.3", LastPing: now.Add(-7 * time.Second), Status: true, PingTime: &slow},
		{ID: 3, IPAddress: "172.18.0.4", LastPing: now.Add(-3 * time.Minute), Status: false},
	}
}
