package view

import (
	"context"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// Phase is the render state of the containers table. Exactly one applies.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Row is one rendered table line.
type Row struct {
	ID       int
	IP       string
	LastPing string
	Status   string
	PingTime string
}

// Containers fetches the container list once on mount and renders it.
type Containers struct {
	client  ports.BackendClient
	mounted bool

	Phase Phase
	Rows  []Row
	Error string
	Err   error
}

func NewContainers(client ports.BackendClient) *Containers {
	return &Containers{client: client, Phase: PhaseLoading}
}

// Mount issues the single fetch of this view. Later calls do nothing.
func (v *Containers) Mount(ctx context.Context) {
	if v.mounted {
		return
	}
	v.mounted = true

	containers, err := v.client.ListContainers(ctx)
	if err != nil {
		v.Phase = PhaseError
		v.Error = MsgContainersFailed
		v.Err = err
		return
	}

	v.Rows = make([]Row, len(containers))
	for i, c := range containers {
		v.Rows[i] = toRow(c)
	}
	v.Phase = PhaseLoaded
}

func (v *Containers) Loading() bool { return v.Phase == PhaseLoading }
func (v *Containers) Failed() bool  { return v.Phase == PhaseError }
func (v *Containers) Loaded() bool  { return v.Phase == PhaseLoaded }

func toRow(c domain.Container) Row {
	return Row{
		ID:       c.ID,
		IP:       c.IPAddress,
		LastPing: c.LastPingLabel(),
		Status:   c.StatusLabel(),
		PingTime: c.PingTimeLabel(),
	}
}
