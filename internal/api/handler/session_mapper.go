package handler

import (
	"github.com/lelouchhh/vk-2025/internal/core/domain"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// --- Request → domain ---

func toCredentials(login, password string) domain.Credentials {
	return domain.Credentials{Login: login, Password: password}
}

// --- Domain → HTTP response ---

func toSessionResponse(s ports.SessionManager) sessionResponse {
	if !s.Authenticated() {
		return sessionResponse{}
	}
	resp := sessionResponse{Authenticated: true}
	if claims, ok := s.Claims(); ok {
		resp.Login = claims.Login
		if !claims.ExpiresAt.IsZero() {
			exp := claims.ExpiresAt.UTC()
			resp.ExpiresAt = &exp
		}
	}
	return resp
}

func toContainerResponses(items []domain.Container) []containerResponse {
	out := make([]containerResponse, len(items))
	for i, c := range items {
		out[i] = containerResponse{
			ID:        c.ID,
			IPAddress: c.IPAddress,
			LastPing:  c.LastPing.UTC(),
			Status:    c.Status,
			PingTime:  c.PingTime,
			Labels: labels{
				Status:   c.StatusLabel(),
				LastPing: c.LastPingLabel(),
				PingTime: c.PingTimeLabel(),
			},
		}
	}
	return out
}
