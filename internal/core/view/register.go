package view

import (
	"context"
	"time"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// Register is the registration form. On success it shows a confirmation
// and navigates to the login page after RedirectDelay; it never logs in.
type Register struct {
	client ports.BackendClient

	State         State
	Login         string
	Success       bool
	Message       string
	Error         string
	RedirectTo    string
	RedirectDelay time.Duration
	Err           error
}

func NewRegister(client ports.BackendClient, redirectDelay time.Duration) *Register {
	return &Register{client: client, RedirectDelay: redirectDelay}
}

func (v *Register) Submit(ctx context.Context, creds domain.Credentials) {
	v.Login = creds.Login
	v.Error = ""
	v.Err = nil
	v.Success = false
	v.Message = ""
	v.RedirectTo = ""

	if err := checkCredentials(creds); err != nil {
		v.State = StateIdle
		v.Error = MsgFieldsRequired
		v.Err = err
		return
	}

	v.State = StatePending
	if _, err := v.client.Register(ctx, creds); err != nil {
		v.State = StateFailed
		v.Error = MsgRegisterFailed
		v.Err = err
		return
	}

	v.State = StateSuccess
	v.Success = true
	v.Message = MsgRegistered
	v.RedirectTo = "/login"
}

// RedirectSeconds is the delay in whole seconds, as used by a meta refresh.
func (v *Register) RedirectSeconds() int {
	secs := int(v.RedirectDelay.Round(time.Second) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
