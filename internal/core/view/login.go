package view

import (
	"context"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// Login is the login form: Idle → Pending → Success | Failed.
type Login struct {
	client ports.BackendClient

	State State
	// Login is echoed back into the form; the password never is.
	Login string
	Error string
	// Err is the underlying failure, kept for logging only.
	Err error
}

func NewLogin(client ports.BackendClient) *Login {
	return &Login{client: client}
}

// Submit validates presence and calls the backend. Empty fields leave the
// view Idle and send nothing. On success the caller navigates to the
// containers page.
func (v *Login) Submit(ctx context.Context, creds domain.Credentials) {
	v.Login = creds.Login
	v.Error = ""
	v.Err = nil

	if err := checkCredentials(creds); err != nil {
		v.State = StateIdle
		v.Error = MsgFieldsRequired
		v.Err = err
		return
	}

	v.State = StatePending
	if _, err := v.client.Login(ctx, creds); err != nil {
		v.State = StateFailed
		v.Error = MsgLoginFailed
		v.Err = err
		return
	}
	v.State = StateSuccess
}

func (v *Login) Succeeded() bool { return v.State == StateSuccess }
