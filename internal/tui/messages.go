package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo switches the root router to another page. Payload, when set, is
// redelivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the async login command.
type LoginResult struct {
	Err      error
	Username string
}

// RegisterResult finishes the async registration command.
type RegisterResult struct {
	Err      error
	Username string
}

// ResetResult finishes the async password reset command.
type ResetResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

// ResetSuccessNotice is shown on the menu after a successful password reset.
type ResetSuccessNotice struct {
	Username string
}
