// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned by the login flow when the user quits before
// authenticating.
var ErrUserQuit = errors.New("user quit")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The server is unreachable, try again later"
	}

	return err.Error()
}
