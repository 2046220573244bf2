// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle: authenticate, run the planner loop, and on logout start
// over with a clean session.
package client
