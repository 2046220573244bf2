// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Study Sesh Authors

package server

import "errors"

var errNoServersAreCreated = errors.New("no servers were created: empty http address")
