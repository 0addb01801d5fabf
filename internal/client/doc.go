// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

// Package client implements the headless client application runtime.
//
// It wires authentication, client services, and the background
// synchronization job into a single process lifecycle.
package client
