// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal command loop and the client services into a single
// process lifecycle: authenticate first, then serve vault commands until the
// user quits.
package client
