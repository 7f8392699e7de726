// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for includedir. It handles
// flag parsing, sub-command dispatch, error handling, and output handling.
package cmd
