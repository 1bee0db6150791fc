// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package logging

import "strings"

const maxLoggedValueLen = 200

// SanitizeValue prepares user-supplied text for a log field. Line breaks
// are escaped so a value cannot forge extra console log lines, and long
// values are truncated.
func SanitizeValue(value string) string {
	value = strings.NewReplacer("\r", "\\r", "\n", "\\n").Replace(value)
	return truncateString(value, maxLoggedValueLen)
}

// SanitizeSessionID masks a session ID, keeping the first and last 4 characters.
func SanitizeSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) <= 12 {
		return "***"
	}
	return sessionID[:4] + "..." + sessionID[len(sessionID)-4:]
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
