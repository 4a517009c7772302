package ui

// Package ui contains the Fyne-based picker window of the launcher.
// It renders a group (icon, title, items) and reports the user's choice
// as a Result to its caller; it never starts processes or exits.
// All UI strings are localized via Localization.
