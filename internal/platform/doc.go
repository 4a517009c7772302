package platform

// Package platform contains OS integration glue: icon extraction from
// Windows executables, starting launched commands as detached processes,
// system language detection and per-user directories.
