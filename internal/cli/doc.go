// Package cli parses the launcher's command line: one group file and an
// optional theme.
package cli
