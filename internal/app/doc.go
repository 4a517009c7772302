// Package app is the launcher's controller. It loads the group file, shows
// the picker, starts the chosen command and is the only place that decides
// the process exit code.
package app
