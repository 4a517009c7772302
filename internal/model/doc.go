package model

// Package model defines the desktop group data structures shared by the
// loader, the picker window and the launcher: groups, items and commands.
// A Group keeps its items in display order; mutation goes through AddItem
// and RemoveItem only.
