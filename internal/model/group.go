package model

import (
	"github.com/google/uuid"
)

// Group is a named, optionally iconed, ordered collection of launchable items
type Group struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon,omitempty"`
	Items []*Item `json:"items"`
}

// Item is a single launchable entry of a group
type Item struct {
	// ID identifies the item for the lifetime of the process. It is not part
	// of the group file.
	ID      string  `json:"-"`
	Name    string  `json:"name"`
	Icon    string  `json:"icon,omitempty"`
	Command Command `json:"command"`
}

// NewGroup creates an empty group
func NewGroup(name, icon string) *Group {
	return &Group{
		Name:  name,
		Icon:  icon,
		Items: make([]*Item, 0),
	}
}

// AddItem appends a new item to the end of the group and returns it.
// Names are not required to be unique and the command is stored as given.
func (g *Group) AddItem(name, icon string, command Command) *Item {
	item := &Item{
		ID:      uuid.NewString(),
		Name:    name,
		Icon:    icon,
		Command: command,
	}
	g.Items = append(g.Items, item)
	return item
}

// RemoveItem removes the first item with the given name.
// Nothing happens when no item matches.
func (g *Group) RemoveItem(name string) {
	for i, item := range g.Items {
		if item.Name == name {
			g.Items = append(g.Items[:i], g.Items[i+1:]...)
			break
		}
	}
}

// Len returns the number of items in the group
func (g *Group) Len() int {
	return len(g.Items)
}

// IsEmpty reports whether the group has nothing to launch
func (g *Group) IsEmpty() bool {
	return len(g.Items) == 0
}

// ItemAt returns the item at display position i, or nil when out of range
func (g *Group) ItemAt(i int) *Item {
	if i < 0 || i >= len(g.Items) {
		return nil
	}
	return g.Items[i]
}

// FindItem returns the item with the given runtime ID
func (g *Group) FindItem(id string) (*Item, bool) {
	for _, item := range g.Items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// IndexOf returns the display position of the item with the given ID, or -1
func (g *Group) IndexOf(id string) int {
	for i, item := range g.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
