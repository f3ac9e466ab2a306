package controller

import (
	m "github.com/mouse-blink/scopegate/internal/model"
)

// List item types.
type locationItem struct {
	state m.LocationState
}

func (i locationItem) FilterValue() string {
	return i.state.Path.String()
}

