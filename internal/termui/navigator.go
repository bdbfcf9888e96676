package termui

import (
	"sync"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
)

// Navigator ends the current screen of a command. Left is closed on the
// first GoBack.
type Navigator struct {
	once sync.Once
	left chan struct{}
}

var _ dependency.Navigator = (*Navigator)(nil)

func NewNavigator() *Navigator {
	return &Navigator{left: make(chan struct{})}
}

func (n *Navigator) GoBack() {
	n.once.Do(func() { close(n.left) })
}

func (n *Navigator) CanGoBack() bool {
	return true
}

func (n *Navigator) Left() <-chan struct{} {
	return n.left
}
