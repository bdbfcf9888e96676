package httpapi

import (
	"context"
	"sync"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
)

// requestPresenter records what a handler shows the user while serving one
// request so the response can carry it. Notifications are acknowledged
// immediately and confirmations come from the request itself.
type requestPresenter struct {
	mu      sync.Mutex
	alert   string
	notice  string
	confirm bool
}

var _ dependency.Presenter = (*requestPresenter)(nil)

func (p *requestPresenter) Alert(ctx context.Context, title, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alert = message
}

func (p *requestPresenter) Notify(ctx context.Context, message string) <-chan struct{} {
	p.mu.Lock()
	p.notice = message
	p.mu.Unlock()
	ack := make(chan struct{})
	close(ack)
	return ack
}

func (p *requestPresenter) Confirm(ctx context.Context, title, message string) bool {
	return p.confirm
}

func (p *requestPresenter) lastAlert() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alert
}

func (p *requestPresenter) lastNotice() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notice
}

// requestNavigator turns "go back" into the end of the request.
type requestNavigator struct {
	once sync.Once
	left chan struct{}
}

var _ dependency.Navigator = (*requestNavigator)(nil)

func newRequestNavigator() *requestNavigator {
	return &requestNavigator{left: make(chan struct{})}
}

func (n *requestNavigator) GoBack() {
	n.once.Do(func() { close(n.left) })
}

func (n *requestNavigator) CanGoBack() bool {
	return true
}

func (n *requestNavigator) Left() <-chan struct{} {
	return n.left
}
