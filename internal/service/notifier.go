package service

import (
	"backend/internal/repository"
	"backend/internal/websocket"
)

// Notifier pushes a freshly derived balance snapshot to connected pages
// after every successful mutation. The snapshot is recomputed from the
// record store each time; there is no incremental state to desync.
type Notifier struct {
	repo repository.LedgerRepository
	hub  *websocket.Hub
}

// NewNotifier wires the hub. A nil hub disables broadcasting (tests).
func NewNotifier(repo repository.LedgerRepository, hub *websocket.Hub) *Notifier {
	return &Notifier{repo: repo, hub: hub}
}

// PublishSnapshot recomputes and broadcasts the inventory snapshot.
func (n *Notifier) PublishSnapshot() {
	if n == nil || n.hub == nil {
		return
	}
	n.hub.Publish("snapshot", buildInventorySnapshot(n.repo))
}
