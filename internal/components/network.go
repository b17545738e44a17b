package components

import (
	"slices"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Status is the pose a client reports for its own car every frame.
type Status struct {
	PlayerID int
	Position rl.Vector3
	Angle    float32
	Steering float32
}

// StatusSink receives the local player's status.
type StatusSink interface {
	Publish(s Status)
}

// StatusSource hands out the latest status of other players. ok is false
// once a player has disconnected or before it has reported anything.
type StatusSource interface {
	Latest(playerID int) (s Status, ok bool)
}

// Mailbox is an in-memory StatusSink and StatusSource. A network client
// feeds it from its receive goroutine while the game loop reads it.
type Mailbox struct {
	mu           sync.Mutex
	last         map[int]Status
	disconnected map[int]bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{
		last:         make(map[int]Status),
		disconnected: make(map[int]bool),
	}
}

// Publish stores s as the latest status of s.PlayerID. A player that
// reports again after disconnecting is considered back.
func (m *Mailbox) Publish(s Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last[s.PlayerID] = s
	delete(m.disconnected, s.PlayerID)
}

func (m *Mailbox) Latest(playerID int) (Status, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disconnected[playerID] {
		return Status{}, false
	}
	s, ok := m.last[playerID]
	return s, ok
}

// Disconnect forgets a player.
func (m *Mailbox) Disconnect(playerID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.last, playerID)
	m.disconnected[playerID] = true
}

// Players returns the ids with a live status, in ascending order.
func (m *Mailbox) Players() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(m.last))
	for id := range m.last {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
