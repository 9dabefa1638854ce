package gestures

import "sync"

// GestureArenaMember competes in a [GestureArena] for ownership of a pointer.
type GestureArenaMember interface {
	// AcceptGesture is called when the member wins the arena.
	AcceptGesture(pointerID int64)
	// RejectGesture is called when the member loses the arena.
	RejectGesture(pointerID int64)
}

// GestureArena disambiguates competing recognizers per pointer.
//
// Each pointer-down opens an arena. Recognizers add themselves, the host
// closes the arena after dispatching the down event, and the arena resolves
// when a member claims the gesture, when all but one reject, or when the
// pointer lifts and the arena is swept. A held arena defers the
// single-member fast path so a recognizer can decide later (e.g., after the
// pointer clears the touch slop).
type GestureArena struct {
	mu     sync.Mutex
	arenas map[int64]*arenaState
}

type arenaState struct {
	members []GestureArenaMember
	open    bool
	held    bool
	winner  GestureArenaMember
}

// NewGestureArena creates an empty arena manager.
func NewGestureArena() *GestureArena {
	return &GestureArena{arenas: make(map[int64]*arenaState)}
}

// DefaultArena is the process-wide arena used when none is injected.
var DefaultArena = NewGestureArena()

// Add enters member into the arena for pointerID, opening it if needed.
func (a *GestureArena) Add(pointerID int64, member GestureArenaMember) {
	a.mu.Lock()
	state := a.arenas[pointerID]
	if state == nil {
		state = &arenaState{open: true}
		a.arenas[pointerID] = state
	}
	state.members = append(state.members, member)
	a.mu.Unlock()
}

// Hold keeps the arena for pointerID from resolving to a lone member when
// closed. The holding member resolves or rejects explicitly later.
func (a *GestureArena) Hold(pointerID int64, member GestureArenaMember) {
	a.mu.Lock()
	if state := a.arenas[pointerID]; state != nil {
		state.held = true
	}
	a.mu.Unlock()
}

// Close marks the arena as no longer accepting members. If exactly one
// member is present and the arena is not held, that member wins immediately.
func (a *GestureArena) Close(pointerID int64) {
	a.mu.Lock()
	state := a.arenas[pointerID]
	if state == nil {
		a.mu.Unlock()
		return
	}
	state.open = false
	winner := a.tryResolveLocked(pointerID, state)
	a.mu.Unlock()

	if winner != nil {
		winner.AcceptGesture(pointerID)
	}
}

// Resolve declares member the winner of the arena for pointerID.
// Every other member is rejected.
func (a *GestureArena) Resolve(pointerID int64, member GestureArenaMember) {
	a.mu.Lock()
	state := a.arenas[pointerID]
	if state == nil || state.winner != nil {
		a.mu.Unlock()
		return
	}
	state.winner = member
	losers := make([]GestureArenaMember, 0, len(state.members))
	for _, m := range state.members {
		if m != member {
			losers = append(losers, m)
		}
	}
	delete(a.arenas, pointerID)
	a.mu.Unlock()

	member.AcceptGesture(pointerID)
	for _, loser := range losers {
		loser.RejectGesture(pointerID)
	}
}

// Reject withdraws member from the arena for pointerID. If that leaves a
// single member in a closed, unheld arena, the remaining member wins.
func (a *GestureArena) Reject(pointerID int64, member GestureArenaMember) {
	a.mu.Lock()
	state := a.arenas[pointerID]
	if state == nil {
		a.mu.Unlock()
		member.RejectGesture(pointerID)
		return
	}
	remaining := state.members[:0]
	for _, m := range state.members {
		if m != member {
			remaining = append(remaining, m)
		}
	}
	state.members = remaining
	winner := a.tryResolveLocked(pointerID, state)
	a.mu.Unlock()

	member.RejectGesture(pointerID)
	if winner != nil {
		winner.AcceptGesture(pointerID)
	}
}

// Sweep forces resolution when the pointer lifts: the first remaining member
// wins and the rest are rejected. Held arenas are swept too; a recognizer
// that wanted to keep deciding has had its chance by pointer-up.
func (a *GestureArena) Sweep(pointerID int64) {
	a.mu.Lock()
	state := a.arenas[pointerID]
	if state == nil {
		a.mu.Unlock()
		return
	}
	delete(a.arenas, pointerID)
	members := state.members
	a.mu.Unlock()

	if len(members) == 0 {
		return
	}
	members[0].AcceptGesture(pointerID)
	for _, loser := range members[1:] {
		loser.RejectGesture(pointerID)
	}
}

// tryResolveLocked returns the lone member of a closed, unheld arena and
// removes the arena, or nil when no fast-path resolution applies.
func (a *GestureArena) tryResolveLocked(pointerID int64, state *arenaState) GestureArenaMember {
	if state.open || state.held || state.winner != nil {
		return nil
	}
	if len(state.members) == 1 {
		delete(a.arenas, pointerID)
		return state.members[0]
	}
	if len(state.members) == 0 {
		delete(a.arenas, pointerID)
	}
	return nil
}
