package gestures_test

import (
	"testing"

	"github.com/go-drift/drawerkit/pkg/gestures"
)

type fakeMember struct {
	accepted []int64
	rejected []int64
}

func (m *fakeMember) AcceptGesture(pointerID int64) {
	m.accepted = append(m.accepted, pointerID)
}

func (m *fakeMember) RejectGesture(pointerID int64) {
	m.rejected = append(m.rejected, pointerID)
}

func TestLoneMemberWinsOnClose(t *testing.T) {
	arena := gestures.NewGestureArena()
	m := &fakeMember{}

	arena.Add(7, m)
	arena.Close(7)

	if len(m.accepted) != 1 || m.accepted[0] != 7 {
		t.Errorf("accepted = %v, want [7]", m.accepted)
	}
	if len(m.rejected) != 0 {
		t.Errorf("rejected = %v, want none", m.rejected)
	}
}

func TestHeldArenaDefersLoneMember(t *testing.T) {
	arena := gestures.NewGestureArena()
	m := &fakeMember{}

	arena.Add(1, m)
	arena.Hold(1, m)
	arena.Close(1)
	if len(m.accepted) != 0 {
		t.Fatalf("held arena resolved early: accepted = %v", m.accepted)
	}

	arena.Resolve(1, m)
	if len(m.accepted) != 1 {
		t.Errorf("accepted = %v, want [1]", m.accepted)
	}
}

func TestResolveRejectsOtherMembers(t *testing.T) {
	arena := gestures.NewGestureArena()
	winner := &fakeMember{}
	loser := &fakeMember{}

	arena.Add(3, winner)
	arena.Add(3, loser)
	arena.Close(3)
	arena.Resolve(3, winner)

	if len(winner.accepted) != 1 {
		t.Errorf("winner accepted = %v, want [3]", winner.accepted)
	}
	if len(loser.rejected) != 1 {
		t.Errorf("loser rejected = %v, want [3]", loser.rejected)
	}
	if len(loser.accepted) != 0 {
		t.Errorf("loser accepted = %v, want none", loser.accepted)
	}
}

func TestRejectPromotesRemainingMember(t *testing.T) {
	arena := gestures.NewGestureArena()
	quitter := &fakeMember{}
	survivor := &fakeMember{}

	arena.Add(5, quitter)
	arena.Add(5, survivor)
	arena.Close(5)

	arena.Reject(5, quitter)
	if len(quitter.rejected) != 1 {
		t.Errorf("quitter rejected = %v, want [5]", quitter.rejected)
	}
	if len(survivor.accepted) != 1 {
		t.Errorf("survivor accepted = %v, want [5]", survivor.accepted)
	}
}

func TestSweepPicksFirstMember(t *testing.T) {
	arena := gestures.NewGestureArena()
	first := &fakeMember{}
	second := &fakeMember{}

	arena.Add(9, first)
	arena.Add(9, second)
	arena.Close(9)
	arena.Sweep(9)

	if len(first.accepted) != 1 {
		t.Errorf("first accepted = %v, want [9]", first.accepted)
	}
	if len(second.rejected) != 1 {
		t.Errorf("second rejected = %v, want [9]", second.rejected)
	}
}

func TestSweepUnknownPointerIsNoOp(t *testing.T) {
	arena := gestures.NewGestureArena()
	arena.Sweep(42)
	arena.Close(42)
}
