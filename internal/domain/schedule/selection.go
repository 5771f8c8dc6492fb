package schedule

import (
	"roomstay/internal/domain/stay"
	"roomstay/internal/pkg/caldate"

	"github.com/google/uuid"
)

type SelectionStatus string

const (
	SelectionEmpty    SelectionStatus = "empty"
	SelectionAnchored SelectionStatus = "anchored"
	SelectionDragging SelectionStatus = "dragging"
	SelectionValid    SelectionStatus = "valid"
)

// RejectReason explains why a released selection was reset. Surfaced for
// caller diagnostics; rejection itself is a state transition, not an error.
type RejectReason string

const (
	RejectNone                     RejectReason = ""
	RejectNoMatchingPolicy         RejectReason = "no_matching_policy"
	RejectNightsOutOfRange         RejectReason = "nights_out_of_range"
	RejectConflictsWithReservation RejectReason = "conflicts_with_reservation"
)

// BookingIntent is the value object emitted when a selection finalizes.
// External booking-form logic turns it into a persisted reservation; the
// engine itself never persists.
type BookingIntent struct {
	RoomID    uuid.UUID
	Arrival   caldate.Date
	Departure caldate.Date
	Stay      *stay.Stay
}

// Selection drives an interactive arrival/departure pick over a calendar
// grid. It validates the in-progress range against the room's policies and
// reservations from the snapshot it was created with; callers swap in a
// fresh machine when the snapshot changes.
type Selection struct {
	snapshot *Snapshot
	roomID   uuid.UUID
	anchor   caldate.Date
	cursor   caldate.Date
	matched  *stay.Stay
	status   SelectionStatus
	reason   RejectReason
}

func NewSelection(snapshot *Snapshot) *Selection {
	return &Selection{snapshot: snapshot, status: SelectionEmpty}
}

func (s *Selection) Status() SelectionStatus { return s.status }
func (s *Selection) RoomID() uuid.UUID       { return s.roomID }
func (s *Selection) Anchor() caldate.Date    { return s.anchor }
func (s *Selection) Cursor() caldate.Date    { return s.cursor }
func (s *Selection) MatchedStay() *stay.Stay { return s.matched }

// LastRejectReason reports why the previous Release reset the selection,
// or RejectNone.
func (s *Selection) LastRejectReason() RejectReason { return s.reason }

// Pick anchors the selection on a date that is a valid arrival day for at
// least one policy of the room. Picking an invalid day is a no-op and the
// state stays Empty.
func (s *Selection) Pick(roomID uuid.UUID, d caldate.Date) bool {
	if s.status != SelectionEmpty {
		return false
	}

	for _, policy := range s.snapshot.PoliciesForRoom(roomID) {
		if IsValidArrival(d, policy) {
			s.roomID = roomID
			s.anchor = d
			s.cursor = d
			s.status = SelectionAnchored
			s.reason = RejectNone
			return true
		}
	}
	return false
}

// Drag moves the cursor to a later date within the same room. Movements to
// a date before the anchor are ignored.
func (s *Selection) Drag(d caldate.Date) {
	if s.status != SelectionAnchored && s.status != SelectionDragging {
		return
	}
	if d.Before(s.anchor) {
		return
	}
	s.cursor = d
	s.status = SelectionDragging
}

// Release validates the dragged range. A single click auto-extends to one
// night. On success the matched policy is recorded and the state becomes
// Valid; any failed check resets straight back to Empty with a reason code.
func (s *Selection) Release() bool {
	if s.status != SelectionAnchored && s.status != SelectionDragging {
		return false
	}

	start := s.anchor
	end := s.cursor
	if start == end {
		end = start.AddDays(1)
	}

	matched, reason := s.matchPolicy(start, end)
	if matched == nil {
		s.resetWithReason(reason)
		return false
	}

	if HasConflict(start, end, s.snapshot.ReservationsForRoom(s.roomID)) {
		s.resetWithReason(RejectConflictsWithReservation)
		return false
	}

	s.cursor = end
	s.matched = matched
	s.status = SelectionValid
	s.reason = RejectNone
	return true
}

// matchPolicy finds a policy of the room whose active window contains both
// endpoints, whose weekday sets admit them, and whose night range admits
// the stay length. Weekday/window failures and night-range failures carry
// distinct reasons: a policy that fits the dates but not the length reports
// NightsOutOfRange rather than NoMatchingPolicy.
func (s *Selection) matchPolicy(start, end caldate.Date) (*stay.Stay, RejectReason) {
	nights := start.DaysUntil(end)
	sawDateMatch := false

	for _, policy := range s.snapshot.PoliciesForRoom(s.roomID) {
		if !policy.AllowsArrival(start) || !policy.AllowsDeparture(end) {
			continue
		}
		sawDateMatch = true
		if policy.Nights().Contains(nights) {
			return policy, RejectNone
		}
	}

	if sawDateMatch {
		return nil, RejectNightsOutOfRange
	}
	return nil, RejectNoMatchingPolicy
}

// Finalize consumes a Valid selection into a BookingIntent and resets the
// machine.
func (s *Selection) Finalize() (BookingIntent, bool) {
	if s.status != SelectionValid {
		return BookingIntent{}, false
	}

	intent := BookingIntent{
		RoomID:    s.roomID,
		Arrival:   s.anchor,
		Departure: s.cursor,
		Stay:      s.matched,
	}
	s.Reset()
	return intent, true
}

// Reset discards any in-progress or valid selection.
func (s *Selection) Reset() {
	s.roomID = uuid.Nil
	s.anchor = caldate.Date{}
	s.cursor = caldate.Date{}
	s.matched = nil
	s.status = SelectionEmpty
	s.reason = RejectNone
}

func (s *Selection) resetWithReason(reason RejectReason) {
	s.Reset()
	s.reason = reason
}
