package domain

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusPaid      Status = "paid"
)

var lifecycle = []Status{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusPaid,
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s.index() < 0 {
		return "", NewValidationError("status", "unknown status %q", raw)
	}
	return s, nil
}

func (s Status) index() int {
	for i, st := range lifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool { return s.index() >= 0 }

// Open reports whether the order still counts against its table.
func (s Status) Open() bool { return s != StatusPaid }

// Next returns the single status s may move to.
func (s Status) Next() (Status, bool) {
	i := s.index()
	if i < 0 || i == len(lifecycle)-1 {
		return "", false
	}
	return lifecycle[i+1], true
}

// Previous returns the only status from which s can be reached.
func (s Status) Previous() (Status, bool) {
	i := s.index()
	if i <= 0 {
		return "", false
	}
	return lifecycle[i-1], true
}

// CheckTransition rejects anything other than a single step forward.
func CheckTransition(from, to Status) error {
	if !to.Valid() {
		return NewValidationError("status", "unknown status %q", to)
	}
	next, ok := from.Next()
	if !ok || next != to {
		return NewValidationError("status", "cannot move order from %s to %s", from, to)
	}
	return nil
}
