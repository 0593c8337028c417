package rental

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the complete graph; anything missing is illegal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted},
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the outgoing edges of s.
func (s Status) AllowedTransitions() []Status {
	out := make([]Status, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

func (s Status) String() string {
	return string(s)
}

// BlockingStatuses lists the statuses that hold a car for their date range.
func BlockingStatuses(includePending bool) []Status {
	if includePending {
		return []Status{StatusPending, StatusConfirmed, StatusActive}
	}
	return []Status{StatusConfirmed, StatusActive}
}

// CommittedStatuses are rentals the fleet has promised to honour.
func CommittedStatuses() []Status {
	return []Status{StatusConfirmed, StatusActive}
}

func StatusStrings(ss []Status) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
