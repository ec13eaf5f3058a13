package contact

import "time"

// Status is the submit state shared by the contact forms.
type Status struct {
	InFlight    bool
	Err         error
	SucceededAt time.Time
}

func (s *Status) begin() {
	s.InFlight = true
	s.Err = nil
	s.SucceededAt = time.Time{}
}

func (s *Status) finish(err error, now func() time.Time) {
	s.InFlight = false
	if err != nil {
		s.Err = err
		return
	}
	if now == nil {
		now = time.Now
	}
	s.SucceededAt = now()
}

// SuccessVisible reports whether now falls inside the success window.
func (s Status) SuccessVisible(now time.Time) bool {
	return s.SuccessRemaining(now) > 0
}

// SuccessRemaining returns how much of the success window is left at now.
func (s Status) SuccessRemaining(now time.Time) time.Duration {
	if s.SucceededAt.IsZero() || now.Before(s.SucceededAt) {
		return 0
	}
	remaining := s.SucceededAt.Add(SuccessDisplayDuration).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
