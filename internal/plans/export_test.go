package plans

import "time"

// SetClock replaces the service clock. Sessions started afterwards use it too.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
