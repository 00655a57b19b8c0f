package progress

// Reader is pushed the current aggregate once it becomes current
type Reader interface {
	LoadProgress(p *PlayerProgress)
}

// Writer additionally pulls its runtime state back before a save.
// Each writer mutates only the fields it owns.
type Writer interface {
	Reader
	UpdateProgress(p *PlayerProgress)
}

// Service holds the single current aggregate. Every holder shares the same
// pointer, so in-memory mutations are visible to all of them.
type Service struct {
	progress *PlayerProgress
}

// NewService creates an empty store
func NewService() *Service {
	return &Service{}
}

// Progress returns the current aggregate, or nil before the first load
func (s *Service) Progress() *PlayerProgress {
	return s.progress
}

// SetProgress replaces the current aggregate wholesale
func (s *Service) SetProgress(p *PlayerProgress) {
	s.progress = p
}
