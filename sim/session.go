package sim

import "sync"

// Stats is a copy of the session counters for display.
type Stats struct {
	Lives int
	Stars int
}

// Session holds the life and star counters for one play session. Counters
// survive map reloads and map changes; Reset starts a new session.
type Session struct {
	mu           sync.Mutex
	lives        int
	stars        int
	startLives   int
	starsPerLife int
}

func NewSession(lives, starsPerLife int) *Session {
	return &Session{
		lives:        lives,
		startLives:   lives,
		starsPerLife: starsPerLife,
	}
}

// AddStar counts a star. Reaching exactly starsPerLife stars trades them for
// a life and reports true.
func (s *Session) AddStar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stars++
	if s.stars == s.starsPerLife {
		s.lives++
		s.stars = 0
		return true
	}
	return false
}

// LoseLife takes a life and returns how many remain.
func (s *Session) LoseLife() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lives--
	return s.lives
}

func (s *Session) Lives() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lives
}

func (s *Session) Stars() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stars
}

// Reset restores the starting counters.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lives = s.startLives
	s.stars = 0
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Lives: s.lives, Stars: s.stars}
}
