package display

import "github.com/charmbracelet/log"

type loggingScreen struct {
	next   Screen
	logger *log.Logger
}

// WithLogging wraps s so every mode change is logged.
func WithLogging(s Screen, logger *log.Logger) Screen {
	if logger == nil {
		logger = log.Default()
	}
	return &loggingScreen{next: s, logger: logger.WithPrefix("display")}
}

func (s *loggingScreen) SetTitle(title string) {
	s.logger.Debug("set title", "title", title)
	s.next.SetTitle(title)
}

func (s *loggingScreen) SetWindowSize(width, height int) {
	s.logger.Info("set window size", "width", width, "height", height)
	s.next.SetWindowSize(width, height)
}

func (s *loggingScreen) WindowSize() (int, int) {
	return s.next.WindowSize()
}

func (s *loggingScreen) SetFullscreen(fullscreen bool) {
	s.logger.Info("set fullscreen", "fullscreen", fullscreen, "was", s.next.IsFullscreen())
	s.next.SetFullscreen(fullscreen)
}

func (s *loggingScreen) IsFullscreen() bool {
	return s.next.IsFullscreen()
}

func (s *loggingScreen) Restore() {
	s.logger.Info("restore screen")
	s.next.Restore()
}

func (s *loggingScreen) Size() (int, int) {
	return s.next.Size()
}
