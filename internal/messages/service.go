package messages

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"heroes/internal/domain"
)

// Service is an append-only feed of display lines, safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	messages []string
	logger   logrus.FieldLogger
}

// New returns an empty feed. Lines are mirrored to logger at debug level; a
// nil logger discards them.
func New(logger logrus.FieldLogger) *Service {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{logger: logger}
}

var _ domain.MessageFeed = (*Service)(nil)

// Add appends message to the feed.
func (s *Service) Add(message string) {
	s.mu.Lock()
	s.messages = append(s.messages, message)
	s.mu.Unlock()
	s.logger.WithField("message", message).Debug("message added")
}

// Messages returns a copy of the feed in insertion order.
func (s *Service) Messages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// Clear empties the feed.
func (s *Service) Clear() {
	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()
}
