package speech

import (
	"context"
	"strings"
	"sync"
)

// Script is an engine that replays a fixed list of utterances and records
// everything spoken. Empty utterances count as silence. Once the script is
// exhausted Listen returns ErrClosed without speaking its prompt.
type Script struct {
	mu      sync.Mutex
	lines   []string
	retries int
	spoken  []string
	closed  bool
}

// NewScript creates a script engine over lines.
func NewScript(retries int, lines ...string) *Script {
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &Script{lines: lines, retries: retries}
}

func (s *Script) Listen(ctx context.Context, prompt string) (string, error) {
	if s.exhausted() {
		return "", ErrClosed
	}
	if prompt != "" {
		s.Speak(prompt)
	}

	for range s.retries {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		s.mu.Lock()
		if s.closed || len(s.lines) == 0 {
			s.mu.Unlock()
			return "", ErrClosed
		}
		line := s.lines[0]
		s.lines = s.lines[1:]
		s.mu.Unlock()

		if text := strings.ToLower(strings.TrimSpace(line)); text != "" {
			return text, nil
		}
		s.Speak("You were silent. Please try again.")
	}
	return "", nil
}

func (s *Script) exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed || len(s.lines) == 0
}

func (s *Script) Speak(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, text)
}

// Spoken returns everything spoken so far.
func (s *Script) Spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.spoken...)
}

func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Ensure Script implements Engine
var _ Engine = (*Script)(nil)
