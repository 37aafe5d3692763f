// Package speech is the boundary between the assistant and the user's voice.
// Engines are constructed explicitly and passed to their consumers.
package speech

import (
	"context"

	"github.com/pkg/errors"
)

// ErrClosed is returned by Listen once the user has hung up or the engine
// has been closed.
var ErrClosed = errors.New("speech engine closed")

// DefaultRetries is the number of times Listen asks again after silence.
const DefaultRetries = 3

// Engine captures and renders spoken text.
type Engine interface {
	// Listen speaks prompt when it is not empty and returns the next
	// utterance in lower case. After the configured number of silent or
	// unintelligible attempts it returns "" with a nil error.
	Listen(ctx context.Context, prompt string) (string, error)

	// Speak renders text to the user.
	Speak(text string)

	// Close releases the underlying devices.
	Close() error
}
