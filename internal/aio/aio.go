// Package aio provides small I/O helpers.
package aio

import (
	"io"

	"github.com/rs/zerolog/log"
)

// Close closes the given closer and logs a failure instead of dropping it.
// Meant for defer statements where no error can be returned anymore.
func Close(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close resource")
	}
}
