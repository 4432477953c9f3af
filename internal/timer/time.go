package timer

import (
	"time"

	"github.com/rs/zerolog/log"
)

// TimeTrack logs the elapsed time since start. Meant to be deferred at
// the top of an operation:
//
//	defer timer.TimeTrack(time.Now(), "union")
func TimeTrack(start time.Time, name string) {
	log.Info().Dur("took", time.Since(start)).Msg(name)
}
