package stats

import (
	"runtime"

	"github.com/rs/zerolog/log"
)

// LogMemUsage logs current heap usage, total allocations, OS memory and
// the number of completed GC cycles. Returns the current allocation so
// callers can track growth between invocations.
func LogMemUsage() uint64 {
	bToMB := func(b uint64) uint64 {
		return b / 1024 / 1024
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Info().
		Uint64("allocMiB", bToMB(m.Alloc)).
		Uint64("totalAllocMiB", bToMB(m.TotalAlloc)).
		Uint64("sysMiB", bToMB(m.Sys)).
		Uint32("numGC", m.NumGC).
		Msg("memory usage")

	return m.Alloc
}
