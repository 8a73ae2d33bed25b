// ABOUTME: Throttled generation-progress logging for the evolutionary search.
// ABOUTME: Reports on every improvement or every 50th generation otherwise.

package slotsolver

import (
	"fmt"
	"io"
	"log"
)

// progressLogger reports generation progress to a log.Logger, throttled
// to every improvement or every 50th generation otherwise, called
// directly from the generation loop so it never spawns a consumer
// goroutine.
type progressLogger struct {
	log         *log.Logger
	lastGen     int
	lastReport  int64
	hasReported bool
}

// newProgressLogger builds a progressLogger writing to w. w is typically
// os.Stderr or a file the caller opened for debug output.
func newProgressLogger(w io.Writer) *progressLogger {
	return &progressLogger{log: log.New(w, "", log.Ltime|log.Lmicroseconds)}
}

func (p *progressLogger) report(gen int, bestScore int64, improved bool) {
	if !improved && gen%50 != 0 {
		return
	}

	if !p.hasReported {
		p.log.Printf("generation %d: best score %d", gen, bestScore)
	} else {
		p.log.Printf("generation %d: best score %d (delta %s)", gen, bestScore, formatScoreDelta(bestScore-p.lastReport))
	}

	p.lastGen = gen
	p.lastReport = bestScore
	p.hasReported = true
}

// formatScoreDelta renders a signed score delta with an explicit sign.
func formatScoreDelta(delta int64) string {
	if delta >= 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}
