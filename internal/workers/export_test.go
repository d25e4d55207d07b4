package workers

import (
	"io"
	"time"
)

// SetTextExtractor replaces the PDF text extractor of a delivery processor.
func SetTextExtractor(p *DeliveryProcessor, fn func(io.ReaderAt, int64) ([]string, error)) {
	p.extract = fn
}

// SetClock replaces the clock of a cleanup processor.
func SetClock(p *CleanupProcessor, now func() time.Time) {
	p.now = now
}
