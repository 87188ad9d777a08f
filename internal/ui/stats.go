package ui

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// rateSmoothing is the weight of the previous rate in the exponentially
	// weighted transfer rate.
	rateSmoothing = 0.7
)

// Summary is the final state of a transfer.
type Summary struct {
	BytesTotal       uint64
	BytesTransferred uint64
	Elapsed          time.Duration
	TransferRate     float64
}

// LogValue implements [slog.LogValuer], rendering the sizes human readable.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("written", humanize.Bytes(s.BytesTransferred)),
		slog.String("total", humanize.Bytes(s.BytesTotal)),
		slog.Duration("elapsed", s.Elapsed.Round(time.Millisecond)),
		slog.String("rate", humanize.Bytes(uint64(s.TransferRate))+"/s"),
	)
}

// TransferStats tracks the elapsed time and the transfer rate of a transfer.
// The rate is only calculated once at least a second has passed.
type TransferStats struct {
	StartTime        time.Time
	BytesTotal       uint64
	BytesTransferred uint64
	TransferRate     float64

	now func() time.Time
}

func (t *TransferStats) clock() time.Time {
	if t.now != nil {
		return t.now()
	}

	return time.Now()
}

// Start resets the statistics for a new transfer.
func (t *TransferStats) Start(bytesTotal uint64) {
	t.StartTime = t.clock()
	t.BytesTotal = bytesTotal
	t.BytesTransferred = 0
	t.TransferRate = 0
}

// Update records the total amount of transferred bytes so far.
func (t *TransferStats) Update(totalBytesTransferred uint64) {
	if t.StartTime.IsZero() {
		t.StartTime = t.clock()
	}

	t.BytesTransferred = totalBytesTransferred

	elapsed := t.clock().Sub(t.StartTime)
	if elapsed < time.Second {
		return
	}

	instantRate := float64(t.BytesTransferred) / elapsed.Seconds()

	if t.TransferRate == 0 {
		t.TransferRate = instantRate
	} else {
		t.TransferRate = rateSmoothing*t.TransferRate + (1-rateSmoothing)*instantRate
	}

	slog.Debug("Transfer calculation:",
		"instantRate", humanize.Bytes(uint64(instantRate))+"/s",
		"weightedRate", humanize.Bytes(uint64(t.TransferRate))+"/s",
		"bytesTransferred", t.BytesTransferred,
		"elapsed", elapsed.Round(time.Millisecond),
	)
}

// End returns the [Summary] of the transfer. The rate of the summary is the
// average over the whole transfer.
func (t *TransferStats) End() Summary {
	s := Summary{
		BytesTotal:       t.BytesTotal,
		BytesTransferred: t.BytesTransferred,
	}

	if !t.StartTime.IsZero() {
		s.Elapsed = t.clock().Sub(t.StartTime)
	}

	if s.Elapsed > 0 {
		s.TransferRate = float64(s.BytesTransferred) / s.Elapsed.Seconds()
	}

	return s
}
