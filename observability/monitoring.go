package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// SessionStats aggregates the client-side telemetry counters.
// Incr methods are nil-safe so instrumented code never has to care
// whether telemetry is wired.
type SessionStats struct {
	log *slog.Logger

	framesSent       uint64
	framesReceived   uint64
	callsSent        uint64
	callsTimedOut    uint64
	eventsDispatched uint64
	malformedFrames  uint64

	mu        sync.RWMutex
	latest    Snapshot
	lastCheck time.Time
}

// Snapshot is the point-in-time view served to the debug surface.
type Snapshot struct {
	FramesSent       uint64  `json:"frames_sent"`
	FramesReceived   uint64  `json:"frames_received"`
	CallsSent        uint64  `json:"calls_sent"`
	CallsTimedOut    uint64  `json:"calls_timed_out"`
	EventsDispatched uint64  `json:"events_dispatched"`
	MalformedFrames  uint64  `json:"malformed_frames"`
	AllocMemMb       uint64  `json:"alloc_mem_mb"`
	NumGC            uint32  `json:"num_gc"`
	CPUPercent       float64 `json:"cpu_percent"`
	RAMPercent       float32 `json:"ram_percent"`
}

func NewSessionStats(log *slog.Logger) *SessionStats {
	return &SessionStats{log: log, lastCheck: time.Now()}
}

func (s *SessionStats) IncrFramesSent() {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.framesSent, 1)
}

func (s *SessionStats) IncrFramesReceived() {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.framesReceived, 1)
}

func (s *SessionStats) IncrCallsSent() {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.callsSent, 1)
}

func (s *SessionStats) IncrCallsTimedOut() {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.callsTimedOut, 1)
}

func (s *SessionStats) IncrEventsDispatched() {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.eventsDispatched, 1)
}

func (s *SessionStats) IncrMalformedFrames() {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.malformedFrames, 1)
}

// UpdateProcess merges externally sampled process metrics (cpu/ram come
// from the health monitoring worker, not from this package).
func (s *SessionStats) UpdateProcess(cpu float64, ram float32) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest.CPUPercent = cpu
	s.latest.RAMPercent = ram
}

// Refresh folds the atomic counters and the Go memory stats into the
// latest snapshot.
func (s *SessionStats) Refresh() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest.FramesSent = atomic.LoadUint64(&s.framesSent)
	s.latest.FramesReceived = atomic.LoadUint64(&s.framesReceived)
	s.latest.CallsSent = atomic.LoadUint64(&s.callsSent)
	s.latest.CallsTimedOut = atomic.LoadUint64(&s.callsTimedOut)
	s.latest.EventsDispatched = atomic.LoadUint64(&s.eventsDispatched)
	s.latest.MalformedFrames = atomic.LoadUint64(&s.malformedFrames)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.latest.AllocMemMb = m.Alloc / 1024 / 1024
	s.latest.NumGC = m.NumGC
	s.lastCheck = time.Now()

	s.log.Debug("Stats refreshed",
		"frames_sent", s.latest.FramesSent,
		"frames_received", s.latest.FramesReceived,
		"calls_sent", s.latest.CallsSent,
		"mem_mb", s.latest.AllocMemMb,
	)
}

func (s *SessionStats) GetLatest() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
