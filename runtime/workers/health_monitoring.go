package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"chat-client/observability"
)

// HealthMonitoringWorker samples the client's own process on a fixed
// interval and folds the readings into the session stats.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	stats          *observability.SessionStats
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(log *slog.Logger, stats *observability.SessionStats,
	metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, stats: stats, metricInterval: metricInterval}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			cpu, err := proc.CPUPercent()
			if err != nil {
				w.log.Error("Error while finding process cpu usage", "err", err)
				continue
			}
			ram, err := proc.MemoryPercent()
			if err != nil {
				w.log.Error("Error while finding process ram usage", "err", err)
				continue
			}
			w.stats.UpdateProcess(cpu, ram)
			w.stats.Refresh()
		}
	}
}
