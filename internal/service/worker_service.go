package service

import (
	"context"
	"log"
	"time"
)

// WorkerService is the display sweeper: on a fixed cadence it re-samples the
// timeline now-marker and clears estimated end times that have gone stale.
// It never touches phase state.
type WorkerService struct {
	rooms     *RoomService
	interval  time.Duration
	retention time.Duration
}

func NewWorkerService(rooms *RoomService, interval, retention time.Duration) *WorkerService {
	return &WorkerService{
		rooms:     rooms,
		interval:  interval,
		retention: retention,
	}
}

// Start runs the sweeper until the context is cancelled
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Display sweeper started - interval %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Display sweeper stopped")
			return
		case <-ticker.C:
			w.rooms.RefreshNowMarker()
			if cleared := w.rooms.SweepExpiredEndTimes(w.retention); cleared > 0 {
				log.Printf("Cleared stale estimated end times for %d room(s)", cleared)
			}
		}
	}
}
