package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/VersaceXcodes/eco5/internal/handlers"
	"github.com/VersaceXcodes/eco5/internal/services"
)

const defaultInterval = 24 * time.Hour

// Scheduler rotates dashboard daily tips on a fixed interval and pushes
// the resulting alerts to connected websocket clients.
type Scheduler struct {
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		interval: intervalFromEnv(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func intervalFromEnv() time.Duration {
	raw := os.Getenv("DAILY_TIP_INTERVAL")
	if raw == "" {
		return defaultInterval
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 1 {
		log.Printf("Invalid DAILY_TIP_INTERVAL %q, using default", raw)
		return defaultInterval
	}

	return time.Duration(seconds) * time.Second
}

// Start runs the tip rotation loop until Stop is called.
func (s *Scheduler) Start() {
	log.Printf("Starting daily tip scheduler with interval %s", s.interval)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		day := 0

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				day++
				s.rotate(day)
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	log.Println("Stopping daily tip scheduler")
	s.cancel()
}

func (s *Scheduler) rotate(day int) {
	alerts, err := services.RefreshDailyTips(day)

	if err != nil {
		log.Printf("Daily tip rotation failed: %v", err)
		return
	}

	for _, alert := range alerts {
		handlers.BroadcastAlert(alert)
	}

	log.Printf("Rotated daily tips for %d users", len(alerts))
}
