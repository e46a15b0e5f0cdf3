package in

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	enforcein "grindlock/internal/modules/enforce/port/in"
	"grindlock/internal/platform/clock"
	"grindlock/internal/platform/config"
)

const tickInterval = 30 * time.Second

// Daemon is the external scheduler: a ticker loop that re-invokes the
// engine at the configured check times and at the poll interval while a
// block is active. The engine itself never waits; all looping lives here.
// A lock file keeps invocations serialized across processes, since two
// concurrent reconciles could interleave hosts-file writes.
type Daemon struct {
	usecase  enforcein.Usecase
	schedule config.Schedule
	lockPath string
	clock    clock.Clock
	logger   *log.Logger

	fired    map[string]bool
	firedDay time.Time
	lastPoll time.Time
}

func NewDaemon(usecase enforcein.Usecase, schedule config.Schedule, lockPath string, clk clock.Clock, logger *log.Logger) *Daemon {
	return &Daemon{
		usecase:  usecase,
		schedule: schedule,
		lockPath: lockPath,
		clock:    clk,
		logger:   logger,
		fired:    map[string]bool{},
	}
}

// Run blocks until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	unlock, err := d.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	d.logger.Info("scheduler started",
		"morning", d.schedule.MorningStart+"-"+d.schedule.MorningEnd,
		"midday", d.schedule.Midday,
		"evening", d.schedule.Evening,
		"poll", d.schedule.PollInterval)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("scheduler stopped")
			return nil
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *Daemon) tick(ctx context.Context) {
	now := d.clock.Now()
	d.resetFiredOnNewDay(now)

	if mode, slot := d.dueCheck(now); mode != "" && !d.fired[slot] {
		d.fired[slot] = true
		d.runCheck(ctx, mode)
		return
	}
	d.maybePoll(ctx, now)
}

// dueCheck returns the check mode scheduled for this instant, if any, with
// a slot key that dedupes repeat ticks within the same minute. The morning
// check re-fires at the top of every hour inside the morning window so a
// machine that wakes mid-window still gets checked.
func (d *Daemon) dueCheck(now time.Time) (mode, slot string) {
	startHour, _, _ := config.ParseClockTime(d.schedule.MorningStart)
	endHour, _, _ := config.ParseClockTime(d.schedule.MorningEnd)
	middayHour, middayMinute, _ := config.ParseClockTime(d.schedule.Midday)
	eveningHour, eveningMinute, _ := config.ParseClockTime(d.schedule.Evening)

	hour, minute := now.Hour(), now.Minute()
	switch {
	case minute == 0 && hour >= startHour && hour < endHour:
		return "morning", fmt.Sprintf("morning-%02d", hour)
	case hour == middayHour && minute == middayMinute:
		return "midday", "midday"
	case hour == eveningHour && minute == eveningMinute:
		return "evening", "evening"
	default:
		return "", ""
	}
}

// maybePoll re-invokes the engine at the poll interval, but only while the
// mechanism reports an active block: an idle day needs no provider traffic.
func (d *Daemon) maybePoll(ctx context.Context, now time.Time) {
	if now.Sub(d.lastPoll) < d.schedule.PollInterval {
		return
	}
	status, err := d.usecase.BlockStatus(ctx)
	if err != nil {
		d.logger.Warn("block state unreadable", "err", err)
		return
	}
	if !status.Active {
		return
	}
	d.lastPoll = now
	d.runCheck(ctx, "poll")
}

func (d *Daemon) runCheck(ctx context.Context, mode string) {
	decision, err := d.usecase.RunCheck(ctx, mode)
	if err != nil {
		d.logger.Error("check failed", "mode", mode, "err", err)
		return
	}
	d.logger.Info("check complete",
		"mode", mode,
		"phase", decision.Phase,
		"today", decision.Today,
		"yesterday", decision.Yesterday,
		"block", decision.BlockActive,
		"delta", decision.Delta)
}

func (d *Daemon) resetFiredOnNewDay(now time.Time) {
	day := clock.DayStart(now)
	if !day.Equal(d.firedDay) {
		d.firedDay = day
		d.fired = map[string]bool{}
	}
}

func (d *Daemon) acquireLock() (func(), error) {
	file, err := os.OpenFile(d.lockPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("scheduler already running (lock %s held)", d.lockPath)
	}
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", d.lockPath, err)
	}
	_, _ = file.WriteString(strconv.Itoa(os.Getpid()))
	_ = file.Close()
	return func() { _ = os.Remove(d.lockPath) }, nil
}
