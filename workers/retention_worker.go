package workers

import (
	"context"
	"log"
	"time"

	"tournament-hub/models"
	"tournament-hub/services"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// RetentionWorker sweeps tournaments whose start time is further in the past
// than the configured retention window, through the same cascade path as the
// delete endpoint.
type RetentionWorker struct {
	db     *gorm.DB
	maxAge time.Duration
}

func NewRetentionWorker(db *gorm.DB, retentionDays int) *RetentionWorker {
	return &RetentionWorker{
		db:     db,
		maxAge: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start schedules the hourly sweep and shuts the scheduler down when ctx is
// cancelled.
func (w *RetentionWorker) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	if _, err := sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(w.sweep),
	); err != nil {
		return err
	}
	sched.Start()

	go func() {
		<-ctx.Done()
		if err := sched.Shutdown(); err != nil {
			log.Printf("⚠️  [RETENTION] scheduler shutdown: %v", err)
		}
	}()
	return nil
}

func (w *RetentionWorker) sweep() {
	cutoff := time.Now().Add(-w.maxAge)

	var ids []string
	if err := w.db.Model(&models.Tournament{}).
		Where("start_time < ?", cutoff).
		Pluck("id", &ids).Error; err != nil {
		log.Printf("❌ [RETENTION] DB error: %v", err)
		return
	}

	for _, id := range ids {
		err := w.db.Transaction(func(tx *gorm.DB) error {
			return services.CascadeDeleteTournament(tx, id)
		})
		if err != nil {
			log.Printf("❌ [RETENTION] Failed to purge tournament %s: %v", id, err)
			continue
		}
		log.Printf("✅ [RETENTION] Purged expired tournament %s", id)
	}
}
