package jobs

import (
	"context"
	"time"

	"stayrooted/services/logger"

	"github.com/robfig/cron/v3"
)

// DailySchedule chạy lúc 0h mỗi ngày
const DailySchedule = "0 0 * * *"

// BookingCompleter chuyển booking đã qua ngày sang completed
type BookingCompleter interface {
	CompleteElapsed(ctx context.Context, now time.Time) (int, error)
}

// CompleteBookingsJob trả về job hoàn tất booking đã qua ngày
func CompleteBookingsJob(completer BookingCompleter, log logger.Logger) func() {
	return func() {
		now := time.Now()
		log.Info("Running booking completion at %v", now)
		count, err := completer.CompleteElapsed(context.Background(), now)
		if err != nil {
			log.Error("Booking completion failed: %v", err)
			return
		}
		log.Info("Completed %d elapsed bookings", count)
	}
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, completer BookingCompleter, log logger.Logger) error {
	if _, err := c.AddFunc(DailySchedule, CompleteBookingsJob(completer, log)); err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
