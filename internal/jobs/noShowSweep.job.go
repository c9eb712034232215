package jobs

import (
	"context"

	reservationController "hotelsys/internal/controllers/reservation"
	"hotelsys/internal/logger"
	"hotelsys/internal/services"
)

// NoShowSweepJob marks reservations whose stay window has passed without a
// check-in as no-shows.
type NoShowSweepJob struct {
	reservations reservationController.ReservationControllerInterface
	log          logger.Logger
	schedule     services.Schedule
}

func NewNoShowSweepJob(
	reservations reservationController.ReservationControllerInterface,
	schedule services.Schedule,
) *NoShowSweepJob {
	return &NoShowSweepJob{
		reservations: reservations,
		log:          logger.New("noShowSweepJob"),
		schedule:     schedule,
	}
}

func (j *NoShowSweepJob) Name() string {
	return "NoShowSweep"
}

func (j *NoShowSweepJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	updated, err := j.reservations.MarkOverdueNoShows(ctx)
	if err != nil {
		return log.Err("no-show sweep failed", err)
	}

	if updated > 0 {
		log.Info("No-show sweep completed", "updated", updated)
	}

	return nil
}

func (j *NoShowSweepJob) Schedule() services.Schedule {
	return j.schedule
}
