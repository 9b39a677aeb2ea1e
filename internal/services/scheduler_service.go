package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quantumhotel/hotel-service/internal/constants"
	"github.com/quantumhotel/hotel-service/internal/events"
	"github.com/quantumhotel/hotel-service/internal/interval"
	"github.com/quantumhotel/hotel-service/internal/repositories"
	"github.com/quantumhotel/hotel-service/internal/utils"
	"github.com/sirupsen/logrus"
)

/*
SchedulerService hosts the periodic maintenance jobs. RetireStalePending
rejects PENDING reservations whose stay has already started: nobody can
meaningfully confirm them anymore and they pollute the back-office queue.
*/
type SchedulerService struct {
	resRepo      repositories.ReservationRepository
	userRepo     repositories.UserRepository
	notifier     NotificationService
	publisher    events.Publisher
	systemUserID uuid.UUID
	now          func() time.Time
}

func NewSchedulerService(
	resRepo repositories.ReservationRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
	publisher events.Publisher,
	systemUserID uuid.UUID,
) *SchedulerService {
	return &SchedulerService{
		resRepo:      resRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		publisher:    publisher,
		systemUserID: systemUserID,
		now:          time.Now,
	}
}

func (s *SchedulerService) RetireStalePending(ctx context.Context) {
	cutoff := interval.DateOnly(s.now().UTC())
	stale, err := s.resRepo.ListPendingStartedBefore(ctx, cutoff)
	if err != nil {
		utils.Logger.WithError(err).Error("Stale reservation sweep failed")
		return
	}
	if len(stale) == 0 {
		return
	}

	reason := constants.StalePendingReason
	retired := 0
	for _, r := range stale {
		updated, err := s.resRepo.RejectAtomic(ctx, r.ID, s.systemUserID, &reason, r.RowVersion)
		if err != nil {
			// Raced with a staff decision; the next sweep picks up leftovers.
			utils.Logger.WithError(err).WithField("reservationID", r.ID).
				Warn("Could not retire stale reservation")
			continue
		}
		retired++

		guest, gerr := s.userRepo.GetByID(ctx, updated.GuestID)
		if gerr == nil && guest != nil {
			s.notifier.ReservationRejected(ctx, guest, updated, &reason)
		}
		s.publisher.PublishReservationEvent(ctx, events.EventReservationRejected, updated)
	}

	utils.Logger.WithFields(logrus.Fields{
		"candidates": len(stale),
		"retired":    retired,
	}).Info("Stale reservation sweep finished")
}
