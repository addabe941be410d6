package booking

import (
	"time"

	"github.com/Luexi/PAITITI/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(res *models.Reservation, tableID uint) error {
	if err := CanConfirm(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusConfirmed)
	res.TableID = &tableID
	return nil
}

func Seat(res *models.Reservation, now time.Time) error {
	if err := CanSeat(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusSeated)
	res.SeatedAt = &now
	return nil
}

func Complete(res *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusCompleted)
	res.CompletedAt = &now
	return nil
}

func Cancel(res *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusCancelled)
	res.CancelledAt = &now
	return nil
}

func MarkNoShow(res *models.Reservation, now time.Time) error {
	if err := CanMarkNoShow(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusNoShow)
	res.CancelledAt = &now
	return nil
}
