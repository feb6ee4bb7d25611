package entity

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

type Reservation struct {
	gorm.Model
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	PartySize       int               `json:"partySize"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	Status          ReservationStatus `gorm:"size:16;default:pending" json:"status"`
}

func ValidateReservationStatus(raw string) (ReservationStatus, error) {
	s := ReservationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", errors.New("status must be one of pending, confirmed, cancelled")
	}
	return s, nil
}
