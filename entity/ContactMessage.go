package entity

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactReplied  ContactStatus = "replied"
	ContactArchived ContactStatus = "archived"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactRead, ContactReplied, ContactArchived:
		return true
	}
	return false
}

type ContactMessage struct {
	gorm.Model
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone,omitempty"`
	Subject string        `json:"subject"`
	Message string        `json:"message"`
	Status  ContactStatus `gorm:"size:16;default:new" json:"status"`
}

func ValidateContactStatus(raw string) (ContactStatus, error) {
	s := ContactStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", errors.New("status must be one of new, read, replied, archived")
	}
	return s, nil
}
