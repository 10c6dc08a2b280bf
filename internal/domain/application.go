package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "APPLIED"
	StatusInterviewing ApplicationStatus = "INTERVIEWING"
	StatusOffered      ApplicationStatus = "OFFERED"
	StatusRejected     ApplicationStatus = "REJECTED"
)

var AllStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInterviewing,
	StatusOffered,
	StatusRejected,
}

func (s ApplicationStatus) Valid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// JobApplication is owned by exactly one user. UserID is set once at
// creation and never changes; it is never serialized outward.
type JobApplication struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID         `json:"-" gorm:"type:uuid;index;not null"`
	CompanyName string            `json:"companyName" gorm:"size:100;not null"`
	JobTitle    string            `json:"jobTitle" gorm:"size:100;not null"`
	Status      ApplicationStatus `json:"status" gorm:"size:20"`
	DateApplied datatypes.Date    `json:"dateApplied" gorm:"type:date"`
	Notes       string            `json:"notes" gorm:"size:500"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ApplicationUpdate carries a partial update. Nil fields mean "leave
// unchanged"; there is intentionally no way to clear a field to empty,
// matching the merge semantics the API has always had.
type ApplicationUpdate struct {
	CompanyName *string
	JobTitle    *string
	Status      *ApplicationStatus
	DateApplied *time.Time
	Notes       *string
}

// Merge applies the non-nil fields of the update onto the application.
func (a *JobApplication) Merge(update ApplicationUpdate) {
	if update.CompanyName != nil {
		a.CompanyName = *update.CompanyName
	}
	if update.JobTitle != nil {
		a.JobTitle = *update.JobTitle
	}
	if update.Status != nil {
		a.Status = *update.Status
	}
	if update.DateApplied != nil {
		a.DateApplied = datatypes.Date(*update.DateApplied)
	}
	if update.Notes != nil {
		a.Notes = *update.Notes
	}
}
