package domain

import "time"

// ApplicationStatus represents the hiring pipeline state of a job application
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// JobApplication represents a candidate's application for a position
type JobApplication struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Address      string
	Position     string
	Experience   string
	AadharNumber string
	Message      *string
	ResumeURL    *string
	Status       ApplicationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Position вакансия, на которую можно откликнуться
type Position struct {
	Value string
	Label string
}

// JobOpening открытая вакансия для страницы карьеры
type JobOpening struct {
	ID           int64
	Title        string
	Description  string
	Requirements []string
	Location     string
	Type         string
	PostedDate   time.Time
}

// Positions список позиций для формы отклика
var Positions = []Position{
	{Value: "nurse", Label: "Registered Nurse"},
	{Value: "caregiver", Label: "Caregiver"},
	{Value: "physio", Label: "Physiotherapist"},
	{Value: "admin", Label: "Administrative Staff"},
	{Value: "other", Label: "Other Healthcare Professional"},
}

// IsKnownPosition returns true if the value is one of Positions
func IsKnownPosition(value string) bool {
	for _, p := range Positions {
		if p.Value == value {
			return true
		}
	}
	return false
}

// JobOpenings текущие открытые вакансии
var JobOpenings = []JobOpening{
	{
		ID:           1,
		Title:        "Registered Nurse",
		Description:  "Full-time position for a registered nurse with experience in home healthcare.",
		Requirements: []string{"Valid RN license", "Minimum 2 years experience", "Home healthcare experience preferred"},
		Location:     "Bhubaneswar, Odisha",
		Type:         "Full-time",
		PostedDate:   time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:           2,
		Title:        "Caregiver",
		Description:  "Part-time position for experienced caregivers to provide in-home assistance.",
		Requirements: []string{"High school diploma", "Caregiving experience", "Compassionate attitude"},
		Location:     "Bhubaneswar, Odisha",
		Type:         "Part-time",
		PostedDate:   time.Date(2023, time.July, 20, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:           3,
		Title:        "Physiotherapist",
		Description:  "Full-time position for a licensed physiotherapist to provide in-home rehabilitation services.",
		Requirements: []string{"Physiotherapy license", "Minimum 3 years experience", "Home healthcare experience preferred"},
		Location:     "Bhubaneswar, Odisha",
		Type:         "Full-time",
		PostedDate:   time.Date(2023, time.July, 25, 0, 0, 0, 0, time.UTC),
	},
}
