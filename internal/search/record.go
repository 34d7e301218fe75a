package search

import "time"

// JobRecord is the read-only projection of a published job row joined with
// its employer and category, as produced by the job repository. Field names
// map to the aliased columns of the page query.
type JobRecord struct {
	ID       uint
	PublicID string

	Title       string
	Description string

	EmployerID      uint
	EmployerName    string
	EmployerWebsite string
	EmployerLogo    string

	CategoryID   *uint
	CategoryName *string

	JobType      string
	LocationType string

	City          string
	StateProvince string
	CountryCode   string
	CountryName   string

	Vacancies int

	PayVisibility string
	PayMin        *float64
	PayMax        *float64
	Currency      string
	PayPeriod     string

	Status    string
	PostedAt  *time.Time
	ClosedAt  *time.Time
	CreatedAt time.Time
}

// EffectivePostedAt is the timestamp ranking and presentation use: posted_at
// when set, created_at otherwise.
func (r JobRecord) EffectivePostedAt() time.Time {
	if r.PostedAt != nil {
		return *r.PostedAt
	}
	return r.CreatedAt
}
