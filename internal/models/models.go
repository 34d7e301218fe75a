package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job lifecycle statuses. Search only ever returns published rows.
const (
	JobStatusDraft     = "draft"
	JobStatusPublished = "published"
	JobStatusClosed    = "closed"
)

// Description section types stored in job_descriptions.
const (
	DescriptionOverview       = "overview"
	DescriptionRequirement    = "requirement"
	DescriptionResponsibility = "responsibility"
)

type Employer struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyName string `gorm:"size:191;not null" json:"company_name"`
	Website     string `gorm:"size:191" json:"website"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`
	CountryCode string `gorm:"size:2" json:"country_code"`

	// 'omitempty' prevents infinite loops when fetching an Employer -> Jobs -> Employer -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

func (e *Employer) BeforeCreate(tx *gorm.DB) error {
	if e.UUID == "" {
		e.UUID = uuid.NewString()
	}
	return nil
}

type EmployerUser struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployerID uint      `gorm:"index;not null" json:"employer_id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Role       string    `gorm:"size:20;default:'recruiter'" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:140;uniqueIndex;not null" json:"slug"`
}

type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:140;uniqueIndex;not null" json:"slug"`
}

type JobBenefit struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex;not null" json:"name"`
}

func (JobBenefit) TableName() string { return "job_benefits" }

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployerID uint     `gorm:"index;not null" json:"employer_id"`
	Employer   Employer `json:"employer,omitempty"`

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `json:"category,omitempty"`

	Title       string `gorm:"size:191;index;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	LocationType  string `gorm:"size:20;default:'on_site';index" json:"location_type"`
	City          string `gorm:"size:120" json:"city"`
	StateProvince string `gorm:"size:120" json:"state_province"`
	CountryCode   string `gorm:"size:2" json:"country_code"`
	CountryName   string `gorm:"size:120" json:"country_name"`

	JobType   string `gorm:"size:20;index" json:"job_type"`
	Vacancies int    `gorm:"default:1" json:"vacancies"`

	PayVisibility string   `gorm:"size:20" json:"pay_visibility"`
	PayMin        *float64 `gorm:"type:numeric(12,2)" json:"pay_min"`
	PayMax        *float64 `gorm:"type:numeric(12,2)" json:"pay_max"`
	Currency      string   `gorm:"size:3;default:'USD'" json:"currency"`
	PayPeriod     string   `gorm:"size:10" json:"pay_period"`

	Status   string     `gorm:"size:12;default:'draft';index" json:"status"`
	PostedAt *time.Time `json:"posted_at"`
	ClosedAt *time.Time `json:"closed_at"`

	Skills       []Skill          `gorm:"many2many:job_skill" json:"skills,omitempty"`
	Benefits     []JobBenefit     `gorm:"many2many:job_benefit_job" json:"benefits,omitempty"`
	Descriptions []JobDescription `json:"descriptions,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.UUID == "" {
		j.UUID = uuid.NewString()
	}
	return nil
}

type JobDescription struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	JobID   uint   `gorm:"index;not null" json:"job_id"`
	Type    string `gorm:"size:20;not null" json:"type"`
	Content string `gorm:"type:text;not null" json:"content"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"size:191" json:"name"`
	Email string `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Role  string `gorm:"size:20;default:'seeker'" json:"role"`
}

type JobSeeker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SeekerID  uint      `gorm:"uniqueIndex:idx_saved_seeker_job;not null" json:"seeker_id"`
	JobID     uint      `gorm:"uniqueIndex:idx_saved_seeker_job;not null" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JobID     uint      `gorm:"index;not null" json:"job_id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	ResumeID  *uint     `json:"resume_id"`
	AppliedAt time.Time `json:"applied_at"`

	Name        string `gorm:"size:191;not null" json:"name"`
	Email       string `gorm:"size:191;not null" json:"email"`
	Phone       string `gorm:"size:50;not null" json:"phone"`
	Country     string `gorm:"size:100" json:"country"`
	City        string `gorm:"size:100" json:"city"`
	LinkedinURL string `gorm:"size:500" json:"linkedin_url"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`

	Status string `gorm:"size:20;default:'submitted'" json:"status"`
}

type Resume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FileName  string    `gorm:"size:255" json:"file_name"`
	FilePath  string    `gorm:"size:500" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

// AccessToken maps a hashed bearer token to a user. Token issuance lives
// outside this service; the API only needs the optional viewer id it yields.
type AccessToken struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	TokenHash  string     `gorm:"size:64;uniqueIndex;not null" json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}
