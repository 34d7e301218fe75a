package dtos

type JobDescriptionInput struct {
	Type    string `json:"type" binding:"required,oneof=overview requirement responsibility"`
	Content string `json:"content" binding:"required"`
}

type JobCreateRequest struct {
	Title        string `json:"title" binding:"required,max=191"`
	Description  string `json:"description" binding:"required"`
	LocationType string `json:"location_type" binding:"required,oneof=on_site hybrid remote"`
	JobType      string `json:"job_type" binding:"required,oneof=full_time part_time temporary contract internship fresher"`

	City          string `json:"city" binding:"max=120"`
	StateProvince string `json:"state_province" binding:"max=120"`
	CountryCode   string `json:"country_code" binding:"omitempty,len=2"`
	CountryName   string `json:"country_name" binding:"max=120"`

	CategoryID *uint `json:"category_id"`
	Vacancies  int   `json:"vacancies" binding:"omitempty,min=1"`

	PayVisibility string   `json:"pay_visibility" binding:"omitempty,oneof=range exact starting_at"`
	PayMin        *float64 `json:"pay_min"`
	PayMax        *float64 `json:"pay_max"`
	Currency      string   `json:"currency" binding:"omitempty,len=3"`
	PayPeriod     string   `json:"pay_period" binding:"omitempty,oneof=hour day week month year"`

	SkillIDs     []uint                `json:"skill_ids"`
	BenefitIDs   []uint                `json:"benefit_ids"`
	Descriptions []JobDescriptionInput `json:"descriptions" binding:"omitempty,dive"`
}

// JobUpdateRequest uses pointers so absent fields leave the job untouched.
type JobUpdateRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=191"`
	Description  *string `json:"description"`
	LocationType *string `json:"location_type" binding:"omitempty,oneof=on_site hybrid remote"`
	JobType      *string `json:"job_type" binding:"omitempty,oneof=full_time part_time temporary contract internship fresher"`

	City          *string `json:"city" binding:"omitempty,max=120"`
	StateProvince *string `json:"state_province" binding:"omitempty,max=120"`
	CountryCode   *string `json:"country_code" binding:"omitempty,len=2"`
	CountryName   *string `json:"country_name" binding:"omitempty,max=120"`

	CategoryID *uint `json:"category_id"`
	Vacancies  *int  `json:"vacancies" binding:"omitempty,min=1"`

	PayVisibility *string  `json:"pay_visibility" binding:"omitempty,oneof=range exact starting_at"`
	PayMin        *float64 `json:"pay_min"`
	PayMax        *float64 `json:"pay_max"`
	Currency      *string  `json:"currency" binding:"omitempty,len=3"`
	PayPeriod     *string  `json:"pay_period" binding:"omitempty,oneof=hour day week month year"`
}
