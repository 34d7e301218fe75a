package dtos

// Facet lists ship with every search response so clients can populate their
// filter UI without extra round-trips.

type CategoryFacet struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BenefitFacet struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EmployerFacet struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
}

type Facets struct {
	Categories []CategoryFacet `json:"categories"`
	Benefits   []BenefitFacet  `json:"benefits"`
	Employers  []EmployerFacet `json:"employers"`
}
