package cache

const (
	CategoriesKey = "facets:categories"
	BenefitsKey   = "facets:benefits"
	EmployersKey  = "facets:employers"
)
