package domain

// Category classifies a post. The set is open: the server may introduce new
// categories, and the client renders unknown values as-is.
type Category string

const (
	CategoryTechnology  Category = "Technology"
	CategoryProgramming Category = "Programming"
	CategoryLifestyle   Category = "Lifestyle"
	CategoryTravel      Category = "Travel"

	// CategoryAll is a filter-only sentinel matching every post. It is never
	// sent to the backend.
	CategoryAll Category = "All"
)

// Categories returns the categories a post can be created with.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryProgramming,
		CategoryLifestyle,
		CategoryTravel,
	}
}
