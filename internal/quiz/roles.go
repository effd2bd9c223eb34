package quiz

import "strings"

// Category groups catalogue roles.
type Category string

const (
	CategoryAll         Category = "All"
	CategoryEngineering Category = "Engineering"
	CategoryDesign      Category = "Design"
	CategoryProduct     Category = "Product"
	CategoryDataScience Category = "Data Science"
)

// Categories lists the filter choices in display order.
var Categories = []Category{
	CategoryAll,
	CategoryEngineering,
	CategoryDesign,
	CategoryProduct,
	CategoryDataScience,
}

// Role is a job role a seeker can be assessed for.
type Role struct {
	Title       string
	Category    Category
	Description string
}

var catalog = []Role{
	{
		Title:       "Frontend Developer",
		Category:    CategoryEngineering,
		Description: "Assess your skills in React, TypeScript, and modern CSS frameworks to build beautiful and performant user interfaces.",
	},
	{
		Title:       "Data Scientist",
		Category:    CategoryDataScience,
		Description: "Test your knowledge in Python, SQL, machine learning algorithms, and statistical analysis to solve complex data problems.",
	},
	{
		Title:       "Product Manager",
		Category:    CategoryProduct,
		Description: "Demonstrate your expertise in product strategy, user research, roadmap planning, and agile methodologies.",
	},
	{
		Title:       "UI/UX Designer",
		Category:    CategoryDesign,
		Description: "Showcase your design thinking, wireframing, prototyping, and user testing skills with industry-standard tools.",
	},
	{
		Title:       "Backend Engineer",
		Category:    CategoryEngineering,
		Description: "Prove your proficiency in server-side languages, database management, and API design for scalable applications.",
	},
	{
		Title:       "DevOps Engineer",
		Category:    CategoryEngineering,
		Description: "Validate your skills in CI/CD, cloud infrastructure, containerization, and automation tools like Docker and Kubernetes.",
	},
}

// Catalog returns the role catalogue.
func Catalog() []Role {
	out := make([]Role, len(catalog))
	copy(out, catalog)
	return out
}

// FilterRoles returns catalogue roles in category whose title contains
// search, case-insensitively. CategoryAll and an empty category match
// every role.
func FilterRoles(search string, category Category) []Role {
	needle := strings.ToLower(strings.TrimSpace(search))
	var out []Role
	for _, r := range catalog {
		if category != "" && category != CategoryAll && r.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Title), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CatalogTags returns the bank tag of every catalogue role plus the
// fallback tag.
func CatalogTags() []string {
	tags := make([]string, 0, len(catalog)+1)
	for _, r := range catalog {
		tags = append(tags, normalizeRole(r.Title))
	}
	return append(tags, fallbackTag)
}
