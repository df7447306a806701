package models

// Category is the closed set of expense labels. Storage does not enforce the
// set; ParseCategory is the single place raw strings become a Category.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategorySchool         Category = "school"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryUtilities      Category = "utilities"
	CategoryHealth         Category = "health"
	CategoryOther          Category = "other"
)

var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategorySchool,
	CategoryEntertainment,
	CategoryShopping,
	CategoryUtilities,
	CategoryHealth,
	CategoryOther,
}

// ParseCategory maps a raw label to a Category for display and aggregation.
// Unrecognized or empty labels fall back to CategoryOther; the stored record
// is never rewritten.
func ParseCategory(raw string) Category {
	for _, c := range Categories {
		if string(c) == raw {
			return c
		}
	}
	return CategoryOther
}

// ValidCategory reports whether raw is one of the known labels. Write paths
// reject anything else; the Other fallback is for reads only.
func ValidCategory(raw string) bool {
	for _, c := range Categories {
		if string(c) == raw {
			return true
		}
	}
	return false
}

// IncomeSources is the closed set of income source labels.
var IncomeSources = []string{
	"salary",
	"allowance",
	"freelance",
	"business",
	"gift",
	"refund",
	"investment",
	"other",
}

func ValidIncomeSource(raw string) bool {
	for _, s := range IncomeSources {
		if s == raw {
			return true
		}
	}
	return false
}
