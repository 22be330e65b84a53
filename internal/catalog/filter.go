package catalog

import (
	"github.com/ytget/wallgrid/internal/model"
)

// AllCategory is the label of the chip that clears the filter
const AllCategory = "All"

// Categories returns the distinct categories of records in encounter order.
func Categories(records []model.ImageRecord) []string {
	seen := make(map[string]struct{}, len(records))
	categories := make([]string, 0)
	for _, rec := range records {
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		categories = append(categories, rec.Category)
	}
	return categories
}

// FilterRecords returns the records whose category equals category, keeping
// their relative order. An empty category matches everything.
func FilterRecords(records []model.ImageRecord, category string) []model.ImageRecord {
	if category == "" {
		return append([]model.ImageRecord(nil), records...)
	}

	filtered := make([]model.ImageRecord, 0)
	for _, rec := range records {
		if rec.Category == category {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// ApplyFilter computes the selection and visible set after the user taps
// candidate. Tapping the active category again, or the "All" chip, clears the
// filter.
func ApplyFilter(all []model.ImageRecord, current, candidate string) (string, []model.ImageRecord) {
	if candidate == current || candidate == "" || candidate == AllCategory {
		return "", FilterRecords(all, "")
	}
	return candidate, FilterRecords(all, candidate)
}
