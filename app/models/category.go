package models

import "strings"

// UnitCategory groups personnel whose raw unit field contains one of the
// listed code substrings.
type UnitCategory struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
}

// UnitCategories is the fixed, ordered category table. A person belongs to
// the first category with a matching code; anyone left over falls into the
// implicit "Khác" bucket.
var UnitCategories = []UnitCategory{
	{ID: "c-bo", Name: "C bộ", Codes: []string{"c2"}},
	{ID: "trung-doi-4", Name: "Trung đội 4", Codes: []string{"a1", "a2", "a3"}},
	{ID: "trung-doi-5", Name: "Trung đội 5", Codes: []string{"a4", "a5", "a6"}},
	{ID: "trung-doi-6", Name: "Trung đội 6", Codes: []string{"a7", "a8", "a9"}},
	{ID: "trung-doi-hl", Name: "Trung đội HL", Codes: []string{"a10", "a11", "a12"}},
}

// FallbackUnitName is the bucket for units matching no category.
const FallbackUnitName = "Khác"

// FallbackCategoryID addresses the fallback bucket in paged views.
const FallbackCategoryID = "khac"

// Matches reports whether the raw unit field belongs to this category.
func (c UnitCategory) Matches(unit string) bool {
	for _, code := range c.Codes {
		if strings.Contains(unit, code) {
			return true
		}
	}
	return false
}

// CategoryByID looks a category up by id.
func CategoryByID(id string) (UnitCategory, bool) {
	for _, c := range UnitCategories {
		if c.ID == id {
			return c, true
		}
	}
	return UnitCategory{}, false
}

// UnitNameFor resolves the category display name for a raw unit field,
// falling back to "Khác".
func UnitNameFor(unit string) string {
	for _, c := range UnitCategories {
		if c.Matches(unit) {
			return c.Name
		}
	}
	return FallbackUnitName
}
