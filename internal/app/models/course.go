package models

// CTE indicator values as stored in the course table.
const (
	CTEIndicatorYes = "Yes"
	CTEIndicatorNo  = "No"
)

// Course represents a SCED course code entry.
// Code is the primary identifier and is immutable once created.
type Course struct {
	Code            string `json:"code" db:"code"`
	CodeDescription string `json:"codeDescription" db:"code_description"`
	Description     string `json:"description" db:"description"`
	SubjectArea     string `json:"subjectArea" db:"subject_area"`
	Level           string `json:"level" db:"level"`
	CTEIndicator    string `json:"cteIndicator" db:"cte_indicator"`
}

// IsCTE reports whether the course carries the career-technical-education flag.
func (c *Course) IsCTE() bool {
	return c.CTEIndicator == CTEIndicatorYes
}
