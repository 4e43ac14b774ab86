package models

// CertificationMapping links a course code to a certification area.
// ID is a surrogate identifier assigned by the database.
// CourseCode should reference an existing Course but this is not enforced
// on every write path; see the migration adding the referential constraint.
type CertificationMapping struct {
	ID                           int64  `json:"id" db:"id"`
	CourseCode                   string `json:"courseCode" db:"course_code"`
	CertificationAreaCode        string `json:"certificationAreaCode" db:"certification_area_code"`
	CertificationAreaDescription string `json:"certificationAreaDescription" db:"certification_area_description"`
}

// CertificationArea is a distinct (code, description) pair drawn from the
// mapping table. Certification search returns these rather than raw mappings.
type CertificationArea struct {
	CertificationAreaCode        string `json:"certificationAreaCode"`
	CertificationAreaDescription string `json:"certificationAreaDescription"`
}
