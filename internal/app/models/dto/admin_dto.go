package dto

// ImportResponse reports the outcome of a CSV import. Inserted counts rows
// actually written, not rows read or rows skipped for missing fields.
type ImportResponse struct {
	Type      string `json:"type" example:"certification_mapping"`
	Inserted  int    `json:"inserted" example:"120"`
	Processed int    `json:"processed" example:"125"`
	Skipped   int    `json:"skipped" example:"3"`
	Failed    int    `json:"failed" example:"2"`
}

// StatsResponse carries the aggregate table counts.
type StatsResponse struct {
	TotalCourses        int64 `json:"totalCourses" example:"1500"`
	TotalCertifications int64 `json:"totalCertifications" example:"85"`
	TotalMappings       int64 `json:"totalMappings" example:"4200"`
}

// SetupResponse reports what the idempotent setup operation did.
type SetupResponse struct {
	SchemaCreated bool   `json:"schemaCreated"`
	Seeded        bool   `json:"seeded"`
	Message       string `json:"message" example:"setup complete"`
}

// HealthResponse reports liveness and storage reachability.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"reachable"`
}
