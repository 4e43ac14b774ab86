package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories is a container for all application repositories
type Repositories struct {
	CourseRepository        *CourseRepository
	CertificationRepository *CertificationRepository
	SchemaRepository        *SchemaRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:        NewCourseRepository(db),
		CertificationRepository: NewCertificationRepository(db),
		SchemaRepository:        NewSchemaRepository(db),
	}
}
