package repository

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

var (
	// ErrEmailTaken is returned when the email unique constraint rejects a write.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrEmployeeNotFound is returned when an update targets a missing row.
	ErrEmployeeNotFound = errors.New("employee not found")
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
// Finders report absence through the boolean result, never through the error.
type EmployeeRepoIface interface {
	Save(ctx context.Context, employee models.Employee) (models.Employee, error)
	FindByID(ctx context.Context, identifier int64) (models.Employee, bool, error)
	FindByEmail(ctx context.Context, email string) (models.Employee, bool, error)
	FindByName(ctx context.Context, firstName, lastName string) (models.Employee, bool, error)
	FindAll(ctx context.Context) ([]models.Employee, error)
	DeleteByID(ctx context.Context, identifier int64) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}
