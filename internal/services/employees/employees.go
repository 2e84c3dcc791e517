package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

// DuplicateEmailError is returned when an employee is created with an email that is already taken.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return "employee already exists with given email: " + e.Email
}

type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// CreateEmployee stores a new employee unless its email is already taken.
// Any identity set by the caller is discarded, the store assigns a new one.
func (s *Staff) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	employee.ID = 0

	_, exists, err := s.repo.FindByEmail(ctx, employee.Email)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		log.InfoContext(ctx, "Employee email is already taken", "email", employee.Email)
		s.metrics.DuplicateEmails.Inc()
		return models.Employee{}, &DuplicateEmailError{Email: employee.Email}
	}

	saved, err := s.repo.Save(ctx, employee)
	if err != nil {
		// the unique constraint catches creations racing past the check above
		if errors.Is(err, repository.ErrEmailTaken) {
			log.WarnContext(ctx, "Employee email was taken concurrently", "email", employee.Email)
			s.metrics.DuplicateEmails.Inc()
			return models.Employee{}, &DuplicateEmailError{Email: employee.Email}
		}
		return models.Employee{}, fmt.Errorf("failed to save new employee %s: %w", employee.Email, err)
	}

	s.metrics.EmployeesCreated.Inc()
	log.DebugContext(ctx, "Employee created", "id", saved.ID)

	return saved, nil
}

// ListEmployees returns all stored employees. An empty store yields an empty, non-nil slice.
func (s *Staff) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	return employees, nil
}

// GetEmployeeByID looks an employee up by ID. The boolean reports whether it exists.
func (s *Staff) GetEmployeeByID(ctx context.Context, id int64) (models.Employee, bool, error) {
	employee, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Employee{}, false, fmt.Errorf("failed to get employee %d: %w", id, err)
	}

	return employee, found, nil
}

// FindEmployeeByName looks up the first employee with the given first and last name.
func (s *Staff) FindEmployeeByName(ctx context.Context, firstName, lastName string) (models.Employee, bool, error) {
	employee, found, err := s.repo.FindByName(ctx, firstName, lastName)
	if err != nil {
		return models.Employee{}, false, fmt.Errorf("failed to find employee by name: %w", err)
	}

	return employee, found, nil
}

// UpdateEmployee overwrites the mutable fields of an existing employee.
// When no employee has the given ID, nothing is written and the boolean is false.
//
// The email is not checked against other employees here.
func (s *Staff) UpdateEmployee(
	ctx context.Context,
	id int64,
	patch models.EmployeePatch,
) (models.Employee, bool, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	existing, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Employee{}, false, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	if !found {
		log.DebugContext(ctx, "employee does not exist, skipped", "id", id)
		return models.Employee{}, false, nil
	}

	updated, err := s.repo.Save(ctx, models.Merge(existing, patch))
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			log.DebugContext(ctx, "employee was deleted before update", "id", id)
			return models.Employee{}, false, nil
		}
		if errors.Is(err, repository.ErrEmailTaken) {
			log.WarnContext(ctx, "employee email is taken by another employee", "id", id, "email", patch.Email)
		} else {
			log.ErrorContext(ctx, "failed to update employee", "id", id, sl.Err(err))
		}
		return models.Employee{}, false, fmt.Errorf("failed to update employee %d: %w", id, err)
	}

	return updated, true, nil
}

// DeleteEmployee removes an employee. Deleting a missing employee succeeds.
func (s *Staff) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	return nil
}
