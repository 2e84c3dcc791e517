package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

const (
	insertEmployeeQuery = `INSERT INTO employees (first_name, last_name, email) VALUES ($1, $2, $3) ` +
		`RETURNING id, first_name, last_name, email`
	updateEmployeeQuery = `UPDATE employees SET first_name = $2, last_name = $3, email = $4, ` +
		`updated_at = CURRENT_TIMESTAMP WHERE id = $1 RETURNING id, first_name, last_name, email`
	getEmployeeByIDQuery    = `SELECT id, first_name, last_name, email FROM employees WHERE id = $1`
	getEmployeeByEmailQuery = `SELECT id, first_name, last_name, email FROM employees WHERE email = $1`
	getEmployeeByNameQuery  = `SELECT id, first_name, last_name, email FROM employees ` +
		`WHERE first_name = $1 AND last_name = $2 ORDER BY id LIMIT 1`
	getAllEmployeesQuery = `SELECT id, first_name, last_name, email FROM employees ORDER BY id`
	deleteEmployeeQuery  = `DELETE FROM employees WHERE id = $1`
)

// Save persists an employee. A transient employee (zero ID) is inserted and receives
// its identity from the database, a persisted one is updated in place.
func (r *Repository) Save(ctx context.Context, employee models.Employee) (models.Employee, error) {
	if !employee.IsPersisted() {
		return r.insertEmployee(ctx, employee)
	}

	return r.updateEmployee(ctx, employee)
}

func (r *Repository) insertEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("save_employee")()

	row := r.db.QueryRow(ctx, insertEmployeeQuery, employee.FirstName, employee.LastName, employee.Email)

	saved, err := scanEmployee(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Employee{}, fmt.Errorf("failed to save employee: %w", ErrEmailTaken)
		}
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return saved, nil
}

func (r *Repository) updateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("update_employee")()

	row := r.db.QueryRow(ctx, updateEmployeeQuery,
		employee.ID, employee.FirstName, employee.LastName, employee.Email)

	updated, err := scanEmployee(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return models.Employee{}, fmt.Errorf("failed to update employee data: %w", ErrEmployeeNotFound)
		case isUniqueViolation(err):
			return models.Employee{}, fmt.Errorf("failed to update employee data: %w", ErrEmailTaken)
		default:
			return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
		}
	}

	return updated, nil
}

// FindByID retrieves an employee from the database by its ID.
func (r *Repository) FindByID(ctx context.Context, identifier int64) (models.Employee, bool, error) {
	defer r.observe("get_employee_by_id")()

	employee, found, err := findOne(r.db.QueryRow(ctx, getEmployeeByIDQuery, identifier))
	if err != nil {
		return models.Employee{}, false, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee, found, nil
}

// FindByEmail retrieves an employee from the database by its email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (models.Employee, bool, error) {
	defer r.observe("get_employee_by_email")()

	employee, found, err := findOne(r.db.QueryRow(ctx, getEmployeeByEmailQuery, email))
	if err != nil {
		return models.Employee{}, false, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return employee, found, nil
}

// FindByName retrieves the first employee with the given first and last name.
func (r *Repository) FindByName(ctx context.Context, firstName, lastName string) (models.Employee, bool, error) {
	defer r.observe("get_employee_by_name")()

	employee, found, err := findOne(r.db.QueryRow(ctx, getEmployeeByNameQuery, firstName, lastName))
	if err != nil {
		return models.Employee{}, false, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return employee, found, nil
}

// FindAll returns every employee ordered by ID. The result is never nil.
func (r *Repository) FindAll(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("get_all_employees")()

	rows, err := r.db.Query(ctx, getAllEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// DeleteByID removes the employee with the given ID. Deleting a missing ID is a no-op.
func (r *Repository) DeleteByID(ctx context.Context, identifier int64) error {
	defer r.observe("delete_employee")()

	_, err := r.db.Exec(ctx, deleteEmployeeQuery, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (r *Repository) observe(queryType string) func() {
	startTime := time.Now()

	return func() {
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
	}
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var result models.Employee

	err := row.Scan(&result.ID, &result.FirstName, &result.LastName, &result.Email)
	if err != nil {
		return models.Employee{}, err
	}

	return result, nil
}

func findOne(row pgx.Row) (models.Employee, bool, error) {
	employee, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, false, nil
		}
		return models.Employee{}, false, err
	}

	return employee, true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
