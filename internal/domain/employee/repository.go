package employee

import "context"

// EmployeeRepository defines data access methods for the employee roster.
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves the full roster ordered by name
	List(ctx context.Context) ([]Employee, error)

	// Update updates name/email/avatar of an existing employee
	Update(ctx context.Context, e Employee) error

	// Delete removes an employee
	Delete(ctx context.Context, id string) error
}
