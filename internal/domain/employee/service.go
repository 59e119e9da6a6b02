package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for roster management (admin only)
type EmployeeService interface {
	// Create adds a new employee to the roster
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves the full roster
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update edits an employee's identity record
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UploadAvatar stores an avatar image and attaches its reference
	UploadAvatar(ctx context.Context, id string, file io.Reader, filename string) (EmployeeResponse, error)

	// Delete removes an employee from the roster
	Delete(ctx context.Context, id string) error
}
