package role

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/errs"
)

var (
	// ErrRoleIsNotConstructed is returned when a Role instance was not created
	// through the NewRole factory method.
	ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole constructor")
)

// Role is the aggregate root for a job opening. It manages the hiring
// lifecycle of a position from draft through open to closed.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Title and department must be non-empty
//   - Status transitions follow Draft -> Open -> Closed
type Role struct {
	id         kernel.UUID
	title      string
	department string
	level      string
	status     Status

	isConstructed bool
}

// NewRole creates a Role in Draft status. Title and department are required;
// level describes seniority (e.g. "junior", "senior") and may be empty.
func NewRole(id kernel.UUID, title, department, level string) (*Role, error) {
	role := &Role{
		status:        Draft,
		level:         level,
		isConstructed: true,
	}

	if err := errors.Join(
		role.setID(id),
		role.setTitle(title),
		role.setDepartment(department),
	); err != nil {
		return nil, err
	}

	return role, nil
}

// RestoreRole reconstructs a Role from persistence without running
// creation-time rules. The stored status must still be valid.
func RestoreRole(id kernel.UUID, title, department, level string, status Status) (*Role, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	role, err := NewRole(id, title, department, level)
	if err != nil {
		return nil, err
	}
	role.status = status

	return role, nil
}

// Validate ensures the Role was properly constructed through NewRole.
func (r *Role) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRoleIsNotConstructed
	}
	return nil
}

// IsEqual compares two roles by their unique identifiers.
func (r *Role) IsEqual(other *Role) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the role's unique identifier.
func (r *Role) ID() kernel.UUID {
	return r.id
}

// Title returns the position title.
func (r *Role) Title() string {
	return r.title
}

// Department returns the owning department.
func (r *Role) Department() string {
	return r.department
}

// Level returns the seniority level.
func (r *Role) Level() string {
	return r.level
}

// Status returns the current lifecycle status.
func (r *Role) Status() Status {
	return r.status
}

// Open publishes the role so it starts accepting candidates.
func (r *Role) Open() error {
	status, err := r.status.Open()
	if err != nil {
		return err
	}

	r.status = status
	return nil
}

// Close finishes hiring for the role. No further candidates can be attached.
func (r *Role) Close() error {
	status, err := r.status.Close()
	if err != nil {
		return err
	}

	r.status = status
	return nil
}

func (r *Role) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Role) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	r.title = title
	return nil
}

func (r *Role) setDepartment(department string) error {
	if department == "" {
		return errs.NewValueIsRequiredError("department")
	}

	r.department = department
	return nil
}
