package models

// Employee represents an employee entity.
// ID is assigned by the store on first save and is zero for a transient employee.
type Employee struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// EmployeePatch carries the mutable fields of an employee.
type EmployeePatch struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// IsPersisted reports whether the employee has been assigned an identity by the store.
func (e Employee) IsPersisted() bool {
	return e.ID != 0
}

// Merge returns a copy of existing with the patch fields applied. The identity is kept as is.
func Merge(existing Employee, patch EmployeePatch) Employee {
	merged := existing
	merged.FirstName = patch.FirstName
	merged.LastName = patch.LastName
	merged.Email = patch.Email

	return merged
}
