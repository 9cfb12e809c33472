package roster

// Instructor represents a teaching staff member. Instructors are immutable
// after construction; the employee ID is the unique key.
type Instructor struct {
	firstName  string
	lastName   string
	employeeID string
}

// NewInstructor creates an instructor with the given name and employee ID.
func NewInstructor(firstName, lastName, employeeID string) *Instructor {
	return &Instructor{
		firstName:  firstName,
		lastName:   lastName,
		employeeID: employeeID,
	}
}

// FirstName returns the instructor's first name.
func (i *Instructor) FirstName() string {
	return i.firstName
}

// LastName returns the instructor's last name.
func (i *Instructor) LastName() string {
	return i.lastName
}

// FullName returns the first and last name joined with a space.
func (i *Instructor) FullName() string {
	return i.firstName + " " + i.lastName
}

// EmployeeID returns the unique employee identifier.
func (i *Instructor) EmployeeID() string {
	return i.employeeID
}
