package roster

import "slices"

// Student represents an enrolled student. The net ID is the unique key and
// doubles as the identifiable-entity capability exposed through ID().
// Name, year, and net ID are immutable after construction; the enrolled
// course list changes through EnrollIn and DropCourse.
type Student struct {
	firstName string
	lastName  string
	year      int
	netID     string
	enrolled  []string
}

// NewStudent creates a student with no enrollments.
func NewStudent(firstName, lastName string, year int, netID string) *Student {
	return &Student{
		firstName: firstName,
		lastName:  lastName,
		year:      year,
		netID:     netID,
		enrolled:  make([]string, 0),
	}
}

// ID returns the student's net ID.
func (s *Student) ID() string {
	return s.netID
}

// FirstName returns the student's first name.
func (s *Student) FirstName() string {
	return s.firstName
}

// LastName returns the student's last name.
func (s *Student) LastName() string {
	return s.lastName
}

// FullName returns the first and last name joined with a space.
func (s *Student) FullName() string {
	return s.firstName + " " + s.lastName
}

// Year returns the student's class year.
func (s *Student) Year() int {
	return s.year
}

// EnrolledCourses returns a copy of the enrolled course codes in enrollment
// order.
func (s *Student) EnrolledCourses() []string {
	enrolled := make([]string, len(s.enrolled))
	copy(enrolled, s.enrolled)
	return enrolled
}

// IsEnrolledIn reports whether the student is enrolled in the given course.
func (s *Student) IsEnrolledIn(courseCode string) bool {
	return slices.Contains(s.enrolled, courseCode)
}

// EnrollIn appends the course code unconditionally. The duplicate guard
// lives in Registry.EnrollStudent; callers going through the Registry never
// produce duplicate entries.
func (s *Student) EnrollIn(courseCode string) {
	s.enrolled = append(s.enrolled, courseCode)
}

// DropCourse removes the first matching enrollment and reports whether a
// removal occurred.
func (s *Student) DropCourse(courseCode string) bool {
	idx := slices.Index(s.enrolled, courseCode)
	if idx < 0 {
		return false
	}
	s.enrolled = slices.Delete(s.enrolled, idx, idx+1)
	return true
}
