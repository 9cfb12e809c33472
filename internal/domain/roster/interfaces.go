package roster

// StudentStore is the persistence collaborator for the student collection.
// Implementations may use delimited files, in-memory fakes, or other
// backends; the Registry rewrites the whole collection on every mutation.
type StudentStore interface {
	// Load reads all persisted students. A missing backing file yields an
	// empty slice, not an error.
	Load() ([]*Student, error)

	// Save rewrites the entire student collection.
	Save(students []*Student) error
}

// InstructorStore is the persistence collaborator for the instructor
// collection.
type InstructorStore interface {
	Load() ([]*Instructor, error)
	Save(instructors []*Instructor) error
}

// CourseStore is the persistence collaborator for the course collection.
// Load returns every parseable row; resolving course->instructor references
// is the Registry's job since only it sees both collections.
type CourseStore interface {
	Load() ([]*Course, error)
	Save(courses []*Course) error
}
