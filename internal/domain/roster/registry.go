package roster

import (
	"errors"
	"fmt"

	"github.com/zjrosen/registrar/internal/log"
)

// Registry errors
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key for record type")
	ErrUnknownInstructor = errors.New("course references unknown instructor")
	ErrAlreadyEnrolled   = errors.New("student already enrolled in course")
	ErrNotEnrolled       = errors.New("student not enrolled in course")
)

// Registry owns the student, instructor, and course collections for their
// full lifetime. Collections keep insertion order for iteration and
// printing; lookups are linear scans on the unique key. Every successful
// add or remove synchronously rewrites the affected collection through the
// injected store.
type Registry struct {
	students    []*Student
	instructors []*Instructor
	courses     []*Course

	studentStore    StudentStore
	instructorStore InstructorStore
	courseStore     CourseStore
}

// NewRegistry builds a registry backed by the given stores and hydrates all
// three collections from them. Courses whose instructor cannot be resolved
// against the loaded instructor collection are skipped with a diagnostic;
// no row is partially applied.
func NewRegistry(students StudentStore, instructors InstructorStore, courses CourseStore) (*Registry, error) {
	r := &Registry{
		students:        make([]*Student, 0),
		instructors:     make([]*Instructor, 0),
		courses:         make([]*Course, 0),
		studentStore:    students,
		instructorStore: instructors,
		courseStore:     courses,
	}

	loaded, err := students.Load()
	if err != nil {
		return nil, fmt.Errorf("loading students: %w", err)
	}
	r.students = loaded

	loadedInstructors, err := instructors.Load()
	if err != nil {
		return nil, fmt.Errorf("loading instructors: %w", err)
	}
	r.instructors = loadedInstructors

	loadedCourses, err := courses.Load()
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}
	for _, course := range loadedCourses {
		if _, err := r.FindInstructorByID(course.InstructorID()); err != nil {
			log.Warn(log.CatRoster, "Skipping course with unknown instructor",
				"course", course.Code(), "instructor", course.InstructorID())
			continue
		}
		r.courses = append(r.courses, course)
	}

	log.Info(log.CatRoster, "Registry loaded",
		"students", len(r.students), "instructors", len(r.instructors), "courses", len(r.courses))
	return r, nil
}

// FindStudentByID returns the student with the given net ID.
// Returns ErrNotFound when no student matches.
func (r *Registry) FindStudentByID(netID string) (*Student, error) {
	for _, student := range r.students {
		if student.ID() == netID {
			return student, nil
		}
	}
	return nil, fmt.Errorf("student %q: %w", netID, ErrNotFound)
}

// FindInstructorByID returns the instructor with the given employee ID.
// Returns ErrNotFound when no instructor matches.
func (r *Registry) FindInstructorByID(employeeID string) (*Instructor, error) {
	for _, instructor := range r.instructors {
		if instructor.EmployeeID() == employeeID {
			return instructor, nil
		}
	}
	return nil, fmt.Errorf("instructor %q: %w", employeeID, ErrNotFound)
}

// FindCourseByCode returns the course with the given code.
// Returns ErrNotFound when no course matches.
func (r *Registry) FindCourseByCode(code string) (*Course, error) {
	for _, course := range r.courses {
		if course.Code() == code {
			return course, nil
		}
	}
	return nil, fmt.Errorf("course %q: %w", code, ErrNotFound)
}

// AddStudent registers a new student and rewrites the students file.
// Returns ErrDuplicateKey without mutating anything when the net ID is
// already taken. If persisting fails the student remains registered and the
// save error is returned so callers know the backing file is stale.
func (r *Registry) AddStudent(firstName, lastName string, year int, netID string) (*Student, error) {
	if _, err := r.FindStudentByID(netID); err == nil {
		return nil, fmt.Errorf("student %q: %w", netID, ErrDuplicateKey)
	}

	student := NewStudent(firstName, lastName, year, netID)
	r.students = append(r.students, student)
	log.Info(log.CatRoster, "Added student", "netID", netID, "name", student.FullName())

	if err := r.studentStore.Save(r.students); err != nil {
		log.ErrorErr(log.CatRoster, "Failed to persist students", err)
		return student, fmt.Errorf("saving students: %w", err)
	}
	return student, nil
}

// AddInstructor registers a new instructor and rewrites the instructors
// file. Returns ErrDuplicateKey when the employee ID is already taken.
// Persistence failures behave as documented on AddStudent.
func (r *Registry) AddInstructor(firstName, lastName, employeeID string) (*Instructor, error) {
	if _, err := r.FindInstructorByID(employeeID); err == nil {
		return nil, fmt.Errorf("instructor %q: %w", employeeID, ErrDuplicateKey)
	}

	instructor := NewInstructor(firstName, lastName, employeeID)
	r.instructors = append(r.instructors, instructor)
	log.Info(log.CatRoster, "Added instructor", "employeeID", employeeID, "name", instructor.FullName())

	if err := r.instructorStore.Save(r.instructors); err != nil {
		log.ErrorErr(log.CatRoster, "Failed to persist instructors", err)
		return instructor, fmt.Errorf("saving instructors: %w", err)
	}
	return instructor, nil
}

// AddCourse registers a new course and rewrites the courses file. The
// instructor must resolve to an existing registration; otherwise the course
// is not added and ErrUnknownInstructor is returned. Returns ErrDuplicateKey
// when the course code is already taken. Persistence failures behave as
// documented on AddStudent.
func (r *Registry) AddCourse(code, name, instructorID string, daysOfWeek []string, startTime, endTime, description string) (*Course, error) {
	instructor, err := r.FindInstructorByID(instructorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstructor, instructorID)
	}
	if _, err := r.FindCourseByCode(code); err == nil {
		return nil, fmt.Errorf("course %q: %w", code, ErrDuplicateKey)
	}

	course := NewCourse(code, name, instructor, daysOfWeek, startTime, endTime, description)
	r.courses = append(r.courses, course)
	log.Info(log.CatRoster, "Added course", "code", code, "instructor", instructorID)

	if err := r.courseStore.Save(r.courses); err != nil {
		log.ErrorErr(log.CatRoster, "Failed to persist courses", err)
		return course, fmt.Errorf("saving courses: %w", err)
	}
	return course, nil
}

// RemoveStudentByNetID erases the student and rewrites the students file.
// Returns ErrNotFound without side effects when the net ID is absent.
func (r *Registry) RemoveStudentByNetID(netID string) error {
	for i, student := range r.students {
		if student.ID() == netID {
			r.students = append(r.students[:i], r.students[i+1:]...)
			log.Info(log.CatRoster, "Removed student", "netID", netID)
			if err := r.studentStore.Save(r.students); err != nil {
				log.ErrorErr(log.CatRoster, "Failed to persist students", err)
				return fmt.Errorf("saving students: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("student %q: %w", netID, ErrNotFound)
}

// RemoveInstructorByEmpID erases the instructor and rewrites the
// instructors file. Returns ErrNotFound when the employee ID is absent.
// Courses referencing the removed instructor keep their (now dangling)
// employee ID; they are filtered out on the next load.
func (r *Registry) RemoveInstructorByEmpID(employeeID string) error {
	for i, instructor := range r.instructors {
		if instructor.EmployeeID() == employeeID {
			r.instructors = append(r.instructors[:i], r.instructors[i+1:]...)
			log.Info(log.CatRoster, "Removed instructor", "employeeID", employeeID)
			if err := r.instructorStore.Save(r.instructors); err != nil {
				log.ErrorErr(log.CatRoster, "Failed to persist instructors", err)
				return fmt.Errorf("saving instructors: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("instructor %q: %w", employeeID, ErrNotFound)
}

// RemoveCourseByCode erases the course and rewrites the courses file.
// Returns ErrNotFound when the code is absent. Student enrollments keep the
// removed code; Schedule and ClashCheck skip codes that no longer resolve.
func (r *Registry) RemoveCourseByCode(code string) error {
	for i, course := range r.courses {
		if course.Code() == code {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			log.Info(log.CatRoster, "Removed course", "code", code)
			if err := r.courseStore.Save(r.courses); err != nil {
				log.ErrorErr(log.CatRoster, "Failed to persist courses", err)
				return fmt.Errorf("saving courses: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("course %q: %w", code, ErrNotFound)
}

// SetCourseDescription updates a course description and rewrites the
// courses file. Returns ErrNotFound when the code is absent.
func (r *Registry) SetCourseDescription(code, description string) error {
	course, err := r.FindCourseByCode(code)
	if err != nil {
		return err
	}
	course.SetDescription(description)
	if err := r.courseStore.Save(r.courses); err != nil {
		log.ErrorErr(log.CatRoster, "Failed to persist courses", err)
		return fmt.Errorf("saving courses: %w", err)
	}
	return nil
}

// EnrollStudent enrolls the student in the course unless already enrolled,
// in which case ErrAlreadyEnrolled is returned and nothing changes. The
// schedule clash check is deliberately NOT performed here; ClashCheck is a
// separately callable predicate for callers that want that guarantee.
// Enrollments live only in memory: the students file carries no enrollment
// column.
func (r *Registry) EnrollStudent(student *Student, course *Course) error {
	if student.IsEnrolledIn(course.Code()) {
		return fmt.Errorf("student %q in course %q: %w", student.ID(), course.Code(), ErrAlreadyEnrolled)
	}
	student.EnrollIn(course.Code())
	log.Info(log.CatRoster, "Enrolled student", "netID", student.ID(), "course", course.Code())
	return nil
}

// DropStudent resolves the student and drops the enrollment. Returns
// ErrNotFound when the student does not exist and ErrNotEnrolled when the
// student is not enrolled in the course.
func (r *Registry) DropStudent(netID, courseCode string) error {
	student, err := r.FindStudentByID(netID)
	if err != nil {
		return err
	}
	if !student.DropCourse(courseCode) {
		return fmt.Errorf("student %q in course %q: %w", netID, courseCode, ErrNotEnrolled)
	}
	log.Info(log.CatRoster, "Dropped student from course", "netID", netID, "course", courseCode)
	return nil
}

// ClashCheck reports whether the candidate course's time interval overlaps
// any course the student is currently enrolled in. Intervals are closed:
// courses that merely touch at an endpoint conflict. Enrolled codes that no
// longer resolve to a course are skipped.
func (r *Registry) ClashCheck(student *Student, candidate *Course) bool {
	for _, code := range student.EnrolledCourses() {
		existing, err := r.FindCourseByCode(code)
		if err != nil {
			continue
		}
		if !(candidate.EndTime() < existing.StartTime() || candidate.StartTime() > existing.EndTime()) {
			return true
		}
	}
	return false
}

// Schedule resolves the student's enrolled courses in enrollment order,
// skipping codes that no longer resolve. Returns ErrNotFound when the
// student does not exist. Rendering is the caller's responsibility.
func (r *Registry) Schedule(netID string) ([]*Course, error) {
	student, err := r.FindStudentByID(netID)
	if err != nil {
		return nil, err
	}
	schedule := make([]*Course, 0, len(student.EnrolledCourses()))
	for _, code := range student.EnrolledCourses() {
		course, err := r.FindCourseByCode(code)
		if err != nil {
			continue
		}
		schedule = append(schedule, course)
	}
	return schedule, nil
}

// Students returns the student collection in insertion order.
func (r *Registry) Students() []*Student {
	return r.students
}

// Instructors returns the instructor collection in insertion order.
func (r *Registry) Instructors() []*Instructor {
	return r.instructors
}

// Courses returns the course collection in insertion order.
func (r *Registry) Courses() []*Course {
	return r.courses
}
