// Package roster implements the domain layer for the student roster system.
//
// This package follows Domain-Driven Design (DDD) principles:
//   - Contains only pure Go code (no infrastructure dependencies beyond the
//     internal structured logger)
//   - Defines the entity types (Student, Instructor, Course) with
//     encapsulated state and behavior
//   - Defines the narrow store interfaces the Registry persists through
//   - Provides domain-specific sentinel errors
//
// # Core Types
//
// Student, Instructor, and Course are value-like entities with unexported
// fields; construct them with NewStudent/NewInstructor/NewCourse and read
// them through accessor methods. Each entity kind has a unique key: the
// student's net ID, the instructor's employee ID, and the course code.
// Course stores only the instructor's employee ID, never a reference to the
// Instructor itself, so instructor removal can never dangle.
//
// # Registry
//
// Registry is the aggregate that owns all three collections for their full
// lifetime. It provides:
//   - AddStudent/AddInstructor/AddCourse with duplicate-key rejection and
//     synchronous whole-collection persistence
//   - FindStudentByID/FindInstructorByID/FindCourseByCode lookups
//   - RemoveStudentByNetID/RemoveInstructorByEmpID/RemoveCourseByCode
//   - EnrollStudent/DropStudent enrollment management
//   - ClashCheck, the closed-interval schedule conflict predicate
//   - Schedule, resolving a student's enrolled courses for rendering
//
// Persistence is delegated to the StudentStore, InstructorStore, and
// CourseStore collaborators injected at construction, so the core is
// testable with in-memory fakes.
package roster
