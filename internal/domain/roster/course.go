package roster

import (
	"fmt"
	"strings"
)

// Course represents a scheduled course offering. The course code is the
// unique key. Only the instructor's employee ID is captured, never the
// Instructor itself, so the course stays valid across instructor removal.
// Start and end times are lexicographically comparable "HH:MM" strings.
// All fields except the description are immutable after construction.
type Course struct {
	code         string
	name         string
	instructorID string
	daysOfWeek   []string
	startTime    string
	endTime      string
	description  string
}

// NewCourse creates a course taught by the given instructor, capturing only
// the instructor's employee ID.
func NewCourse(code, name string, instructor *Instructor, daysOfWeek []string, startTime, endTime, description string) *Course {
	return ReconstituteCourse(code, name, instructor.EmployeeID(), daysOfWeek, startTime, endTime, description)
}

// ReconstituteCourse creates a Course from existing data, typically when
// hydrating from a data file where only the raw instructor ID is available.
func ReconstituteCourse(code, name, instructorID string, daysOfWeek []string, startTime, endTime, description string) *Course {
	days := make([]string, len(daysOfWeek))
	copy(days, daysOfWeek)
	return &Course{
		code:         code,
		name:         name,
		instructorID: instructorID,
		daysOfWeek:   days,
		startTime:    startTime,
		endTime:      endTime,
		description:  description,
	}
}

// Code returns the unique course code.
func (c *Course) Code() string {
	return c.code
}

// Name returns the human-readable course name.
func (c *Course) Name() string {
	return c.name
}

// InstructorID returns the employee ID of the teaching instructor.
func (c *Course) InstructorID() string {
	return c.instructorID
}

// DaysOfWeek returns a copy of the meeting days in schedule order.
func (c *Course) DaysOfWeek() []string {
	days := make([]string, len(c.daysOfWeek))
	copy(days, c.daysOfWeek)
	return days
}

// StartTime returns the "HH:MM" meeting start time.
func (c *Course) StartTime() string {
	return c.startTime
}

// EndTime returns the "HH:MM" meeting end time.
func (c *Course) EndTime() string {
	return c.endTime
}

// Description returns the free-form course description.
func (c *Course) Description() string {
	return c.description
}

// SetDescription replaces the course description. This is the only mutation
// a course supports after construction.
func (c *Course) SetDescription(description string) {
	c.description = description
}

// Info renders the multi-line human-readable course summary used when
// printing schedules. The output is stable so tests can assert against it.
func (c *Course) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course Code: %s\n", c.code)
	fmt.Fprintf(&b, "Course Name: %s\n", c.name)
	fmt.Fprintf(&b, "Instructor: %s\n", c.instructorID)
	fmt.Fprintf(&b, "Days of the Week: %s\n", strings.Join(c.daysOfWeek, " "))
	fmt.Fprintf(&b, "Start Time: %s\n", c.startTime)
	fmt.Fprintf(&b, "End Time: %s\n", c.endTime)
	fmt.Fprintf(&b, "Description: %s\n", c.description)
	return b.String()
}
