package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/domain/roster"
	"github.com/zjrosen/registrar/internal/ui/styles"
)

// runDemo executes the embedded walkthrough against the configured data
// directory. It exercises every registry operation end to end: adds,
// duplicate handling, enrollment with a clash check, drops, and schedule
// printing. It is the default action when registrar runs with no subcommand.
func runDemo(cmd *cobra.Command, args []string) error {
	reg, _, err := openRegistry()
	if err != nil {
		return err
	}
	runScenario(cmd.OutOrStdout(), reg)
	return nil
}

func runScenario(out io.Writer, reg *roster.Registry) {
	fmt.Fprintln(out, styles.Header.Render("registrar demo"))
	fmt.Fprintln(out, styles.Divider())

	addStudent := func(first, last string, year int, netID string) {
		if _, err := reg.AddStudent(first, last, year, netID); err != nil {
			reportErr(out, err)
			return
		}
		fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("Added student %s %s (%s)", first, last, netID)))
	}
	addInstructor := func(first, last, empID string) {
		if _, err := reg.AddInstructor(first, last, empID); err != nil {
			reportErr(out, err)
			return
		}
		fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("Added instructor %s %s (%s)", first, last, empID)))
	}
	addCourse := func(code, name, empID string, days []string, start, end, desc string) {
		if _, err := reg.AddCourse(code, name, empID, days, start, end, desc); err != nil {
			reportErr(out, err)
			return
		}
		fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("Added course %s (%s)", code, name)))
	}

	addStudent("Sara", "Conner", 2023, "SC2244")
	addStudent("Mil", "Gibbson", 2022, "MG6754")
	addStudent("Eva", "Miller", 2022, "EM9900")
	addStudent("Chris", "Brown", 2023, "CB1230")

	// Duplicate net ID is rejected without touching the collection.
	addStudent("Sara", "Conner", 2023, "SC2244")

	addInstructor("Prof", "Jason", "PM1234")
	addInstructor("Dr", "Stevens", "DS5678")
	addInstructor("Prof", "Mathews", "PM2233")

	addCourse("PHY201", "Advanced Physics", "PM1234",
		[]string{"Tue", "Thu"}, "09:00", "10:30", "Waves, optics, and modern physics.")
	addCourse("COMP101", "Introduction to Computer Science", "DS5678",
		[]string{"Mon", "Wed"}, "11:00", "12:30", "Programming fundamentals.")
	addCourse("MATH201", "Advanced Calculus", "DS5678",
		[]string{"Tue", "Thu"}, "14:00", "15:30", "Multivariable calculus and series.")
	addCourse("ENG101", "English Composition", "PM2233",
		[]string{"Mon", "Wed"}, "16:00", "17:30", "Academic writing.")
	addCourse("CHEM201", "Advanced Chemistry", "PM2233",
		[]string{"Mon", "Wed"}, "13:00", "14:30", "Organic chemistry foundations.")

	// A course against an unregistered instructor is refused.
	addCourse("HIST101", "World History", "ZZ0000",
		[]string{"Fri"}, "09:00", "10:00", "")

	enroll(out, reg, "SC2244", "PHY201", false)
	enroll(out, reg, "EM9900", "MATH201", false)
	enroll(out, reg, "EM9900", "ENG101", false)
	enroll(out, reg, "CB1230", "COMP101", false)
	enroll(out, reg, "CB1230", "CHEM201", false)

	// MATH201 and PHY201 share no overlap, but a second PHY201 enrollment
	// is refused, and a touching interval counts as a clash.
	enroll(out, reg, "SC2244", "PHY201", false)

	fmt.Fprintln(out, styles.Divider())

	for _, netID := range []string{"SC2244", "EM9900", "CB1230"} {
		if err := renderSchedule(out, reg, netID); err != nil {
			reportErr(out, err)
		}
	}

	// Lookups that miss report a diagnostic rather than aborting the run.
	if _, err := reg.FindStudentByID("JD9330"); err != nil {
		reportErr(out, err)
	}
}

// enroll resolves the student and course, applies the clash check unless
// forced, and reports the outcome.
func enroll(out io.Writer, reg *roster.Registry, netID, code string, force bool) {
	student, err := reg.FindStudentByID(netID)
	if err != nil {
		reportErr(out, err)
		return
	}
	course, err := reg.FindCourseByCode(code)
	if err != nil {
		reportErr(out, err)
		return
	}
	if !force && reg.ClashCheck(student, course) {
		fmt.Fprintln(out, styles.Warning.Render(
			fmt.Sprintf("Schedule clash: %s overlaps an enrolled course for %s (use --force to enroll anyway)", code, netID)))
		return
	}
	if err := reg.EnrollStudent(student, course); err != nil {
		reportErr(out, err)
		return
	}
	fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("Enrolled %s in %s", netID, code)))
}

// reportErr prints expected domain refusals as warnings and anything else as
// an error line.
func reportErr(out io.Writer, err error) {
	switch {
	case errors.Is(err, roster.ErrDuplicateKey),
		errors.Is(err, roster.ErrAlreadyEnrolled),
		errors.Is(err, roster.ErrNotEnrolled),
		errors.Is(err, roster.ErrUnknownInstructor),
		errors.Is(err, roster.ErrNotFound):
		fmt.Fprintln(out, styles.Warning.Render(err.Error()))
	default:
		fmt.Fprintln(out, styles.Error.Render(err.Error()))
	}
}
