package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/ui/styles"
)

var enrollForce bool

var enrollCmd = &cobra.Command{
	Use:   "enroll <netid> <code>",
	Short: "Enroll a student in a course",
	Long: `Enroll a student in a course. The course's meeting time is checked
against the student's current enrollments first; overlapping intervals
(including ones that merely touch at an endpoint) are refused unless
--force is given.

Enrollments live only for the lifetime of the process; the students file
carries no enrollment column.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		student, err := reg.FindStudentByID(args[0])
		if err != nil {
			return err
		}
		course, err := reg.FindCourseByCode(args[1])
		if err != nil {
			return err
		}

		if !enrollForce && reg.ClashCheck(student, course) {
			return fmt.Errorf("schedule clash: %s overlaps a course %s is enrolled in (use --force to enroll anyway)",
				course.Code(), student.ID())
		}
		if err := reg.EnrollStudent(student, course); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
			fmt.Sprintf("Enrolled %s in %s", student.ID(), course.Code())))
		return nil
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop <netid> <code>",
	Short: "Drop a student from a course",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.DropStudent(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
			fmt.Sprintf("Dropped %s from %s", args[0], args[1])))
		return nil
	},
}

var clashCmd = &cobra.Command{
	Use:   "clash <netid> <code>",
	Short: "Check whether a course clashes with a student's schedule",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		student, err := reg.FindStudentByID(args[0])
		if err != nil {
			return err
		}
		course, err := reg.FindCourseByCode(args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if reg.ClashCheck(student, course) {
			fmt.Fprintln(out, styles.Warning.Render(
				fmt.Sprintf("%s clashes with %s's schedule", course.Code(), student.ID())))
		} else {
			fmt.Fprintln(out, styles.Success.Render(
				fmt.Sprintf("%s fits %s's schedule", course.Code(), student.ID())))
		}
		return nil
	},
}

func init() {
	enrollCmd.Flags().BoolVar(&enrollForce, "force", false, "enroll even if the course clashes with the schedule")
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(clashCmd)
}
