package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/ui/styles"
)

var courseAddCmd = &cobra.Command{
	Use:   "course:add <code> <name> <employee-id> <days> <start> <end> [description]",
	Short: "Register a new course",
	Long: `Register a new course taught by an existing instructor.

Days are comma separated (e.g. Tue,Thu) and times are 24-hour HH:MM.
The instructor must already be registered; unknown employee IDs are refused.`,
	Args: cobra.RangeArgs(6, 7),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		days := strings.Split(args[3], ",")
		description := ""
		if len(args) == 7 {
			description = args[6]
		}

		course, err := reg.AddCourse(args[0], args[1], args[2], days, args[4], args[5], description)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
			fmt.Sprintf("Added course %s (%s)", course.Code(), course.Name())))
		return nil
	},
}

var courseRemoveCmd = &cobra.Command{
	Use:   "course:remove <code>",
	Short: "Remove a course by code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.RemoveCourseByCode(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Removed course "+args[0]))
		return nil
	},
}

var courseListCmd = &cobra.Command{
	Use:   "course:list",
	Short: "List all registered courses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		courses := reg.Courses()
		if len(courses) == 0 {
			fmt.Fprintln(out, styles.Muted.Render("No courses registered."))
			return nil
		}
		for _, c := range courses {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s %s-%s\n",
				c.Code(), c.Name(), c.InstructorID(),
				strings.Join(c.DaysOfWeek(), " "), c.StartTime(), c.EndTime())
		}
		return nil
	},
}

var courseDescribeCmd = &cobra.Command{
	Use:   "course:describe <code> <description...>",
	Short: "Set a course description",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.SetCourseDescription(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Updated description for "+args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(courseAddCmd)
	rootCmd.AddCommand(courseRemoveCmd)
	rootCmd.AddCommand(courseListCmd)
	rootCmd.AddCommand(courseDescribeCmd)
}
