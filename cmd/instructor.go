package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/ui/styles"
)

var instructorAddCmd = &cobra.Command{
	Use:   "instructor:add <first-name> <last-name> <employee-id>",
	Short: "Register a new instructor",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		instructor, err := reg.AddInstructor(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
			fmt.Sprintf("Added instructor %s (%s)", instructor.FullName(), instructor.EmployeeID())))
		return nil
	},
}

var instructorRemoveCmd = &cobra.Command{
	Use:   "instructor:remove <employee-id>",
	Short: "Remove an instructor by employee ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.RemoveInstructorByEmpID(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Removed instructor "+args[0]))
		return nil
	},
}

var instructorListCmd = &cobra.Command{
	Use:   "instructor:list",
	Short: "List all registered instructors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		instructors := reg.Instructors()
		if len(instructors) == 0 {
			fmt.Fprintln(out, styles.Muted.Render("No instructors registered."))
			return nil
		}
		for _, i := range instructors {
			fmt.Fprintf(out, "%s\t%s\n", i.EmployeeID(), i.FullName())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(instructorAddCmd)
	rootCmd.AddCommand(instructorRemoveCmd)
	rootCmd.AddCommand(instructorListCmd)
}
