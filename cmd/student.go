package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/ui/styles"
)

var studentAddCmd = &cobra.Command{
	Use:   "student:add <first-name> <last-name> <year> <netid>",
	Short: "Register a new student",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("year must be numeric, got %q", args[2])
		}

		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		student, err := reg.AddStudent(args[0], args[1], year, args[3])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(
			fmt.Sprintf("Added student %s (%s)", student.FullName(), student.ID())))
		return nil
	},
}

var studentRemoveCmd = &cobra.Command{
	Use:   "student:remove <netid>",
	Short: "Remove a student by net ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.RemoveStudentByNetID(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Removed student "+args[0]))
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "student:list",
	Short: "List all registered students",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		students := reg.Students()
		if len(students) == 0 {
			fmt.Fprintln(out, styles.Muted.Render("No students registered."))
			return nil
		}
		for _, s := range students {
			fmt.Fprintf(out, "%s\t%s\t%d\n", s.ID(), s.FullName(), s.Year())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(studentAddCmd)
	rootCmd.AddCommand(studentRemoveCmd)
	rootCmd.AddCommand(studentListCmd)
}
