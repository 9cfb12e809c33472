package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/domain/roster"
	"github.com/zjrosen/registrar/internal/ui/styles"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <netid>",
	Short: "Print a student's enrolled courses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			return err
		}
		return renderSchedule(cmd.OutOrStdout(), reg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

// renderSchedule prints the student's schedule header followed by one course
// info block per enrollment, each closed with a divider.
func renderSchedule(out io.Writer, reg *roster.Registry, netID string) error {
	student, err := reg.FindStudentByID(netID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, styles.Header.Render("Schedule for: "+student.FullName()))
	fmt.Fprintln(out, styles.Divider())

	courses, err := reg.Schedule(netID)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(out, styles.Muted.Render("No enrollments."))
		return nil
	}
	for _, course := range courses {
		fmt.Fprint(out, course.Info())
		fmt.Fprintln(out, styles.Divider())
	}
	return nil
}
