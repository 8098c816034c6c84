package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/taskbook/internal/config"
	"github.com/zjrosen/taskbook/internal/presentation"
	"github.com/zjrosen/taskbook/internal/registry"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks, with optional status, assignee, overdue, and search filters",
	RunE:  runTasks,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the task count per status",
	RunE:  runStats,
}

func init() {
	tasksCmd.Flags().String("status", "", "filter by status: todo, in_progress, done, or cancelled")
	tasksCmd.Flags().Int64("assignee", 0, "filter by assignee user id")
	tasksCmd.Flags().Bool("overdue", false, "only tasks past due and not done")
	tasksCmd.Flags().String("search", "", "filter by case-insensitive title/description substring")

	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(statsCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}

	var tasks []registry.Task
	switch {
	case mustBool(cmd, "overdue"):
		tasks = d.Tasks.ListOverdue()
	case mustString(cmd, "search") != "":
		tasks = d.Tasks.Search(mustString(cmd, "search"))
	case mustString(cmd, "status") != "":
		tasks = d.Tasks.ListByStatus(registry.Status(mustString(cmd, "status")))
	case mustInt64(cmd, "assignee") != 0:
		tasks = d.Tasks.ListByAssignee(mustInt64(cmd, "assignee"))
	default:
		tasks = d.Tasks.List()
	}

	ctx := cmd.Context()
	now := d.Now()
	dtos := make([]presentation.TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, presentation.NewTaskDTO(task, d.AssigneeName(ctx, task.AssigneeID), now))
	}

	if cfg.Output == config.OutputJSON {
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatTasks(dtos)
	}
	fmt.Fprint(cmd.OutOrStdout(), presentation.RenderBoard(dtos, now))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}

	stats := d.Tasks.Statistics()

	if cfg.Output == config.OutputJSON {
		out := make(map[string]int, len(stats))
		for status, count := range stats {
			out[string(status)] = count
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatStatistics(out)
	}

	for _, status := range registry.Statuses {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d\n", status, stats[status])
	}
	return nil
}

func mustInt64(cmd *cobra.Command, name string) int64 {
	v, _ := cmd.Flags().GetInt64(name)
	return v
}
