package main

import (
	"context"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/models"
)

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Assign and track chores",
	}
	cmd.AddCommand(tasksListCmd())
	cmd.AddCommand(tasksAddCmd())
	cmd.AddCommand(tasksCompleteCmd())
	cmd.AddCommand(tasksRemindCmd())
	return cmd
}

func tasksListCmd() *cobra.Command {
	var mine bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			var me string
			if mine {
				u, err := e.currentUser()
				if err != nil {
					return err
				}
				me = u.ID
			}

			now := e.ctrl.Now()
			table := newTable(e.out, "ID", "Title", "Assigned To", "Due", "Status", "Reminded")
			for _, t := range e.state.Tasks {
				if me != "" && t.AssignedTo != me {
					continue
				}
				status := string(t.Status)
				switch {
				case t.Status == models.TaskCompleted:
					status = color.Green.Sprint(status)
				case app.IsOverdue(t, now, e.ctrl.Location()):
					status = color.Red.Sprint("OVERDUE")
				}
				reminded := ""
				if t.LastReminded != nil {
					reminded = t.LastReminded.Local().Format(time.DateTime)
				}
				table.Append([]string{t.ID, t.Title, e.state.RoommateName(t.AssignedTo), t.DueDate, status, reminded})
			}
			table.Render()
			return nil
		}),
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "Only tasks assigned to you")
	return cmd
}

func tasksAddCmd() *cobra.Command {
	var (
		assignee    string
		due         string
		description string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Assign a task",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			r, err := e.resolveRoommate(assignee)
			if err != nil {
				return err
			}
			if due == "" {
				due = e.ctrl.Now().In(e.ctrl.Location()).Format(models.DueDateLayout)
			}
			next, err := e.ctrl.AddTask(ctx, e.state, app.NewTask{
				Title:       args[0],
				AssignedTo:  r.ID,
				DueDate:     due,
				Description: description,
			})
			if err != nil {
				return err
			}
			t := next.Tasks[len(next.Tasks)-1]
			e.printf("Assigned %q to %s, due %s (id %s)\n", t.Title, r.Name, t.DueDate, t.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&assignee, "to", "", "Assignee")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func tasksCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			if _, err := e.ctrl.CompleteTask(ctx, e.state, args[0]); err != nil {
				return err
			}
			e.printf("Task %s completed\n", args[0])
			return nil
		}),
	}
}

func tasksRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind <task-id>",
		Short: "Write a reminder for an overdue task",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			_, reminder, err := e.ctrl.RemindTask(ctx, e.state, args[0])
			if err != nil {
				return err
			}
			e.printf("%s\n", color.Yellow.Sprint(reminder))
			return nil
		}),
	}
}
