package main

import (
	"context"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/models"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Read and post household messages",
	}
	cmd.AddCommand(chatListCmd())
	cmd.AddCommand(chatSendCmd())
	return cmd
}

func chatListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the latest messages",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			messages := e.state.Messages
			if limit > 0 && len(messages) > limit {
				messages = messages[len(messages)-limit:]
			}
			for _, m := range messages {
				sender := e.state.RoommateName(m.SenderID)
				e.printf("%s %s: %s", color.Gray.Sprint(m.Timestamp.Local().Format(time.DateTime)), color.Cyan.Sprint(sender), m.Content)
				if status, ok := app.ResolveTaskStatus(m, e.state.Tasks); ok {
					e.printf(" [%s]", taskStatusBadge(status))
				}
				e.printf("\n")
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of messages (0 for all)")
	return cmd
}

func taskStatusBadge(status models.TaskStatus) string {
	if status == models.TaskCompleted {
		return color.Green.Sprint(status)
	}
	return color.Yellow.Sprint(status)
}

func chatSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Post a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			if _, err := e.ctrl.SendMessage(ctx, e.state, strings.Join(args, " ")); err != nil {
				return err
			}
			e.printf("Sent\n")
			return nil
		}),
	}
}
