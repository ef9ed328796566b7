package main

import (
	"context"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/calculator"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <roommate>",
		Short: "Log in as a roommate (by ID or name)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			r, err := e.resolveRoommate(args[0])
			if err != nil {
				return err
			}
			if _, err := e.ctrl.Login(ctx, e.state, r.ID); err != nil {
				return err
			}
			e.printf("Logged in as %s (%s)\n", color.Cyan.Sprint(r.Name), r.Role)
			return nil
		}),
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, e *env, _ []string) error {
			if _, err := e.ctrl.Logout(ctx, e.state); err != nil {
				return err
			}
			e.printf("Logged out\n")
			return nil
		}),
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in roommate",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			u, err := e.currentUser()
			if err != nil {
				return err
			}
			stats := calculator.MemberStats(e.state.Roommates, e.state.Expenses)
			stat, _ := calculator.FindMemberStat(stats, u.ID)

			e.printf("%s (%s)\n", color.Cyan.Sprint(u.Name), u.Role)
			if u.Email != "" {
				e.printf("Email:        %s\n", u.Email)
			}
			e.printf("Contributed:  %s of %s\n", money(stat.Contributed), money(stat.Target))
			if stat.AllPaidUp() {
				e.printf("Dues:         %s\n", color.Green.Sprint("all paid up"))
			} else {
				e.printf("Dues:         %s\n", color.Red.Sprint(money(stat.Dues)))
			}
			e.printf("Your share:   %s\n", money(stat.RoundedShare))
			e.printf("Pending tasks: %d\n", app.PendingCount(e.state.Tasks, u.ID))
			e.printf("Backend:      %s\n", e.cfg.Backend)
			return nil
		}),
	}
}
