package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/calculator"
	"github.com/mmynk/roomiesync/internal/models"
)

func roommatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roommates",
		Aliases: []string{"rm"},
		Short:   "Manage roommate profiles",
	}
	cmd.AddCommand(roommatesListCmd())
	cmd.AddCommand(roommatesAddCmd())
	cmd.AddCommand(roommatesDeleteCmd())
	cmd.AddCommand(roommatesCollectCmd())
	return cmd
}

func roommatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roommates",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			stats := calculator.MemberStats(e.state.Roommates, e.state.Expenses)
			table := newTable(e.out, "ID", "Name", "Role", "Veg", "Agreed", "Dues")
			for _, r := range e.state.Roommates {
				stat, _ := calculator.FindMemberStat(stats, r.ID)
				table.Append([]string{r.ID, r.Name, string(r.Role), yesNo(r.IsVegetarian), money(r.AgreedContribution), money(stat.Dues)})
			}
			table.Render()
			return nil
		}),
	}
}

func roommatesAddCmd() *cobra.Command {
	var (
		email        string
		admin        bool
		vegetarian   bool
		contribution float64
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a roommate (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			in := app.NewRoommate{
				Name:               args[0],
				Email:              email,
				Role:               models.RoleMember,
				IsVegetarian:       vegetarian,
				AgreedContribution: contribution,
			}
			if admin {
				in.Role = models.RoleAdmin
			}
			next, err := e.ctrl.AddRoommate(ctx, e.state, in)
			if err != nil {
				return err
			}
			added := next.Roommates[len(next.Roommates)-1]
			e.printf("Added %s (id %s)\n", added.Name, added.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant the admin role")
	cmd.Flags().BoolVar(&vegetarian, "veg", false, "Exclude from Non-Veg splits by default")
	cmd.Flags().Float64Var(&contribution, "contribution", 0, "Agreed monthly contribution (default 6000)")
	return cmd
}

func roommatesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <roommate>",
		Short: "Delete a roommate (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			r, err := e.resolveRoommate(args[0])
			if err != nil {
				return err
			}
			if _, err := e.ctrl.DeleteRoommate(ctx, e.state, r.ID); err != nil {
				return err
			}
			e.printf("Deleted %s\n", r.Name)
			return nil
		}),
	}
}

func roommatesCollectCmd() *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   "collect <roommate>",
		Short: "Record a monthly contribution (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			r, err := e.resolveRoommate(args[0])
			if err != nil {
				return err
			}
			next, err := e.ctrl.CollectContribution(ctx, e.state, r.ID, amount)
			if err != nil {
				return err
			}
			collected := next.Expenses[len(next.Expenses)-1]
			e.printf("Collected %s from %s\n", money(collected.Amount), r.Name)
			return nil
		}),
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount collected (default: the agreed contribution)")
	return cmd
}
