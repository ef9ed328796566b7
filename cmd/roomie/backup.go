package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/transfer"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the whole household",
	}
	cmd.AddCommand(backupExportCmd())
	cmd.AddCommand(backupImportCmd())
	return cmd
}

func backupExportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			b := e.ctrl.Backup(e.state)
			path := filepath.Join(dir, transfer.BackupFileName(b.ExportedAt))
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create backup: %w", err)
			}
			err = transfer.Export(f, b)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			e.printf("Backup written to %s\n", path)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&dir, "out", "o", ".", "Output directory")
	return cmd
}

func backupImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all household data with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup: %w", err)
			}
			defer f.Close()

			b, err := transfer.Import(f)
			if err != nil {
				return err
			}
			next, err := e.ctrl.Restore(ctx, e.state, b)
			if err != nil {
				return err
			}
			e.printf("Restored %d roommates, %d expenses, %d tasks and %d messages\n",
				len(next.Roommates), len(next.Expenses), len(next.Tasks), len(next.Messages))
			return nil
		}),
	}
}
