// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/spf13/cobra"
)

// BackupOptions holds flags for the backup commands.
type BackupOptions struct {
	*RootOptions
	Output string
	Mode   string
}

func newBackupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BackupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Download, list and restore backup archives",
	}

	download := &cobra.Command{
		Use:   "download",
		Short: "Export your data into a local archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runBackupDownload(ctx, cmd.OutOrStdout(), opts, app)
			})
		},
	}
	download.Flags().StringVarP(&opts.Output, "output", "o", "", "file or directory to write to (default: server file name)")

	restore := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore your data from a local archive",
		Long: `Restore your data from a local archive.

Modes:
  preview  report what would change, write nothing (default)
  replace  make the stored data equal to the archive
  merge    add and update from the archive, keep everything else`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runBackupRestore(ctx, cmd.OutOrStdout(), opts, app, args[0])
			})
		},
	}
	restore.Flags().StringVarP(&opts.Mode, "mode", "m", string(models.RestorePreview), "preview, replace or merge")

	restoreStored := &cobra.Command{
		Use:   "restore-stored <name>",
		Short: "Restore your data from an archive kept by the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runBackupRestoreStored(ctx, cmd.OutOrStdout(), opts, app, args[0])
			})
		},
	}
	restoreStored.Flags().StringVarP(&opts.Mode, "mode", "m", string(models.RestorePreview), "preview, replace or merge")

	list := &cobra.Command{
		Use:   "list",
		Short: "List archives kept by the server, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return runBackupList(ctx, cmd.OutOrStdout(), opts, app)
			})
		},
	}

	cmd.AddCommand(download, restore, restoreStored, list)
	return cmd
}

type downloadOutput struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

func runBackupDownload(ctx context.Context, w io.Writer, opts *BackupOptions, app *App) error {
	data, name, err := app.Services().SyncService.Download(ctx)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	path := filepath.Base(name)
	if opts.Output != "" {
		path = opts.Output
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			path = filepath.Join(path, filepath.Base(name))
		}
	}

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	out := downloadOutput{Path: path, Size: len(data)}
	return opts.output(w, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "saved %s (%d bytes)\n", out.Path, out.Size)
		return err
	})
}

func runBackupRestore(ctx context.Context, w io.Writer, opts *BackupOptions, app *App, path string) error {
	mode, err := models.ParseRestoreMode(opts.Mode)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}

	result, err := app.Services().SyncService.Restore(ctx, data, mode)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	return opts.output(w, result, func(w io.Writer) error {
		return writeRestoreResult(w, result)
	})
}

func runBackupRestoreStored(ctx context.Context, w io.Writer, opts *BackupOptions, app *App, name string) error {
	mode, err := models.ParseRestoreMode(opts.Mode)
	if err != nil {
		return err
	}

	result, err := app.Services().SyncService.RestoreStored(ctx, name, mode)
	if err != nil {
		return fmt.Errorf("restore %s: %w", name, err)
	}

	return opts.output(w, result, func(w io.Writer) error {
		return writeRestoreResult(w, result)
	})
}

func runBackupList(ctx context.Context, w io.Writer, opts *BackupOptions, app *App) error {
	refs, err := app.Services().SyncService.ListBackups(ctx)
	if err != nil {
		return fmt.Errorf("list backups: %w", err)
	}
	if refs == nil {
		refs = []models.FileRef{}
	}

	return opts.output(w, refs, func(w io.Writer) error {
		if len(refs) == 0 {
			_, err := fmt.Fprintln(w, "no backups")
			return err
		}

		rows := make([][]string, 0, len(refs))
		for _, ref := range refs {
			rows = append(rows, []string{ref.Name, ref.CreatedAt.UTC().Format(timeLayout), fmt.Sprint(ref.Size)})
		}
		_, err := fmt.Fprintln(w, renderTable([]string{"NAME", "CREATED", "SIZE"}, rows))
		return err
	})
}
