package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"rt-portal-go/internal/app"
	"rt-portal-go/internal/domain/letterhead"
	residentsdomain "rt-portal-go/internal/domain/residents"
	"rt-portal-go/internal/export"
	"rt-portal-go/pkg/logger"
)

func newLetterCmd(log logger.Logger) *cobra.Command {
	var bodyFile, outDir string

	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Render an official letter for the seeded profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			body := letterhead.DefaultBody
			if bodyFile != "" {
				content, err := os.ReadFile(bodyFile)
				if err != nil {
					return fmt.Errorf("read body file: %w", err)
				}
				body = string(content)
			}

			application, err := app.New(ctx, log)
			if err != nil {
				return err
			}
			services := application.Services()
			p, err := services.Profiles.Get(ctx)
			if err != nil {
				return err
			}

			filename, err := services.Letters.Export(ctx, export.Dir{Path: outDir}, p, body)
			if err != nil {
				return err
			}
			log.Info("letter: written", "dir", outDir, "filename", filename)
			fmt.Fprintln(cmd.OutOrStdout(), filename)
			return nil
		},
	}
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "file holding the letter body (default: starter text)")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

func newResidentsCmd(log logger.Logger) *cobra.Command {
	residents := &cobra.Command{
		Use:   "residents",
		Short: "Resident registry tools",
	}

	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the residents CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application, err := app.New(ctx, log)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := application.Services().Residents.ExportCSV(ctx, &buf); err != nil {
				return err
			}
			filename := residentsdomain.ExportFilename(application.Clock().Now())
			if err := (export.Dir{Path: outDir}).Export(ctx, filename, buf.Bytes()); err != nil {
				return err
			}
			log.Info("residents: exported", "dir", outDir, "filename", filename)
			fmt.Fprintln(cmd.OutOrStdout(), filename)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	residents.AddCommand(exportCmd)
	return residents
}
