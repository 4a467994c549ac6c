// Command sftctl runs the startup finance projections from assumption files.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	portssvc "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/dto"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/export"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/middleware"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "sftctl",
	Short:        "Startup finance projections from the command line",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: middleware.ParseLevel(level)}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	for _, cmd := range []*cobra.Command{cashFlowCmd, modelCmd} {
		cmd.Flags().StringP("file", "f", "", "assumptions file (YAML or JSON)")
		cmd.Flags().String("format", formatCSV, "output format: csv or json")
		cmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
		cmd.Flags().String("title", export.DefaultTitle, "title written at the top of CSV output")
		_ = cmd.MarkFlagRequired("file")
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cashFlowCmd)
	rootCmd.AddCommand(modelCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sftctl %s\n", version)
	},
}

var cashFlowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Project 12 months of cash flow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := readOutputOptions(cmd)
		if err != nil {
			return err
		}
		assumptions, err := loadCashFlowFile(opts.file)
		if err != nil {
			return err
		}

		return opts.write(cmd, func(ctx context.Context, svc portssvc.ProjectionSvcFacade, w io.Writer) error {
			if opts.format == formatCSV {
				return svc.ExportCashFlow(ctx, w, assumptions)
			}
			p, err := svc.CalculateCashFlow(ctx, assumptions)
			if err != nil {
				return err
			}
			return writeJSON(w, dto.ToCashFlowProjectionResponse(p))
		})
	},
}

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Project a 36-month integrated financial model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := readOutputOptions(cmd)
		if err != nil {
			return err
		}
		assumptions, err := loadModelFile(opts.file)
		if err != nil {
			return err
		}

		return opts.write(cmd, func(ctx context.Context, svc portssvc.ProjectionSvcFacade, w io.Writer) error {
			if opts.format == formatCSV {
				return svc.ExportFinancialModel(ctx, w, assumptions)
			}
			fm, err := svc.CalculateFinancialModel(ctx, assumptions)
			if err != nil {
				return err
			}
			return writeJSON(w, dto.ToFinancialModelResponse(fm))
		})
	},
}

type outputOptions struct {
	file   string
	format string
	out    string
	title  string
}

func readOutputOptions(cmd *cobra.Command) (outputOptions, error) {
	var opts outputOptions
	opts.file, _ = cmd.Flags().GetString("file")
	opts.format, _ = cmd.Flags().GetString("format")
	opts.out, _ = cmd.Flags().GetString("out")
	opts.title, _ = cmd.Flags().GetString("title")

	if opts.format != formatCSV && opts.format != formatJSON {
		return opts, fmt.Errorf("unknown format %q: want csv or json", opts.format)
	}
	return opts, nil
}

// write runs render against stdout or the --out file. The file is only created once the
// projection has rendered successfully.
func (o outputOptions) write(cmd *cobra.Command, render func(context.Context, portssvc.ProjectionSvcFacade, io.Writer) error) error {
	svc := services.NewProjectionService(
		services.WithExporter(export.NewCSVExporter(export.WithTitle(o.title))),
	)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if o.out == "" {
		return render(ctx, svc, cmd.OutOrStdout())
	}

	tmp, err := os.CreateTemp(filepath.Dir(o.out), ".sftctl-*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := render(ctx, svc, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), o.out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Projection written", slog.String("path", o.out), slog.String("format", o.format))
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
