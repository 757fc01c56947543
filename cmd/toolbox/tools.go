package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toolbox/internal/app"
	"toolbox/internal/domain"
	"toolbox/internal/infra/telemetry"
)

func newSearchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Rank tools against a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return opts.withApplication(cmd, telemetry.LogSourceCLI, func(application *app.Application) error {
				matches := application.Workspace().Search(query)
				if err := printMatches(cmd.OutOrStdout(), query, matches, opts.jsonOutput); err != nil {
					return err
				}
				if len(matches) == 0 && !opts.jsonOutput {
					fmt.Fprintln(cmd.ErrOrStderr(), "no matching tools")
					return exitSilent(exitCodeFailure)
				}
				return nil
			})
		},
	}
}

func newFeaturedCmd(opts *cliOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List featured tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApplication(cmd, telemetry.LogSourceCLI, func(application *app.Application) error {
				workspace := application.Workspace()
				featured := workspace.Results().Featured
				if cmd.Flags().Changed("limit") {
					if limit < 0 {
						return domain.InvalidInput("cli.featured", "--limit must not be negative")
					}
					featured = workspace.Featured(limit)
				}
				return printDescriptors(cmd.OutOrStdout(), featured, opts.jsonOutput)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of tools (0 lists every featured tool; default from config)")
	return cmd
}

func newListCmd(opts *cliOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every tool, optionally within one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApplication(cmd, telemetry.LogSourceCLI, func(application *app.Application) error {
				workspace := application.Workspace()
				if category == "" {
					return printDescriptors(cmd.OutOrStdout(), workspace.Tools(), opts.jsonOutput)
				}
				parsed := domain.Category(category)
				if !parsed.Valid() {
					return domain.InvalidInput("cli.list", "unknown category %q", category)
				}
				return printDescriptors(cmd.OutOrStdout(), workspace.ToolsInCategory(parsed), opts.jsonOutput)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "image_pdf, text_data, qr_cccd, media or other")
	return cmd
}

func newShowCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one tool and its usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApplication(cmd, telemetry.LogSourceCLI, func(application *app.Application) error {
				descriptor, err := application.Workspace().Find(args[0])
				if err != nil {
					return err
				}
				return printDescriptor(cmd.OutOrStdout(), descriptor, opts.jsonOutput)
			})
		},
	}
}

type runArgs struct {
	options []string
	input   string
	out     string
}

func newRunCmd(opts *cliOptions) *cobra.Command {
	args := &runArgs{}
	cmd := &cobra.Command{
		Use:   "run <slug> [args...]",
		Short: "Open a tool and run it once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			req, err := buildToolRequest(cmd.InOrStdin(), positional[1:], args)
			if err != nil {
				return err
			}
			slug := positional[0]
			return opts.withApplication(cmd, telemetry.LogSourceCLI, func(application *app.Application) error {
				session, err := application.Workspace().Open(cmd.Context(), slug)
				if err != nil {
					return err
				}
				result, err := session.Run(cmd.Context(), req)
				if err != nil {
					return err
				}
				if err := writeOutput(args.out, result); err != nil {
					return err
				}
				if args.out != "" {
					application.Logger().Debug("tool output written", telemetry.SlugField(slug), zap.String("path", args.out))
				} else if len(result.Attachment) > 0 && !opts.jsonOutput {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s not saved, pass --out to write it\n", result.AttachmentName)
				}
				return printResult(cmd.OutOrStdout(), slug, result, opts.jsonOutput)
			})
		},
	}
	cmd.Flags().StringArrayVar(&args.options, "opt", nil, "tool option as key=value (repeatable)")
	cmd.Flags().StringVar(&args.input, "input", "", "read tool input from a file, or - for stdin")
	cmd.Flags().StringVar(&args.out, "out", "", "write the attachment (or the text result) to a file")
	return cmd
}

func buildToolRequest(stdin io.Reader, positional []string, args *runArgs) (domain.ToolRequest, error) {
	const op = "cli.run"
	req := domain.ToolRequest{Args: positional}
	for _, raw := range args.options {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return domain.ToolRequest{}, domain.InvalidInput(op, "--opt %q must be key=value", raw)
		}
		if req.Options == nil {
			req.Options = make(map[string]string)
		}
		req.Options[key] = strings.TrimSpace(value)
	}

	switch args.input {
	case "":
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return domain.ToolRequest{}, domain.E(domain.CodeFailedPrecond, op, "read stdin", err)
		}
		req.Input = data
	default:
		data, err := os.ReadFile(args.input)
		if err != nil {
			return domain.ToolRequest{}, domain.E(domain.CodeInvalidArgument, op, "read "+args.input, err)
		}
		req.Input = data
	}
	return req, nil
}

func writeOutput(path string, result domain.ToolResult) error {
	if path == "" {
		return nil
	}
	data := result.Attachment
	if len(data) == 0 {
		data = []byte(result.Text + "\n")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.E(domain.CodeFailedPrecond, "cli.run", "write "+path, err)
	}
	return nil
}
