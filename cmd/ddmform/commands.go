package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ddmform "github.com/goliatone/go-ddmform"
	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/orchestrator"
	"github.com/goliatone/go-ddmform/pkg/render"
	"github.com/goliatone/go-ddmform/pkg/renderers/tui"
	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla"
	"github.com/goliatone/go-ddmform/pkg/schema"
	"github.com/goliatone/go-ddmform/pkg/theme"
	"github.com/goliatone/go-ddmform/pkg/validation"
)

func newParseCmd(a *app) *cobra.Command {
	var fieldsOnly bool
	cmd := &cobra.Command{
		Use:   "parse [file|url]",
		Short: "Print the parsed structure as JSON",
		Long: `Parses a DDM definition and prints the localized structure as JSON.

Definitions that are empty, malformed, or declare no fields print null.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			parser := ddmform.NewParser(ddm.WithLogger(a.logger))

			var payload any
			if fieldsOnly {
				if fields := parser.Parse(doc.String(), a.cfg.Locale); fields != nil {
					payload = fields
				}
			} else if structure, err := parser.ParseStructure(doc.String(), a.cfg.Locale); err == nil {
				payload = structure
			} else {
				a.logger.Debug("definition produced no structure",
					zap.String("location", doc.Location()),
					zap.Error(err),
				)
			}
			return writeJSON(cmd.OutOrStdout(), payload)
		},
	}
	cmd.Flags().BoolVar(&fieldsOnly, "fields", false, "Print only the field list")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		output string
		action string
	)
	cmd := &cobra.Command{
		Use:   "render [file|url]",
		Short: "Render a definition as an HTML form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var options []vanilla.Option
			if prefix := strings.TrimSpace(a.cfg.AssetPrefix); prefix != "" {
				options = append(options, vanilla.WithAssetsPrefix(prefix))
			}
			renderer, err := vanilla.New(options...)
			if err != nil {
				return err
			}

			gen, err := a.orchestrator(render.NewRegistry(renderer))
			if err != nil {
				return err
			}
			req, err := a.request(args[0])
			if err != nil {
				return err
			}
			req.Renderer = a.cfg.Renderer
			req.RenderOptions.Action = action

			html, err := gen.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, html)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&action, "action", "", "Form action URL")
	cmd.Flags().StringVar(&a.flags.Renderer, "renderer", "", "Renderer to use (default vanilla)")
	return cmd
}

func newFillCmd(a *app) *cobra.Command {
	var (
		output string
		format string
		values string
		review bool
	)
	cmd := &cobra.Command{
		Use:   "fill [file|url]",
		Short: "Fill in a definition interactively",
		Long: `Prompts for every field of the definition in the terminal and prints the
collected values as json, yaml, form-encoded pairs, or path=value lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := tui.New(
				tui.WithOutput(cmd.ErrOrStderr()),
				tui.WithOutputFormat(tui.ParseOutputFormat(format)),
				tui.WithReview(review),
				tui.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			gen, err := a.orchestrator(render.NewRegistry(renderer))
			if err != nil {
				return err
			}
			req, err := a.request(args[0])
			if err != nil {
				return err
			}
			req.Renderer = renderer.Name()
			if values != "" {
				prefill, err := readValues(values)
				if err != nil {
					return err
				}
				req.RenderOptions.Values = prefill
			}

			answers, err := gen.Generate(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, tui.ErrAborted) || errors.Is(err, tui.ErrDeclined) {
					a.logger.Debug("fill cancelled", zap.Error(err))
				}
				return err
			}
			if output == "" && !strings.HasSuffix(string(answers), "\n") {
				answers = append(answers, '\n')
			}
			return writeOutput(cmd.OutOrStdout(), output, answers)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml, form, or pretty")
	cmd.Flags().StringVar(&values, "values", "", "JSON file with values to prefill")
	cmd.Flags().BoolVar(&review, "review", false, "Review answers before submitting")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|url] [values.json]",
		Short: "Validate a JSON submission against a definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.orchestrator(render.NewRegistry())
			if err != nil {
				return err
			}
			req, err := a.request(args[0])
			if err != nil {
				return err
			}
			form, err := gen.Form(cmd.Context(), req)
			if err != nil {
				return err
			}
			values, err := readValues(args[1])
			if err != nil {
				return err
			}

			result := validation.ValidateSubmission(form, values)
			if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("submission has %d issue(s)", len(result.Issues))
			}
			return nil
		},
	}
}

func newAuthStyleCmd(a *app) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "auth-style",
		Short: "Print the user name field styling for an auth method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			authMethod, err := theme.ParseAuthMethod(method)
			if err != nil {
				return err
			}
			selector, err := theme.NewSelector()
			if err != nil {
				return err
			}
			selection, err := selector.Select(a.cfg.Theme, a.cfg.Variant)
			if err != nil {
				return err
			}
			catalog, err := a.cfg.catalog()
			if err != nil {
				return err
			}

			styler := theme.NewStyler(
				theme.WithRendererConfig(theme.RendererConfig(selection, nil)),
				theme.WithLocalizer(catalog),
				theme.WithLogger(a.logger),
			)
			view := theme.ViewContext{Theme: selection.Theme, Language: a.cfg.Locale}

			var (
				field theme.TextField
				icon  theme.ImageView
			)
			styler.SetAuthMethodStyles(view, authMethod, &field, &icon)
			button := theme.Button{CornerRadius: theme.ButtonCornerRadius}
			styler.SetDefaultButtonBackground(&button)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "placeholder: %s\n", field.Placeholder)
			fmt.Fprintf(out, "keyboard: %s\n", field.KeyboardType)
			fmt.Fprintf(out, "inputmode: %s\n", field.KeyboardType.InputMode())
			if icon.Image != nil {
				fmt.Fprintf(out, "icon: %s\n", icon.Image.URL)
			}
			fmt.Fprintf(out, "button: %s\n", button.Style())
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", string(theme.AuthMethodEmail), "Auth method: email, screenName, or userId")
	return cmd
}

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the registered themes and the assets they resolve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selector, err := theme.NewSelector()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range selector.Themes() {
				selection, err := selector.Select(name, "")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, name)
				config := theme.RendererConfig(selection, nil)
				for _, asset := range theme.AssetNames(selection) {
					fmt.Fprintf(out, "  %s %s\n", asset, config.AssetURL(asset))
				}
			}
			a.logger.Debug("listed themes", zap.Strings("themes", selector.Themes()))
			return nil
		},
	}
}

func (a *app) orchestrator(registry *render.Registry) (*orchestrator.Orchestrator, error) {
	catalog, err := a.cfg.catalog()
	if err != nil {
		return nil, err
	}
	gen := ddmform.NewOrchestrator(
		orchestrator.WithLoader(ddmform.NewLoader(ddm.WithHTTPFallback(a.timeout))),
		orchestrator.WithParser(ddmform.NewParser(ddm.WithLogger(a.logger))),
		orchestrator.WithRegistry(registry),
		orchestrator.WithTranslator(catalog),
		orchestrator.WithLogger(a.logger),
	)
	return gen, nil
}

func (a *app) request(location string) (orchestrator.Request, error) {
	src := schema.ParseSource(location)
	if src == nil {
		return orchestrator.Request{}, fmt.Errorf("invalid source: %q", location)
	}
	return orchestrator.Request{
		Source:       src,
		Locale:       a.cfg.Locale,
		ThemeName:    a.cfg.Theme,
		ThemeVariant: a.cfg.Variant,
	}, nil
}

func (a *app) load(ctx context.Context, location string) (schema.Document, error) {
	src := schema.ParseSource(location)
	if src == nil {
		return schema.Document{}, fmt.Errorf("invalid source: %q", location)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return ddmform.NewLoader(ddm.WithHTTPFallback(a.timeout)).Load(ctx, src)
}

func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}
	return values, nil
}

func writeJSON(out io.Writer, payload any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
