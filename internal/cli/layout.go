package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/graph"
	"github.com/narravis/narravis/pkg/pipeline"
	"github.com/narravis/narravis/pkg/render/dot"
	"github.com/narravis/narravis/pkg/render/svg"
)

// layoutCommand creates the layout command for computing scene layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		configPath string
		output     string
		formatsStr string
		archetype  string
		width      float64
		height     float64
		noCache    bool
		refresh    bool
		metrics    bool
	)

	cmd := &cobra.Command{
		Use:   "layout [document.json]",
		Short: "Compute diagram layouts for a document",
		Long: `Compute diagram layouts for a document.

The layout command takes a document.json file (scenes with nodes, edges, and
an archetype each) and computes overlap-free positions for every scene. The
default output is a layout JSON file for the downstream renderer; SVG and
Graphviz DOT debug outputs are available with --format.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			for _, f := range formats {
				if err := errors.ValidateFormat(f, layoutFormats); err != nil {
					return err
				}
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Layout.Width = width
			}
			if cmd.Flags().Changed("height") {
				cfg.Layout.Height = height
			}

			opts := pipeline.Options{
				Config:    cfg.Layout,
				Archetype: archetype,
				Refresh:   refresh,
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, formats, noCache, metrics)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: narravis.toml, then XDG config dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), svg, dot (comma-separated)")
	cmd.Flags().StringVarP(&archetype, "archetype", "a", "", "override every scene's archetype: flow, tree, timeline, matrix, cycle")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "include a metrics overlay in SVG output")

	return cmd
}

// runLayout loads the document, computes layouts, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, formats []string, noCache, metrics bool) error {
	doc, err := graph.LoadDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %d scenes...", len(doc.Scenes)))
	spinner.Start()

	res, err := runner.LayoutDocument(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Laid out %d scenes", res.Stats.SceneCount))

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	var written []string
	for _, format := range formats {
		paths, err := writeLayouts(doc, res, base, format, output != "" && len(formats) == 1, metrics)
		if err != nil {
			return err
		}
		written = append(written, paths...)
	}

	printSuccess("Layout complete")
	for _, p := range written {
		printFile(p)
	}
	for i, l := range res.Layouts {
		printSceneStats(i, l.Archetype, len(l.Nodes), l.Confidence, res.Cached[i])
	}
	if !res.Succeeded() {
		printWarning("some scenes failed; see the layout file for details")
	}
	printNewline()
	printNextStep("Preview", "narravis preview "+input)

	return nil
}

// writeLayouts writes every scene's layout in one format. exact means the
// caller gave a full output path for a single format.
func writeLayouts(doc graph.Document, res *pipeline.DocumentResult, base, format string, exact, metrics bool) ([]string, error) {
	switch format {
	case "json":
		path := base + ".layout.json"
		if exact {
			path = base
		}
		data, err := json.MarshalIndent(res.Layouts, "", "  ")
		if err != nil {
			return nil, err
		}
		if err := writeFile(path, data); err != nil {
			return nil, err
		}
		return []string{path}, nil

	case "svg":
		var paths []string
		for i, l := range res.Layouts {
			path := scenePath(base, "svg", i, len(res.Layouts), exact)
			data := svg.Render(l, svg.Options{ShowMetrics: metrics})
			if err := writeFile(path, data); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
		return paths, nil

	case "dot":
		var paths []string
		for i, s := range doc.Scenes {
			path := scenePath(base, "dot", i, len(doc.Scenes), exact)
			if err := writeFile(path, []byte(dot.ToDOT(s))); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

// scenePath names per-scene output files. Single-scene documents drop the
// scene index.
func scenePath(base, ext string, i, total int, exact bool) string {
	if exact && total == 1 {
		return base
	}
	if total == 1 {
		return fmt.Sprintf("%s.%s", base, ext)
	}
	return fmt.Sprintf("%s.scene%d.%s", base, i, ext)
}

func writeFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
