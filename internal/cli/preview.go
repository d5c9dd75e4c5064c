package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/narravis/narravis/pkg/graph"
	"github.com/narravis/narravis/pkg/pipeline"
)

// previewCommand creates the preview command for terminal layout previews.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		configPath string
		sceneIdx   int
		cols       int
		rows       int
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "preview [document.json]",
		Short: "Preview a scene's layout in the terminal",
		Long: `Preview a scene's layout in the terminal.

The preview command computes the layout for one scene and draws the node
boxes and edges as a character grid. For multi-scene documents an
interactive picker opens unless --scene is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			opts := pipeline.Options{Config: cfg.Layout}
			return c.runPreview(cmd.Context(), args[0], opts, sceneIdx, cols, rows, noCache, cmd.Flags().Changed("scene"))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: narravis.toml, then XDG config dir)")
	cmd.Flags().IntVarP(&sceneIdx, "scene", "s", 0, "scene index to preview (skips the picker)")
	cmd.Flags().IntVar(&cols, "cols", 100, "preview grid width in characters")
	cmd.Flags().IntVar(&rows, "rows", 30, "preview grid height in characters")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options, sceneIdx, cols, rows int, noCache, sceneGiven bool) error {
	doc, err := graph.LoadDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	if !sceneGiven && len(doc.Scenes) > 1 {
		picked, err := pickScene(doc.Scenes)
		if err != nil {
			return err
		}
		if picked < 0 {
			return nil // user quit the picker
		}
		sceneIdx = picked
	}
	if sceneIdx < 0 || sceneIdx >= len(doc.Scenes) {
		return fmt.Errorf("scene index %d out of range (document has %d scenes)", sceneIdx, len(doc.Scenes))
	}
	scene := doc.Scenes[sceneIdx]

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	l, cached, err := runner.LayoutScene(ctx, scene, opts)
	if err != nil {
		return err
	}
	if !l.Success {
		printError("layout failed: %s", l.Error)
		return nil
	}

	title := scene.Title
	if title == "" {
		title = fmt.Sprintf("scene %d", sceneIdx)
	}
	fmt.Println(StyleTitle.Render(title) + " " + StyleDim.Render("("+l.Archetype+")"))
	fmt.Println(asciiPreview(l, cols, rows))
	printSceneStats(sceneIdx, l.Archetype, len(l.Nodes), l.Confidence, cached)

	return nil
}

// asciiPreview draws a layout as a character grid: edges as dotted lines,
// node boxes as bordered rectangles with truncated labels.
func asciiPreview(l graph.Layout, cols, rows int) string {
	if cols < 20 {
		cols = 20
	}
	if rows < 10 {
		rows = 10
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	// Scale canvas coordinates to grid cells. Terminal cells are roughly
	// twice as tall as wide, which the row scale absorbs naturally since
	// both axes scale independently.
	spanX := l.Bounds.MaxX + l.Bounds.MinX
	spanY := l.Bounds.MaxY + l.Bounds.MinY
	if spanX <= 0 || spanY <= 0 {
		return ""
	}
	sx := float64(cols-1) / spanX
	sy := float64(rows-1) / spanY

	for _, e := range l.Edges {
		for i := 1; i < len(e.Points); i++ {
			drawLine(grid,
				int(e.Points[i-1].X*sx), int(e.Points[i-1].Y*sy),
				int(e.Points[i].X*sx), int(e.Points[i].Y*sy))
		}
	}

	for _, n := range l.Nodes {
		x0, y0 := int(n.X*sx), int(n.Y*sy)
		x1, y1 := int((n.X+n.W)*sx), int((n.Y+n.H)*sy)
		if x1 <= x0+1 {
			x1 = x0 + 2
		}
		if y1 <= y0+1 {
			y1 = y0 + 2
		}
		label := n.Label
		if label == "" {
			label = n.ID
		}
		drawBox(grid, x0, y0, x1, y1, label)
	}

	var out []byte
	for _, row := range grid {
		out = append(out, []byte(string(row))...)
		out = append(out, '\n')
	}
	return string(out)
}

// drawLine marks a straight segment on the grid with dots.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	steps := abs(x1 - x0)
	if abs(y1-y0) > steps {
		steps = abs(y1 - y0)
	}
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

// drawBox draws a bordered rectangle with a centered, truncated label.
func drawBox(grid [][]rune, x0, y0, x1, y1 int, label string) {
	put := func(x, y int, r rune) {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			grid[y][x] = r
		}
	}

	for x := x0; x <= x1; x++ {
		put(x, y0, '─')
		put(x, y1, '─')
	}
	for y := y0; y <= y1; y++ {
		put(x0, y, '│')
		put(x1, y, '│')
	}
	put(x0, y0, '┌')
	put(x1, y0, '┐')
	put(x0, y1, '└')
	put(x1, y1, '┘')

	// Clear the interior so edge dots don't show through the box.
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			put(x, y, ' ')
		}
	}

	inner := x1 - x0 - 1
	if inner < 1 {
		return
	}
	runes := []rune(label)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	start := x0 + 1 + (inner-len(runes))/2
	mid := (y0 + y1) / 2
	for i, r := range runes {
		put(start+i, mid, r)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
