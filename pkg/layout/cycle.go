package layout

import "math"

// cycleStrategy distributes nodes evenly on a circle around the canvas
// center. Node i sits at angle 2π·i/n starting from the top. The radius is
// the smallest that keeps adjacent boxes (inflated by the separation margin)
// from touching, capped so the circle stays inside the canvas margins.
type cycleStrategy struct{}

func (cycleStrategy) place(nodes []NodeSpec, _ []EdgeSpec, cfg Config) []PositionedNode {
	out := sizedNodes(nodes, cfg)
	n := len(out)
	if n == 0 {
		return out
	}

	centerX := cfg.Width / 2
	centerY := cfg.Height / 2

	radius := cycleRadius(n, cfg)
	for i := range out {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		out[i].X = centerX + radius*math.Cos(angle) - out[i].W/2
		out[i].Y = centerY + radius*math.Sin(angle) - out[i].H/2
	}
	return out
}

// cycleRadius picks the circle radius for n nodes. Adjacent centers are a
// chord 2R·sin(π/n) apart; requiring that chord to exceed the box diagonal
// plus the separation margin gives the lower bound. The upper bound keeps
// the outermost box edge inside the canvas margin.
func cycleRadius(n int, cfg Config) float64 {
	maxBoxW := cfg.NodeWidth * 2
	diag := math.Hypot(maxBoxW, cfg.NodeHeight)

	minRadius := 0.0
	if n > 1 {
		minRadius = (diag + cfg.MinSeparation) / (2 * math.Sin(math.Pi/float64(n)))
	}

	maxRadius := math.Min(cfg.Width, cfg.Height)/2 - cfg.Margin - diag/2
	if maxRadius < 0 {
		maxRadius = 0
	}
	return math.Min(math.Max(minRadius, maxRadius/2), maxRadius)
}
