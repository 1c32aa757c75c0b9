package viz

import (
	"github.com/guptarohit/asciigraph"
)

type PlotOptions struct {
	Height  int
	Width   int
	Caption string
}

func (o PlotOptions) options() []asciigraph.Option {
	opts := []asciigraph.Option{asciigraph.Precision(3)}
	if o.Height > 0 {
		opts = append(opts, asciigraph.Height(o.Height))
	}
	if o.Width > 0 {
		opts = append(opts, asciigraph.Width(o.Width))
	}
	if o.Caption != "" {
		opts = append(opts, asciigraph.Caption(o.Caption))
	}
	return opts
}

// PlotSeries draws one curve. Empty input yields "".
func PlotSeries(data []float64, o PlotOptions) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data, o.options()...)
}

// PlotOverlay draws target and series on shared axes.
func PlotOverlay(target, series []float64, o PlotOptions) string {
	if len(target) == 0 || len(series) == 0 {
		return ""
	}
	opts := append(o.options(),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.SeriesLegends("target", "series"),
	)
	return asciigraph.PlotMany([][]float64{target, series}, opts...)
}
