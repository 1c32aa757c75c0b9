// Package viz renders pipeline output for the terminal.
//
// Plots are drawn with asciigraph: [PlotSeries] for a single sampled curve and
// [PlotOverlay] for target and series on shared axes. [FormatProofs] and
// [FormatCoefficients] print the exact symbolic results next to their float
// values using the lipgloss styles in this package.
package viz
