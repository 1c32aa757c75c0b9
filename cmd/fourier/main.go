package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/fourier/internal/analysis"
	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/export"
	"github.com/san-kum/fourier/internal/fourier"
	"github.com/san-kum/fourier/internal/logging"
	"github.com/san-kum/fourier/internal/optim"
	"github.com/san-kum/fourier/internal/storage"
	"github.com/san-kum/fourier/internal/tui"
	"github.com/san-kum/fourier/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	points     int
	terms      int
	mode       string
	configFile string
	preset     string
	svgFile    string
	noSave     bool
	checkMax   int
	checkNodes int
	plotHeight int
	plotWidth  int
	maxTerms   int
	workers    int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fourier",
		Short:         "fourier series of a step function",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.ConfigureRuntime()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunExplorer(fourier.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	proveCmd := &cobra.Command{
		Use:   "prove",
		Short: "prove orthogonality of sin and cos on [0, 2π]",
		Args:  cobra.NoArgs,
		RunE:  prove,
	}
	proveCmd.Flags().IntVar(&checkMax, "check", config.DefaultMaxIndex, "numerically cross-check indices 1..N (0 disables)")
	proveCmd.Flags().IntVar(&checkNodes, "nodes", config.DefaultNodes, "Gauss-Legendre nodes for the cross-check")
	proveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	proveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "prove, compute coefficients, reconstruct and save",
		Args:  cobra.NoArgs,
		RunE:  runPipeline,
	}
	addPipelineFlags(runCmd)
	runCmd.Flags().StringVar(&svgFile, "svg", "", "also write an svg chart")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")
	runCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")

	coeffsCmd := &cobra.Command{
		Use:   "coeffs",
		Short: "print exact coefficients",
		Args:  cobra.NoArgs,
		RunE:  printCoefficients,
	}
	coeffsCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "number of terms")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "dump a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "dump stored samples as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id] [file]",
		Short: "write an svg chart of a stored run",
		Args:  cobra.ExactArgs(2),
		RunE:  writeSVG,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "error metrics over term counts for both modes",
		Args:  cobra.NoArgs,
		RunE:  sweepTerms,
	}
	sweepCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points on [0, 2π]")
	sweepCmd.Flags().IntVar(&maxTerms, "max-terms", 32, "largest term count")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (0 = all cpus)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPOINTS\tTERMS\tMODE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, p.Points, p.Terms, p.Mode)
			}
			return w.Flush()
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunExplorer(cfg.Pipeline())
		},
	}
	addPipelineFlags(exploreCmd)

	rootCmd.AddCommand(proveCmd, runCmd, coeffsCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, svgCmd, analyzeCmd, sweepCmd, presetsCmd, exploreCmd)

	return rootCmd
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points on [0, 2π]")
	cmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "number of series terms")
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "reconstruction mode (notebook|canonical)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
}

// resolveConfig layers defaults, preset, config file and explicitly set flags.
// The data directory is not part of it; every command reads --data.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("terms") {
		cfg.Terms = terms
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if flags.Changed("width") {
		cfg.Plot.Width = plotWidth
	}
	if flags.Changed("svg") {
		cfg.Plot.SVG = svgFile
	}
	if flags.Changed("check") {
		cfg.Check.MaxIndex = checkMax
	}
	if flags.Changed("nodes") {
		cfg.Check.Nodes = checkNodes
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func prove(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	proofs, err := fourier.VerifyOrthogonality()
	if err != nil {
		return err
	}
	fmt.Print(viz.FormatProofs(proofs))

	if cfg.Check.MaxIndex > 0 {
		worst, err := fourier.CrossCheck(proofs, cfg.Check.MaxIndex, cfg.Check.Nodes)
		if err != nil {
			return err
		}
		fmt.Printf("\nnumeric cross-check i, j ≤ %d (%d nodes): max |error| = %.3e\n", cfg.Check.MaxIndex, cfg.Check.Nodes, worst)
	}
	return fourier.CheckProofs(proofs)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := fourier.Run(context.Background(), cfg.Pipeline())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Print(viz.FormatProofs(res.Proofs))
	fmt.Println()
	table, err := viz.FormatCoefficients(res.Coefficients)
	if err != nil {
		return err
	}
	fmt.Print(table)
	fmt.Println()

	printPlots(res.Target, res.Series, cfg.Plot)

	fmt.Printf("\ncompleted in %v\n", elapsed)
	fmt.Println("metrics:")
	fmt.Print(viz.FormatMetrics(res.Metrics))

	if cfg.Plot.SVG != "" {
		chart := export.SeriesToSVG(res.Grid, []export.Line{
			{Label: "target", Y: res.Target},
			{Label: fmt.Sprintf("series (%s, N=%d)", res.Config.Mode, res.Config.Terms), Y: res.Series},
		}, 800, 400)
		if err := os.WriteFile(cfg.Plot.SVG, []byte(chart), 0644); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", cfg.Plot.SVG)
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return err
	}
	log.Info().Str("run_id", runID).Str("dir", dataDir).Msg("run saved")
	fmt.Printf("run id: %s\n", runID)

	return nil
}

func printPlots(target, series []float64, pc config.PlotConfig) {
	if len(series) == 0 {
		fmt.Println("no samples to plot")
		return
	}
	fmt.Println(viz.PlotSeries(target, viz.PlotOptions{Height: pc.Height, Width: pc.Width, Caption: "step function"}))
	fmt.Println()
	fmt.Println(viz.PlotSeries(series, viz.PlotOptions{Height: pc.Height, Width: pc.Width, Caption: "fourier series"}))
}

func printCoefficients(cmd *cobra.Command, args []string) error {
	c, err := fourier.ComputeCoefficients(terms)
	if err != nil {
		return err
	}
	table, err := viz.FormatCoefficients(c)
	if err != nil {
		return err
	}
	fmt.Print(table)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPOINTS\tTERMS\tMODE\tRMS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.Terms,
			run.Mode,
			run.Metrics["rms_error"],
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *storage.Samples, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, samples, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s, %d terms, %d points)\n\n", meta.ID, meta.Mode, meta.Terms, meta.Points)
	printPlots(samples.Target, samples.Series, config.PlotConfig{Height: plotHeight, Width: plotWidth})
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return export.ExportJSON(os.Stdout, meta, samples)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return export.ExportCSV(os.Stdout, samples)
}

func writeSVG(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	chart := export.SeriesToSVG(samples.X, []export.Line{
		{Label: "target", Y: samples.Target},
		{Label: fmt.Sprintf("series (%s, N=%d)", meta.Mode, meta.Terms), Y: samples.Series},
	}, 800, 400)
	if chart == "" {
		return fmt.Errorf("run %s has too few samples for a chart", meta.ID)
	}
	if err := os.WriteFile(args[1], []byte(chart), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	series := analysis.PeriodicSamples(samples.Series)
	if len(series) < 4 {
		return fmt.Errorf("need at least 5 samples, got %d", samples.Len())
	}

	ps := analysis.PowerSpectrum(series)
	show := ps
	if len(show) > 64 {
		show = show[:64]
	}
	fmt.Println(viz.PlotSeries(show, viz.PlotOptions{Height: 12, Width: 80, Caption: "power spectrum (series)"}))

	fmt.Println("\npeak bins:")
	for _, p := range analysis.PeakBins(ps, 3) {
		fmt.Printf("  k=%-4d |X|=%.4f\n", p.Bin, p.Magnitude)
	}

	est, err := analysis.EstimateCoefficients(analysis.PeriodicSamples(samples.Target), meta.Terms)
	if err != nil {
		log.Warn().Err(err).Msg("coefficient estimate skipped")
	} else {
		a := make([]float64, len(meta.A))
		b := make([]float64, len(meta.B))
		for k := range meta.A {
			a[k] = meta.A[k].Value
			b[k] = meta.B[k].Value
		}
		devs := analysis.Compare(est, a, b)
		fmt.Println("\ndft estimate vs exact:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "K\tEXACT A\tDFT A\tEXACT B\tDFT B")
		for _, d := range devs {
			fmt.Fprintf(w, "%d\t%s\t%.6f\t%s\t%.6f\n", d.K, meta.A[d.K].Exact, est.A[d.K], meta.B[d.K].Exact, est.B[d.K])
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("max deviation: %.3e\n", analysis.MaxDeviation(devs))
	}

	fmt.Println("\nmetrics:")
	fmt.Print(viz.FormatMetrics(meta.Metrics))
	return nil
}

func sweepTerms(cmd *cobra.Command, args []string) error {
	if maxTerms < 1 {
		return fmt.Errorf("max-terms must be positive, got %d", maxTerms)
	}
	terms := make([]int, maxTerms)
	for i := range terms {
		terms[i] = i + 1
	}
	modes := []fourier.Mode{fourier.ModeNotebook, fourier.ModeCanonical}

	gs := optim.NewGridSearch(points, terms, modes)
	if workers > 0 {
		gs.WithWorkers(workers)
	}
	start := time.Now()
	results, err := gs.Run(context.Background())
	if err != nil {
		return err
	}
	log.Debug().Int("cells", len(results)).Dur("elapsed", time.Since(start)).Msg("sweep finished")

	for _, m := range modes {
		curve := optim.Curve(results, m, "rms_error")
		fmt.Println(viz.PlotSeries(curve, viz.PlotOptions{Height: 8, Width: 60, Caption: fmt.Sprintf("rms error vs terms (%s)", m)}))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tBEST TERMS\tRMS\tMAX ABS")
	for _, m := range modes {
		var cells []optim.Point
		for _, p := range results {
			if p.Mode == m {
				cells = append(cells, p)
			}
		}
		best, ok := optim.Best(cells, "rms_error")
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.6f\t%.6f\n", m, best.Terms, best.Metrics["rms_error"], best.Metrics["max_abs_error"])
	}
	return w.Flush()
}
