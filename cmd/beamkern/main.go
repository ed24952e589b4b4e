package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/beamkern/internal/backend"
	"github.com/san-kum/beamkern/internal/config"
	"github.com/san-kum/beamkern/internal/context"
	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/faddeeva"
	"github.com/san-kum/beamkern/internal/fieldmap"
	"github.com/san-kum/beamkern/internal/storage"
	"github.com/san-kum/beamkern/internal/tui"
)

var (
	dataDir     string
	backendName string
	workers     int
	groupSize   int
	points      int
	reMin       float64
	reMax       float64
	imPart      float64
	sigmaX      float64
	sigmaY      float64
	minSigDiff  float64
	configFile  string
	preset      string
	live        bool
	save        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beamkern",
		Short: "beam-beam kernel evaluation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".beamkern", "data directory")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "auto", "execution backend (auto, serial, threads, workgroup)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "worker count for the threads backend (0 = all cpus)")
	rootCmd.PersistentFlags().IntVar(&groupSize, "group-size", config.DefaultGroupSize, "group size for the workgroup backend")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list execution backends",
		RunE:  listBackends,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [re] [im]",
		Short: "evaluate w(z) at a single point",
		Args:  cobra.ExactArgs(2),
		RunE:  evalPoint,
	}

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "evaluate w(z) along a line in the complex plane",
		RunE:  runGrid,
	}
	gridCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of grid points")
	gridCmd.Flags().Float64Var(&reMin, "re-min", config.DefaultReMin, "start of the real interval")
	gridCmd.Flags().Float64Var(&reMax, "re-max", config.DefaultReMax, "end of the real interval")
	gridCmd.Flags().Float64Var(&imPart, "im", config.DefaultIm, "imaginary part of the grid")
	gridCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	gridCmd.Flags().BoolVar(&live, "live", false, "show live progress while evaluating")
	gridCmd.Flags().BoolVar(&save, "save", false, "store the result")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "evaluate the bi-Gaussian field along the horizontal axis",
		RunE:  runField,
	}
	fieldCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of grid points")
	fieldCmd.Flags().Float64Var(&reMin, "x-min", -5e-3, "start of the horizontal interval (m)")
	fieldCmd.Flags().Float64Var(&reMax, "x-max", 5e-3, "end of the horizontal interval (m)")
	fieldCmd.Flags().Float64Var(&imPart, "y", 0.0, "vertical offset (m)")
	fieldCmd.Flags().Float64Var(&sigmaX, "sigma-x", config.DefaultSigmaX, "horizontal beam size (m)")
	fieldCmd.Flags().Float64Var(&sigmaY, "sigma-y", config.DefaultSigmaY, "vertical beam size (m)")
	fieldCmd.Flags().Float64Var(&minSigDiff, "min-sigma-diff", config.DefaultMinSigmaDiff, "round-beam threshold (m)")
	fieldCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	fieldCmd.Flags().BoolVar(&save, "save", false, "store the result")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time the batched evaluation on every backend",
		RunE:  benchBackends,
	}
	benchCmd.Flags().IntVar(&points, "points", 1_000_000, "number of grid points")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [kind]",
		Short: "list available presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for kind: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(backendsCmd, evalCmd, gridCmd, fieldCmd, benchCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and flags. Flags the user set
// explicitly win over both.
func resolveConfig(cmd *cobra.Command, kind string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if kind == "field" {
		cfg.Grid = config.FieldGridDefaults()
	}

	if preset != "" {
		p := config.GetPreset(kind, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kind))
		}
		// Copy so flag overrides never write back into the preset table.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("backend") {
		cfg.Backend = backendName
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("group-size") {
		cfg.GroupSize = groupSize
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	} else if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("points") {
		cfg.Grid.Points = points
	}
	if cmd.Flags().Changed("re-min") || cmd.Flags().Changed("x-min") {
		cfg.Grid.ReMin = reMin
	}
	if cmd.Flags().Changed("re-max") || cmd.Flags().Changed("x-max") {
		cfg.Grid.ReMax = reMax
	}
	if cmd.Flags().Changed("im") || cmd.Flags().Changed("y") {
		cfg.Grid.Im = imPart
	}
	if cmd.Flags().Changed("sigma-x") {
		cfg.Beam.SigmaX = sigmaX
	}
	if cmd.Flags().Changed("sigma-y") {
		cfg.Beam.SigmaY = sigmaY
	}
	if cmd.Flags().Changed("min-sigma-diff") {
		cfg.Beam.MinSigmaDiff = minSigDiff
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func listBackends(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAVAILABLE\tNOTES")

	for _, b := range backend.All() {
		notes := ""
		switch bb := b.(type) {
		case *backend.Threads:
			notes = fmt.Sprintf("%d workers", bb.Workers())
		case *backend.Workgroup:
			notes = fmt.Sprintf("group size %d", bb.GroupSize())
		}
		fmt.Fprintf(w, "%s\t%v\t%s\n", b.Name(), b.Available(), notes)
	}

	return w.Flush()
}

func evalPoint(cmd *cobra.Command, args []string) error {
	re, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid real part: %s", args[0])
	}
	im, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid imaginary part: %s", args[1])
	}

	wRe, wIm := faddeeva.Cerrf(re, im)
	fmt.Printf("w(%g%+gi) = %.17g %+.17gi\n", re, im, wRe, wIm)
	return nil
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "grid")
	if err != nil {
		return err
	}

	b, err := cfg.NewBackend()
	if err != nil {
		return err
	}
	ctx := context.New(b)
	defer ctx.Close()

	n := cfg.Grid.Points
	re := linspace(cfg.Grid.ReMin, cfg.Grid.ReMax, n)
	im := make([]float64, n)
	for i := range im {
		im[i] = cfg.Grid.Im
	}

	reView, err := ctx.ToDevice(re)
	if err != nil {
		return err
	}
	imView, err := ctx.ToDevice(im)
	if err != nil {
		return err
	}

	start := time.Now()

	var wzRe, wzIm device.ArrayView
	if live {
		wzRe, wzIm, err = runGridLive(ctx, reView, imView, n)
	} else {
		wzRe, wzIm, err = faddeeva.EvaluateBatch(ctx, reView, imView)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	wzReHost, err := device.CopyOutFloat64(wzRe)
	if err != nil {
		return err
	}
	wzImHost, err := device.CopyOutFloat64(wzIm)
	if err != nil {
		return err
	}

	fmt.Printf("evaluated %d points on %s in %v\n\n", n, b.Name(), elapsed)

	graph := asciigraph.Plot(wzReHost,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("Re w(x%+gi)", cfg.Grid.Im)),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(wzImHost,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("Im w(x%+gi)", cfg.Grid.Im)),
	)
	fmt.Println(graph)

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save("grid", b.Name(), elapsed,
			map[string]float64{"im": cfg.Grid.Im},
			&storage.Result{
				Abscissa: re,
				Columns:  map[string][]float64{"wz_re": wzReHost, "wz_im": wzImHost},
				Order:    []string{"wz_re", "wz_im"},
			})
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

// runGridLive evaluates the grid in chunks, feeding a progress view between
// kernel invocations. The producer goroutine is joined before the output
// buffers are freed or handed back, and a view that exits before the grid is
// fully evaluated reports an error instead of a partial result.
func runGridLive(ctx *context.Context, reView, imView device.ArrayView, n int) (device.ArrayView, device.ArrayView, error) {
	var zero device.ArrayView
	if err := ctx.AddKernels(faddeeva.Sources(), faddeeva.Descs()); err != nil {
		return zero, zero, err
	}

	b := ctx.Backend()
	wzReBuf, err := b.Alloc(n, device.Float64)
	if err != nil {
		return zero, zero, err
	}
	wzImBuf, err := b.Alloc(n, device.Float64)
	if err != nil {
		b.Free(wzReBuf)
		return zero, zero, err
	}
	wzRe := wzReBuf.View()
	wzIm := wzImBuf.View()

	ch := make(chan tui.Progress)
	quit := make(chan struct{})
	joined := make(chan struct{})
	go func() {
		defer close(joined)
		evalGridChunks(ctx, reView, imView, wzRe, wzIm, n, ch, quit)
	}()

	err = tui.RunLive("grid", b.Name(), n, ch)
	close(quit)
	<-joined
	if err != nil {
		b.Free(wzReBuf)
		b.Free(wzImBuf)
		return zero, zero, err
	}
	return wzRe, wzIm, nil
}

// evalGridChunks runs eval_cerrf over [0, n) in fixed-size chunks, reporting
// each finished chunk on ch. It stops when quit closes and closes ch on
// return, so the caller can drain ch to observe termination.
func evalGridChunks(ctx *context.Context, reView, imView, wzRe, wzIm device.ArrayView, n int, ch chan<- tui.Progress, quit <-chan struct{}) {
	defer close(ch)

	const chunk = 64
	for lo := 0; lo < n; lo += chunk {
		select {
		case <-quit:
			return
		default:
		}

		hi := lo + chunk
		if hi > n {
			hi = n
		}
		views := [4]device.ArrayView{}
		var err error
		for i, v := range []device.ArrayView{reView, imView, wzRe, wzIm} {
			views[i], err = v.Slice(lo, hi, 1)
			if err != nil {
				break
			}
		}
		if err == nil {
			err = ctx.Run("eval_cerrf", map[string]any{
				"n":     int32(hi - lo),
				"re":    views[0],
				"im":    views[1],
				"wz_re": views[2],
				"wz_im": views[3],
			})
		}
		if err != nil {
			select {
			case ch <- tui.Progress{Done: lo, Total: n, Err: err}:
			case <-quit:
			}
			return
		}

		sample := make([]float64, hi-lo)
		for i := range sample {
			sample[i] = views[2].Float64(i)
		}
		select {
		case ch <- tui.Progress{Done: hi, Total: n, Sample: sample}:
		case <-quit:
			return
		}
	}
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "field")
	if err != nil {
		return err
	}

	b, err := cfg.NewBackend()
	if err != nil {
		return err
	}
	ctx := context.New(b)
	defer ctx.Close()

	n := cfg.Grid.Points
	xs := linspace(cfg.Grid.ReMin, cfg.Grid.ReMax, n)
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = cfg.Grid.Im
	}

	xView, err := ctx.ToDevice(xs)
	if err != nil {
		return err
	}
	yView, err := ctx.ToDevice(ys)
	if err != nil {
		return err
	}

	start := time.Now()
	exView, eyView, err := fieldmap.EvaluateBatch(ctx, xView, yView,
		cfg.Beam.SigmaX, cfg.Beam.SigmaY, cfg.Beam.MinSigmaDiff)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	exHost, err := device.CopyOutFloat64(exView)
	if err != nil {
		return err
	}
	eyHost, err := device.CopyOutFloat64(eyView)
	if err != nil {
		return err
	}

	fmt.Printf("evaluated %d points on %s in %v\n", n, b.Name(), elapsed)
	fmt.Printf("sigma_x=%g m  sigma_y=%g m  y=%g m\n\n",
		cfg.Beam.SigmaX, cfg.Beam.SigmaY, cfg.Grid.Im)

	graph := asciigraph.Plot(exHost,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("Ex along x"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(eyHost,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("Ey along x"),
	)
	fmt.Println(graph)

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save("field", b.Name(), elapsed,
			map[string]float64{
				"sigma_x": cfg.Beam.SigmaX,
				"sigma_y": cfg.Beam.SigmaY,
				"y":       cfg.Grid.Im,
			},
			&storage.Result{
				Abscissa: xs,
				Columns:  map[string][]float64{"ex": exHost, "ey": eyHost},
				Order:    []string{"ex", "ey"},
			})
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func benchBackends(cmd *cobra.Command, args []string) error {
	n := points
	re := linspace(-6.0, 6.0, n)
	im := make([]float64, n)
	for i := range im {
		im[i] = 1.0
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tPOINTS\tELAPSED\tRATE")

	for _, b := range backend.All() {
		if !b.Available() {
			continue
		}
		ctx := context.New(b)

		reView, err := ctx.ToDevice(re)
		if err != nil {
			ctx.Close()
			return err
		}
		imView, err := ctx.ToDevice(im)
		if err != nil {
			ctx.Close()
			return err
		}

		start := time.Now()
		_, _, err = faddeeva.EvaluateBatch(ctx, reView, imView)
		if err != nil {
			ctx.Close()
			return err
		}
		elapsed := time.Since(start)

		rate := float64(n) / elapsed.Seconds()
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f pt/s\n", b.Name(), n, elapsed, rate)
		ctx.Close()
	}

	return w.Flush()
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
	fmt.Fprintln(w, "ID\tKIND\tBACKEND\tTIME\tPOINTS\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%v\n",
			run.ID,
			run.Kind,
			run.Backend,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.Elapsed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}

	if len(result.Abscissa) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)
	fmt.Printf("samples: %d\n\n", len(result.Abscissa))

	for _, name := range result.Order {
		graph := asciigraph.Plot(result.Columns[name],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}
