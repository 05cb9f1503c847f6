package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/arraygen"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	dataDir    string
	language   string
	logLevel   string
	// Input selection
	arrayLit string
	size     int
	seed     int64
	shape    string
	preset   string
	// Output
	format  string
	outPath string
	// Playback
	speed   time.Duration
	noClear bool
	// Frames
	stepIndex int
	svgWidth  int
	svgHeight int
	// Comparison and plots
	save    bool
	maxSize int
	svgPath string
	remove  bool
)

// main registers the sortviz commands and runs the interactive visualizer
// when no subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortviz [algorithm]",
		Short:        "step-by-step sorting algorithm visualizer",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for saved reports")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "description language (en, ru)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level")
	addInputFlags(rootCmd)
	rootCmd.Flags().DurationVar(&speed, "speed", 0, "delay between steps")

	tuiCmd := &cobra.Command{
		Use:   "tui [algorithm]",
		Short: "interactive terminal visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	addInputFlags(tuiCmd)
	tuiCmd.Flags().DurationVar(&speed, "speed", 0, "delay between steps")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print the step trace of an algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printTrace,
	}
	addInputFlags(traceCmd)
	traceCmd.Flags().StringVar(&format, "format", "table", "output format: table, json, yaml")
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "write json/yaml to a file instead of stdout")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play a trace in the terminal without the interactive UI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playTrace,
	}
	addInputFlags(playCmd)
	playCmd.Flags().DurationVar(&speed, "speed", 0, "delay between steps")
	playCmd.Flags().BoolVar(&noClear, "no-clear", false, "append frames instead of redrawing")

	frameCmd := &cobra.Command{
		Use:   "frame [algorithm]",
		Short: "render one step as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	addInputFlags(frameCmd)
	frameCmd.Flags().IntVar(&stepIndex, "step", -1, "step index, negative counts from the end")
	frameCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	frameCmd.Flags().IntVar(&svgHeight, "height", 360, "image height")
	frameCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every algorithm on the same array",
		Args:  cobra.NoArgs,
		RunE:  compareAlgorithms,
	}
	addInputFlags(compareCmd)
	compareCmd.Flags().BoolVar(&save, "save", false, "save the comparison as a report")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot step counts against array size",
		Args:  cobra.NoArgs,
		RunE:  plotSweep,
	}
	plotCmd.Flags().IntVar(&maxSize, "max-size", 30, "largest array size")
	plotCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	plotCmd.Flags().StringVar(&shape, "shape", "", "array shape")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the plot as SVG")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tALGORITHM\tSHAPE\tSIZE\tNOTE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", name, p.Algorithm, p.Shape, p.Size, p.Note)
			}
			return w.Flush()
		},
	}

	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "list saved comparison reports",
		Args:  cobra.NoArgs,
		RunE:  listReports,
	}

	reportCmd := &cobra.Command{
		Use:   "report [id]",
		Short: "show a saved comparison report",
		Args:  cobra.ExactArgs(1),
		RunE:  showReport,
	}
	reportCmd.Flags().StringVar(&format, "format", "table", "output format: table, json")
	reportCmd.Flags().BoolVar(&remove, "delete", false, "delete the report instead of showing it")

	rootCmd.AddCommand(tuiCmd, listCmd, traceCmd, playCmd, frameCmd, compareCmd, plotCmd, presetsCmd, reportsCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&arrayLit, "array", "", "comma separated input, e.g. 5,3,8")
	cmd.Flags().IntVar(&size, "size", 0, "generated array size (0 picks 5-10)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().StringVar(&shape, "shape", "", "generated array shape")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset arrangement")
}

// loadConfig layers the config file, SORTVIZ_* variables, the preset and
// finally explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("lang") {
		cfg.Language = language
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("shape") {
		cfg.Shape = shape
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newArrays(cfg *config.Config) (*arraygen.Generator, error) {
	sh, err := arraygen.ParseShape(cfg.Shape)
	if err != nil {
		return nil, err
	}
	return arraygen.New(cfg.Seed, sh, cfg.Size), nil
}

// resolveInput returns the --array literal when given, otherwise a generated
// array.
func resolveInput(cfg *config.Config) (trace.Array, error) {
	if arrayLit != "" {
		return arraygen.Parse(arrayLit)
	}
	arrays, err := newArrays(cfg)
	if err != nil {
		return nil, err
	}
	return arrays.Next(), nil
}

func algorithmArg(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Algorithm
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.ForTerminalUI(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	arrays, err := newArrays(cfg)
	if err != nil {
		return err
	}
	var input trace.Array
	if arrayLit != "" {
		if input, err = arraygen.Parse(arrayLit); err != nil {
			return err
		}
	}

	m, err := viz.NewModel(viz.Options{
		Registry:  algorithms.NewRegistry(),
		Arrays:    arrays,
		Algorithm: algorithmArg(cfg, args),
		Array:     input,
		Speed:     cfg.Speed,
		Language:  cfg.Language,
		Theme:     cfg.Theme,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Info("starting visualizer", zap.String("algorithm", m.Session().Algorithm()), zap.Int64("seed", cfg.Seed))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSPACE\tDESCRIPTION")
	for _, d := range algorithms.NewRegistry().Descriptors() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.TimeComplexity, d.SpaceComplexity, d.Description)
	}
	return w.Flush()
}

func printTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	d, err := algorithms.NewRegistry().Lookup(algorithmArg(cfg, args))
	if err != nil {
		return err
	}
	input, err := resolveInput(cfg)
	if err != nil {
		return err
	}
	printer, err := trace.NewPrinter(cfg.Language)
	if err != nil {
		return err
	}

	steps := d.Generate(input)
	logger.Debug("trace generated", zap.String("algorithm", d.ID), zap.Int("size", len(input)), zap.Int("steps", len(steps)))
	data := export.NewTraceData(d, input, steps).Localize(printer)

	if outPath != "" {
		if err := export.ExportFile(outPath, data); err != nil {
			return err
		}
		fmt.Printf("wrote %d steps to %s\n", len(steps), outPath)
		return nil
	}
	if format != "table" {
		return export.Write(os.Stdout, format, data)
	}

	fmt.Printf("%s  input=[%s]  steps=%d\n\n", d.Name, arraygen.Format(input), len(steps))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tARRAY\tCOMPARING\tSWAPPED\tDESCRIPTION")
	for i, s := range data.Trace {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i,
			s.Kind,
			arraygen.Format(s.Array),
			formatIndexes(s.Comparing),
			formatIndexes(s.Swapped),
			s.Description,
		)
	}
	return w.Flush()
}

func formatIndexes(idx []int) string {
	if len(idx) == 0 {
		return "-"
	}
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

func playTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	d, err := algorithms.NewRegistry().Lookup(algorithmArg(cfg, args))
	if err != nil {
		return err
	}
	input, err := resolveInput(cfg)
	if err != nil {
		return err
	}
	printer, err := trace.NewPrinter(cfg.Language)
	if err != nil {
		return err
	}

	sched := playback.NewClockScheduler()
	player := playback.New(sched, cfg.Speed)
	player.Load(d.Generate(input))
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("playing", zap.String("algorithm", d.ID), zap.Int("steps", player.Len()), zap.Duration("speed", cfg.Speed))
	r := tui.NewLiveRenderer(os.Stdout, d.Name, printer, !noClear)
	if err := r.Play(ctx, player, sched.C()); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	d, err := algorithms.NewRegistry().Lookup(algorithmArg(cfg, args))
	if err != nil {
		return err
	}
	input, err := resolveInput(cfg)
	if err != nil {
		return err
	}
	printer, err := trace.NewPrinter(cfg.Language)
	if err != nil {
		return err
	}

	player := playback.New(nil, cfg.Speed)
	player.Load(d.Generate(input))
	idx := stepIndex
	if idx < 0 {
		idx += player.Len()
	}
	player.Seek(idx)

	step := player.Current()
	caption := fmt.Sprintf("%s %d/%d: %s", d.Name, player.Index()+1, player.Len(), trace.Describe(printer, step))
	svg := export.StepToSVG(step, caption, svgWidth, svgHeight, export.DefaultPalette)

	if outPath == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outPath, []byte(svg), 0644)
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	input, err := resolveInput(cfg)
	if err != nil {
		return err
	}

	results, err := algorithms.NewRegistry().Compare(cmd.Context(), input)
	if err != nil {
		return err
	}

	fmt.Printf("input: [%s]\n\n", arraygen.Format(input))
	fmt.Printf("%-16s  %8s  %12s  %8s  %8s\n", "algorithm", "steps", "comparisons", "swaps", "writes")
	fmt.Println(strings.Repeat("-", 60))
	for _, r := range results {
		fmt.Printf("%-16s  %8d  %12d  %8d  %8d\n", r.Name, r.Steps, r.Comparisons, r.Swaps, r.Writes)
	}

	if !save {
		return nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(input, cfg.Seed, cfg.Shape, results)
	if err != nil {
		return err
	}
	logger.Info("report saved", zap.String("id", id), zap.String("dir", cfg.DataDir))
	fmt.Printf("\nsaved report %s\n", id)
	return nil
}

func plotSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if maxSize < 2 {
		return fmt.Errorf("max-size must be at least 2, got %d", maxSize)
	}
	arrays, err := newArrays(cfg)
	if err != nil {
		return err
	}
	sh, _ := arraygen.ParseShape(cfg.Shape)

	sizes := make([]int, 0, maxSize)
	for n := 1; n <= maxSize; n++ {
		sizes = append(sizes, n)
	}

	reg := algorithms.NewRegistry()
	counts, err := reg.Sweep(cmd.Context(), sizes, func(n int) trace.Array {
		return arrays.Shaped(sh, n)
	})
	if err != nil {
		return err
	}

	ids := reg.IDs()
	series := make([][]float64, len(ids))
	for i, id := range ids {
		series[i] = counts[id]
	}
	colors := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Green, asciigraph.Blue}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("steps vs size (1-%d, %s)", maxSize, sh)),
	)
	fmt.Println(graph)
	fmt.Println()
	names := []string{"red", "green", "blue"}
	for i, id := range ids {
		fmt.Printf("  %-6s %s\n", names[i%len(names)], id)
	}

	if svgPath != "" {
		svg := export.SeriesToSVG(counts, ids, 640, 360, []string{"#e74c3c", "#2ecc71", "#3498db"})
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
	}
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	reports, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("no reports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSAVED\tSIZE\tSHAPE\tSTEPS")
	for _, r := range reports {
		total := 0
		for _, res := range r.Results {
			total += res.Steps
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.ID,
			humanize.Time(r.Timestamp),
			len(r.Input),
			r.Shape,
			humanize.Comma(int64(total)),
		)
	}
	return w.Flush()
}

func showReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if remove {
		if err := st.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted report %s\n", args[0])
		return nil
	}

	report, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if format == "json" {
		return export.WriteReportJSON(os.Stdout, report)
	}

	results, err := st.LoadResults(report.ID)
	if err != nil {
		return err
	}

	fmt.Printf("report: %s\n", report.ID)
	fmt.Printf("saved: %s (%s)\n", report.Timestamp.Format("2006-01-02 15:04:05"), humanize.Time(report.Timestamp))
	fmt.Printf("input: [%s]  seed=%d  shape=%s\n\n", arraygen.Format(report.Input), report.Seed, report.Shape)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", r.Name, r.Steps, r.Comparisons, r.Swaps, r.Writes)
	}
	return w.Flush()
}
