package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/stats"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	dataDir      string
	configFile   string
	valuesArg    string
	count        int
	minValue     int
	maxValue     int
	seed         int64
	preset       string
	stepIdx      int
	showPrev     bool
	treeView     bool
	outFile      string
	configValues []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "merge sort trace recorder and step player",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "record a trace and save it",
		RunE:  runRecord,
	}
	runCmd.Flags().StringVar(&valuesArg, "values", "", "comma-separated input values")
	runCmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of random values")
	runCmd.Flags().IntVar(&minValue, "min", config.DefaultMinValue, "random value lower bound")
	runCmd.Flags().IntVar(&maxValue, "max", config.DefaultMaxValue, "random value upper bound")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset input")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "render one step of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showStep,
	}
	showCmd.Flags().IntVar(&stepIdx, "step", 0, "step index")
	showCmd.Flags().BoolVar(&showPrev, "previous", false, "also render the preceding step")
	showCmd.Flags().BoolVar(&treeView, "tree", false, "node view instead of bars")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot disorder over the run's steps",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run's full trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one step as an SVG bar chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIdx, "step", 0, "step index")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "step.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVALUES\tSPEED\tVIEW")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%v\t%.1fs\t%s\n", name, p.Values, p.Speed, p.View)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeRunConfig folds a --config file into the run flags. CLI flags
// override config values.
func mergeRunConfig(cmd *cobra.Command) error {
	if configFile == "" {
		return nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cmd.Flags().Changed("count") {
		count = cfg.Count
	}
	if !cmd.Flags().Changed("min") {
		minValue = cfg.MinValue
	}
	if !cmd.Flags().Changed("max") {
		maxValue = cfg.MaxValue
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	if len(cfg.Values) > 0 && !cmd.Flags().Changed("values") {
		configValues = cfg.Values
	}
	return nil
}

func resolveInput() ([]float64, string, error) {
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return p.Values, preset, nil
	}

	if valuesArg != "" {
		values, err := seq.Parse(valuesArg)
		if err != nil {
			return nil, "", err
		}
		if err := seq.CheckLen(values); err != nil {
			return nil, "", err
		}
		return values, "manual", nil
	}

	if len(configValues) > 0 {
		if err := seq.CheckLen(configValues); err != nil {
			return nil, "", err
		}
		return configValues, "config", nil
	}

	values, err := seq.Random(count, minValue, maxValue, seed)
	if err != nil {
		return nil, "", err
	}
	if err := seq.CheckLen(values); err != nil {
		return nil, "", err
	}
	return values, "random", nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	if err := mergeRunConfig(cmd); err != nil {
		return err
	}

	values, source, err := resolveInput()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("recording %v...\n", values)
	start := time.Now()

	tr := trace.Record(values)

	runID, err := st.Save(source, seed, tr)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", tr.Len())
	fmt.Printf("sorted: %v\n", tr.Final())

	s := stats.Summarize(values)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nCOUNT\tMIN\tMAX\tSUM\tAVG")
	fmt.Fprintf(w, "%d\t%g\t%g\t%g\t%.2f\n", s.Count, s.Min, s.Max, s.Sum, s.Average)
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
	fmt.Fprintln(w, "ID\tTIME\tSOURCE\tCOUNT\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Source,
			run.Count,
			run.Steps,
		)
	}

	return w.Flush()
}

func showStep(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if tr.Len() == 0 {
		fmt.Println("run has no steps: the input was already trivially sorted")
		return nil
	}
	if stepIdx < 0 || stepIdx >= tr.Len() {
		return fmt.Errorf("step %d out of range [0,%d]", stepIdx, tr.Len()-1)
	}

	render := func(s trace.Step) string {
		if treeView {
			return viz.RenderTree(s)
		}
		return viz.RenderBars(s, 10)
	}

	step := tr.Step(stepIdx)
	fmt.Printf("step %d/%d: %s\n\n", stepIdx+1, tr.Len(), step.Description)
	fmt.Println(render(step))

	if showPrev && stepIdx > 0 {
		prev := tr.Step(stepIdx - 1)
		fmt.Printf("previous: %s\n\n", prev.Description)
		fmt.Println(render(prev))
	}

	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if tr.Len() == 0 {
		return fmt.Errorf("no steps to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("input: %v\n\n", meta.Input)

	data := make([]float64, tr.Len())
	for i, s := range tr.Steps {
		data[i] = float64(stats.Inversions(s.Snapshot))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("inversions remaining vs step"),
	)
	fmt.Println(graph)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, tr)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if stepIdx < 0 || stepIdx >= tr.Len() {
		return fmt.Errorf("step %d out of range [0,%d]", stepIdx, tr.Len()-1)
	}

	if err := export.StepToSVGFile(outFile, tr.Step(stepIdx), 640, 400); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outFile)
	return nil
}
