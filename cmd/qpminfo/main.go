// Command qpminfo prints phase-matching properties of the built-in crystal
// models, runs channel-pair scans and builds filter combs.
//
// Usage:
//
//	qpminfo [flags] [model-name ...]
//
// Without a mode flag it prints refractive indices of the named models (all
// models if none are given) at the -wl wavelengths. With -pair it adds the
// pump wavelength and first-order poling period of that signal/idler pair.
//
// Examples:
//
//	qpminfo -list
//	qpminfo -wl 1530,1550,1570 -temp 40 ppln-e ppktp-z
//	qpminfo -pair 1540,1560 ppln-e
//	qpminfo -scan scan.yaml -parquet pairs.parquet
//	qpminfo -profile gaussian -length 20 -bins 24
//	qpminfo -comb filter.csv.gz -xcol wavelength -ycol transmission -window 0.1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"

	"github.com/cwbudde/algo-qpm/nlo/comb"
	"github.com/cwbudde/algo-qpm/nlo/core"
	"github.com/cwbudde/algo-qpm/nlo/dispersion"
	"github.com/cwbudde/algo-qpm/nlo/grid"
	"github.com/cwbudde/algo-qpm/nlo/phasematch"
	"github.com/cwbudde/algo-qpm/nlo/poling"
	"github.com/cwbudde/algo-qpm/nlo/scan"
	"github.com/cwbudde/algo-qpm/nlo/spectrum"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	list      bool
	verbose   bool
	wl        string
	pair      string
	temp      float64
	scanPath  string
	parquet   string
	combPath  string
	xcol      string
	ycol      string
	window    float64
	anchor    int
	axisStart float64
	axisStop  float64
	axisCount int
	profile   string
	alpha     float64
	lengthMM  float64
	segments  int
	bins      int
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := flag.NewFlagSet("qpminfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.list, "list", false, "list available crystal models")
	fs.BoolVar(&o.verbose, "v", false, "log debug output to the console")
	fs.StringVar(&o.wl, "wl", "1550", "comma-separated wavelengths in nm")
	fs.StringVar(&o.pair, "pair", "", "signal,idler wavelengths in nm; prints pump and poling period")
	fs.Float64Var(&o.temp, "temp", dispersion.PPLNRefTemperature, "crystal temperature in degC")
	fs.StringVar(&o.scanPath, "scan", "", "run a channel-pair scan described by this YAML file")
	fs.StringVar(&o.parquet, "parquet", "", "with -scan, also write the kept pairs to this Parquet file")
	fs.StringVar(&o.combPath, "comb", "", "build a filter comb on the ITU grid from this CSV (optionally .gz) filter shape")
	fs.StringVar(&o.xcol, "xcol", "", "with -comb, wavelength column in nm (default: first column)")
	fs.StringVar(&o.ycol, "ycol", "", "with -comb, value column (default: second column)")
	fs.Float64Var(&o.window, "window", comb.DefaultWindow, "with -comb, tile half-width in nm")
	fs.IntVar(&o.anchor, "anchor", -1, fmt.Sprintf("with -comb, recenter the filter on this sample index (historically %d); -1 keeps it as is", comb.DefaultAnchor))
	fs.Float64Var(&o.axisStart, "axis-start", 1528, "with -comb, first output wavelength in nm")
	fs.Float64Var(&o.axisStop, "axis-stop", 1569, "with -comb, last output wavelength in nm")
	fs.IntVar(&o.axisCount, "axis-points", 4101, "with -comb, number of output wavelengths")
	fs.StringVar(&o.profile, "profile", "", "print the mismatch response of an apodized grating (uniform, gaussian, tukey, hann)")
	fs.Float64Var(&o.alpha, "alpha", math.NaN(), "with -profile, shape parameter for gaussian and tukey")
	fs.Float64Var(&o.lengthMM, "length", 10, "with -profile, grating length in mm")
	fs.IntVar(&o.segments, "segments", 512, "with -profile, number of envelope samples")
	fs.IntVar(&o.bins, "bins", 16, "with -profile, number of mismatch bins to print")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: qpminfo [flags] [model-name ...]\n\n")
		_, _ = fmt.Fprintf(stderr, "Prints phase-matching properties of nonlinear crystal models.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  qpminfo -wl 1530,1550 ppln-e\n")
		_, _ = fmt.Fprintf(stderr, "  qpminfo -pair 1540,1560 ppktp-z\n")
		_, _ = fmt.Fprintf(stderr, "  qpminfo -scan scan.yaml -parquet pairs.parquet\n")
		_, _ = fmt.Fprintf(stderr, "  qpminfo -comb filter.csv -window 0.1\n")
		_, _ = fmt.Fprintf(stderr, "  qpminfo -profile tukey -alpha 0.3\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var logger l.Wrapper = l.NewNopLoggerWrapper()
	if o.verbose {
		logger = l.NewConsoleLoggerWrapper()
	}
	coreOpts := []core.Option{core.WithLogger(logger)}

	switch {
	case o.list:
		for _, n := range dispersion.Names() {
			_, _ = fmt.Fprintln(stdout, n)
		}
		return nil
	case o.scanPath != "":
		return runScan(stdout, o, coreOpts)
	case o.combPath != "":
		return runComb(stdout, o, logger)
	case o.profile != "":
		return runProfile(stdout, o)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = dispersion.Names()
	}
	models := make([]dispersion.Model, 0, len(names))
	for _, name := range names {
		m, err := dispersion.Lookup(name, coreOpts...)
		if err != nil {
			return err
		}
		models = append(models, m)
	}

	if o.pair != "" {
		pair, err := parseNanometers(o.pair)
		if err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("-pair needs exactly two wavelengths, got %d", len(pair))
		}
		return printPair(stdout, models, pair[0], pair[1], o.temp)
	}

	wls, err := parseNanometers(o.wl)
	if err != nil {
		return err
	}
	return printIndices(stdout, models, wls, o.temp)
}

// parseNanometers parses "1530, 1550" into meters.
func parseNanometers(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return nil, fmt.Errorf("wavelength %q: %w", f, err)
		}
		out = append(out, core.NanometersToMeters(v))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no wavelengths in %q", s)
	}
	return out, nil
}

func printIndices(w io.Writer, models []dispersion.Model, wls []float64, temp float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Model\tCrystal\tAxis\tWavelength [nm]\tTemp [C]\tIndex\n")
	_, _ = fmt.Fprintf(tw, "-----\t-------\t----\t---------------\t--------\t-----\n")
	for _, m := range models {
		for i, n := range dispersion.Indices(m.Index, wls, temp) {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%.2f\t%.6f\n",
				m.Name, m.Crystal, m.Axis, core.MetersToNanometers(wls[i]), temp, n)
		}
	}
	return tw.Flush()
}

func printPair(w io.Writer, models []dispersion.Model, wl1, wl2, temp float64) error {
	pump := phasematch.PumpWavelength(wl1, wl2)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Model\tSignal [nm]\tIdler [nm]\tPump [nm]\tMismatch [rad/m]\tPeriod [um]\n")
	_, _ = fmt.Fprintf(tw, "-----\t-----------\t----------\t---------\t----------------\t-----------\n")
	for _, m := range models {
		dk, err := phasematch.Mismatch(wl1, wl2, m.Index, temp)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		period, err := phasematch.PolingPeriod(wl1, wl2, m.Index, temp)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.1f\t%.4f\n",
			m.Name,
			core.MetersToNanometers(wl1),
			core.MetersToNanometers(wl2),
			core.MetersToNanometers(pump),
			dk,
			core.MetersToMicrometers(period),
		)
	}
	return tw.Flush()
}

func runScan(w io.Writer, o options, coreOpts []core.Option) error {
	f, err := os.Open(o.scanPath)
	if err != nil {
		return err
	}
	cfg, err := scan.LoadConfig(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	res, err := scan.Run(cfg, coreOpts...)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "model %s, period %.4f um, %d channels, %d pairs, %d kept, max efficiency %.4f\n",
		res.Model.Name, core.MetersToMicrometers(res.PolingPeriodM), res.Channels, res.Pairs, len(res.Rows), res.MaxEfficiency)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Signal [nm]\tIdler [nm]\tPump [nm]\tDelta k [rad/m]\tEfficiency\n")
	_, _ = fmt.Fprintf(tw, "-----------\t----------\t---------\t---------------\t----------\n")
	for _, r := range res.Rows {
		_, _ = fmt.Fprintf(tw, "%.3f\t%.3f\t%.3f\t%.2f\t%.4f\n",
			core.MetersToNanometers(r.SignalM),
			core.MetersToNanometers(r.IdlerM),
			core.MetersToNanometers(r.PumpM),
			r.DeltaK,
			r.Efficiency,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if o.parquet == "" {
		return nil
	}
	out, err := os.Create(o.parquet)
	if err != nil {
		return err
	}
	if err := scan.WriteParquet(out, res.Rows); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func runComb(w io.Writer, o options, logger l.Wrapper) error {
	filter, err := spectrum.ReadFile(o.combPath, o.xcol, o.ycol)
	if err != nil {
		return err
	}

	opts := []comb.Option{comb.WithWindow(o.window), comb.WithLogger(logger)}
	if o.anchor >= 0 {
		opts = append(opts, comb.WithAnchor(o.anchor))
	}
	c, err := comb.New(filter, opts...)
	if err != nil {
		return err
	}

	axis, err := grid.Linspace(o.axisStart, o.axisStop, o.axisCount)
	if err != nil {
		return err
	}
	// ascending frequency, so on overlap the shorter wavelength wins
	freqs, err := grid.Frequencies(grid.ITUStartHz, grid.ITUStopHz, grid.ITUSpacingHz)
	if err != nil {
		return err
	}
	centers := make([]float64, len(freqs))
	for i, f := range freqs {
		centers[i] = core.MetersToNanometers(core.FrequencyToWavelength(f))
	}

	out, err := c.Build(axis, centers)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Wavelength [nm]\tValue\n")
	_, _ = fmt.Fprintf(tw, "---------------\t-----\n")
	for i, v := range out {
		_, _ = fmt.Fprintf(tw, "%.4f\t%.6g\n", axis[i], v)
	}
	return tw.Flush()
}

func runProfile(w io.Writer, o options) error {
	typ, err := poling.Parse(o.profile)
	if err != nil {
		return err
	}
	if o.segments <= 0 {
		return fmt.Errorf("-segments must be > 0: %d", o.segments)
	}

	var opts []poling.Option
	if !math.IsNaN(o.alpha) {
		opts = append(opts, poling.WithAlpha(o.alpha))
	}
	profile := poling.Generate(typ, o.segments, opts...)

	length := o.lengthMM * 1e-3
	res, err := phasematch.ProfileResponse(profile, length/float64(o.segments), 0)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Delta k [rad/m]\tDelta k L/2\tEfficiency\tUniform\n")
	_, _ = fmt.Fprintf(tw, "---------------\t-----------\t----------\t-------\n")
	for i := range min(o.bins, len(res.DeltaK)) {
		dk := res.DeltaK[i]
		_, _ = fmt.Fprintf(tw, "%.1f\t%.3f\t%.6f\t%.6f\n",
			dk, dk*length/2, res.Efficiency[i], phasematch.Efficiency(dk, length))
	}
	return tw.Flush()
}
