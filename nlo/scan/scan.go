package scan

import (
	"fmt"
	"strconv"

	"github.com/sgostarter/i/l"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-qpm/nlo/core"
	"github.com/cwbudde/algo-qpm/nlo/dispersion"
	"github.com/cwbudde/algo-qpm/nlo/grid"
	"github.com/cwbudde/algo-qpm/nlo/phasematch"
)

// Row is one phase-matched signal/idler pair. Wavelengths are in meters,
// DeltaK in rad/m.
type Row struct {
	SignalM    float64 `parquet:"signal_m"`
	IdlerM     float64 `parquet:"idler_m"`
	PumpM      float64 `parquet:"pump_m"`
	DeltaK     float64 `parquet:"delta_k"`
	Efficiency float64 `parquet:"efficiency"`
}

// Result collects the kept pairs and run metadata.
type Result struct {
	Model         dispersion.Model
	PolingPeriodM float64
	Channels      int
	Pairs         int
	MaxEfficiency float64
	Rows          []Row
}

// Run evaluates every pair (i, j), i <= j, of grid channels and keeps those
// at or above cfg.MinEfficiency.
func Run(cfg Config, opts ...core.Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	model, err := dispersion.Lookup(cfg.Crystal, opts...)
	if err != nil {
		return Result{}, err
	}

	wl, err := grid.Wavelengths(cfg.Grid.StartHz, cfg.Grid.StopHz, cfg.Grid.SpacingHz)
	if err != nil {
		return Result{}, err
	}

	period := cfg.PolingPeriodM
	if period == 0 {
		center := wl[len(wl)/2]
		period, err = phasematch.PolingPeriod(center, center, model.Index, cfg.TemperatureC)
		if err != nil {
			return Result{}, fmt.Errorf("scan: derive poling period: %w", err)
		}
	}

	effs := make([]float64, 0, len(wl)*(len(wl)+1)/2)
	var rows []Row
	for i := range wl {
		for j := i; j < len(wl); j++ {
			dk, err := phasematch.DeltaK(wl[i], wl[j], model.Index, cfg.TemperatureC, period)
			if err != nil {
				return Result{}, fmt.Errorf("scan: pair (%d, %d): %w", i, j, err)
			}
			eff := phasematch.Efficiency(dk, cfg.LengthM)
			effs = append(effs, eff)
			if eff < cfg.MinEfficiency {
				continue
			}
			rows = append(rows, Row{
				SignalM:    wl[i],
				IdlerM:     wl[j],
				PumpM:      phasematch.PumpWavelength(wl[i], wl[j]),
				DeltaK:     dk,
				Efficiency: eff,
			})
		}
	}

	res := Result{
		Model:         model,
		PolingPeriodM: period,
		Channels:      len(wl),
		Pairs:         len(effs),
		MaxEfficiency: floats.Max(effs),
		Rows:          rows,
	}

	core.ApplyOptions(opts...).Logger.WithFields(
		l.StringField(l.ClsKey, "scan"),
		l.StringField("model", model.Name),
		l.StringField("period", strconv.FormatFloat(period, 'g', 8, 64)),
		l.IntField("pairs", res.Pairs),
		l.IntField("kept", len(rows)),
	).Debug("scan finished")

	return res, nil
}
