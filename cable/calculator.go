package cable

import (
	"fmt"
	"math"
)

// cableSpec is one standard conductor size with its free-air ampacity and
// DC resistance per kilometre. Ordered smallest to largest so the first
// match is the smallest acceptable cable.
type cableSpec struct {
	Size       string  // mm²
	Ampacity   float64 // A
	Resistance float64 // Ω/km
}

var cableSizes = []cableSpec{
	{"1.5", 20, 12.1},
	{"2.5", 27, 7.41},
	{"4", 37, 4.61},
	{"6", 47, 3.08},
	{"10", 65, 1.83},
	{"16", 85, 1.15},
	{"25", 112, 0.727},
	{"35", 138, 0.524},
	{"50", 168, 0.387},
	{"70", 213, 0.268},
	{"95", 258, 0.193},
	{"120", 299, 0.153},
	{"150", 340, 0.124},
	{"185", 384, 0.099},
	{"240", 447, 0.0754},
	{"300", 510, 0.0601},
	{"400", 583, 0.0470},
}

// installationFactors derate ampacity by installation method.
var installationFactors = map[string]float64{
	"air":     1.0,
	"conduit": 0.8,
	"buried":  0.7,
	"tray":    0.9,
}

// temperatureFactors derate ampacity by ambient temperature (°C).
var temperatureFactors = map[int]float64{
	30: 1.0,
	35: 0.94,
	40: 0.87,
	45: 0.79,
	50: 0.71,
	55: 0.61,
	60: 0.50,
}

const ampacitySafetyFactor = 1.25

// Request holds the sizing inputs. Distance is the one-way run in metres.
type Request struct {
	Voltage            float64 `json:"voltage"`
	PowerKW            float64 `json:"power_kw"`
	PowerFactor        float64 `json:"power_factor"`
	Distance           float64 `json:"distance"`
	VoltageDropLimit   float64 `json:"voltage_drop_limit"`
	Phases             int     `json:"phases"`
	InstallationMethod string  `json:"installation_method"`
	AmbientTemp        int     `json:"ambient_temp"`
}

// Result is the recommendation plus the intermediate figures the dashboard
// displays.
type Result struct {
	RecommendedSize   string  `json:"recommended_cable_size"`
	Current           float64 `json:"current"`
	DeratedCurrent    float64 `json:"derated_current"`
	VoltageDropVolts  float64 `json:"voltage_drop_volts"`
	VoltageDropPct    float64 `json:"voltage_drop_percentage"`
	PowerLossWatts    float64 `json:"power_loss_watts"`
	IsSafe            bool    `json:"is_safe"`
	SafetyFactor      float64 `json:"safety_factor"`
	InstallFactor     float64 `json:"installation_factor"`
	TemperatureFactor float64 `json:"temperature_factor"`
}

// normalize fills defaults matching the dashboard form.
func (r *Request) normalize() {
	if r.VoltageDropLimit <= 0 {
		r.VoltageDropLimit = 5.0
	}
	if r.Phases != 1 {
		r.Phases = 3
	}
	if r.InstallationMethod == "" {
		r.InstallationMethod = "air"
	}
	if r.AmbientTemp == 0 {
		r.AmbientTemp = 30
	}
}

// Validate rejects inputs the formulas cannot handle.
func (r *Request) Validate() error {
	if r.Voltage <= 0 {
		return fmt.Errorf("voltage must be positive, got %.2f", r.Voltage)
	}
	if r.PowerKW <= 0 {
		return fmt.Errorf("power must be positive, got %.2f kW", r.PowerKW)
	}
	if r.PowerFactor <= 0 || r.PowerFactor > 1 {
		return fmt.Errorf("power factor must be in (0, 1], got %.2f", r.PowerFactor)
	}
	if r.Distance <= 0 {
		return fmt.Errorf("distance must be positive, got %.2f m", r.Distance)
	}
	return nil
}

// Current computes line current from power, voltage and power factor.
func Current(voltage, powerKW, powerFactor float64, phases int) float64 {
	if phases == 1 {
		return (powerKW * 1000) / (voltage * powerFactor)
	}
	return (powerKW * 1000) / (math.Sqrt(3) * voltage * powerFactor)
}

// VoltageDrop computes the drop in volts over the run. Resistance is Ω/km,
// distance metres.
func VoltageDrop(current, resistance, distance float64, phases int) float64 {
	if phases == 1 {
		return 2 * current * resistance * distance / 1000
	}
	return math.Sqrt(3) * current * resistance * distance / 1000
}

// PowerLoss computes resistive loss in watts over the run.
func PowerLoss(current, resistance, distance float64, phases int) float64 {
	if phases == 1 {
		return 2 * current * current * resistance * distance / 1000
	}
	return 3 * current * current * resistance * distance / 1000
}

// Size picks the smallest standard cable whose derated ampacity and voltage
// drop both pass, falling back to the largest size when nothing does.
func Size(req Request) (Result, error) {
	req.normalize()
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	current := Current(req.Voltage, req.PowerKW, req.PowerFactor, req.Phases)

	installFactor, ok := installationFactors[req.InstallationMethod]
	if !ok {
		installFactor = 1.0
	}
	tempFactor, ok := temperatureFactors[req.AmbientTemp]
	if !ok {
		tempFactor = 1.0
	}
	derated := current / (installFactor * tempFactor)

	chosen := cableSizes[len(cableSizes)-1]
	for _, spec := range cableSizes {
		if spec.Ampacity < derated*ampacitySafetyFactor {
			continue
		}
		dropPct := VoltageDrop(current, spec.Resistance, req.Distance, req.Phases) / req.Voltage * 100
		if dropPct <= req.VoltageDropLimit {
			chosen = spec
			break
		}
	}

	dropVolts := VoltageDrop(current, chosen.Resistance, req.Distance, req.Phases)
	dropPct := dropVolts / req.Voltage * 100

	return Result{
		RecommendedSize:   chosen.Size + " mm²",
		Current:           current,
		DeratedCurrent:    derated,
		VoltageDropVolts:  dropVolts,
		VoltageDropPct:    dropPct,
		PowerLossWatts:    PowerLoss(current, chosen.Resistance, req.Distance, req.Phases),
		IsSafe:            dropPct <= req.VoltageDropLimit && chosen.Ampacity >= derated*ampacitySafetyFactor,
		SafetyFactor:      chosen.Ampacity / derated,
		InstallFactor:     installFactor,
		TemperatureFactor: tempFactor,
	}, nil
}

// AvailableSizes lists the standard sizes in ascending order.
func AvailableSizes() []string {
	sizes := make([]string, len(cableSizes))
	for i, spec := range cableSizes {
		sizes[i] = spec.Size
	}
	return sizes
}
