// SPDX-License-Identifier: MIT
package phys

import "github.com/cockroachdb/apd/v3"

// Decimal literals; units noted per constant.
const (
	speedOfLightLit       = "299792458"                // m/s (exact)
	gravitationalLit      = "6.67430e-11"              // m³/(kg·s²)
	planckLit             = "6.62607015e-34"           // J·s (exact)
	planckReducedLit      = "1.0545718176461565e-34"   // J·s, h/2π
	elementaryChargeLit   = "1.602176634e-19"          // A·s (exact)
	vacuumPermeabilityLit = "1.25663706212e-6"         // V·s/(A·m)
	vacuumPermittivityLit = "8.8541878128e-12"         // A·s/(V·m)
	fineStructureLit      = "7.2973525693e-3"          // dimensionless
	atomicMassLit         = "1.66053906660e-27"        // kg
	electronMassLit       = "9.1093837015e-31"         // kg
	protonMassLit         = "1.67262192369e-27"        // kg
	neutronMassLit        = "1.6749274980437807e-27"   // kg
	boltzmannLit          = "1.380649e-23"             // J/K (exact)
	avogadroLit           = "6.02214076e23"            // 1/mol (exact)
	faradayLit            = "96485.33212"              // C/mol
	molarGasLit           = "8.31446261815324"         // J/(mol·K)
	molarVolumeLit        = "22.41396954e-3"           // m³/mol
	stefanBoltzmannLit    = "5.670374419e-8"           // W/(m²·K⁴)
)

// mustParse converts a literal at init time; the literals are fixed,
// so a failure is a programmer error.
func mustParse(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic("phys: bad constant literal " + s + ": " + err.Error())
	}

	return d
}

var table = map[string]*apd.Decimal{
	"c":   mustParse(speedOfLightLit),
	"g":   mustParse(gravitationalLit),
	"h":   mustParse(planckLit),
	"hb":  mustParse(planckReducedLit),
	"e":   mustParse(elementaryChargeLit),
	"mu0": mustParse(vacuumPermeabilityLit),
	"ep0": mustParse(vacuumPermittivityLit),
	"a":   mustParse(fineStructureLit),
	"mu":  mustParse(atomicMassLit),
	"me":  mustParse(electronMassLit),
	"mp":  mustParse(protonMassLit),
	"mn":  mustParse(neutronMassLit),
	"kb":  mustParse(boltzmannLit),
	"na":  mustParse(avogadroLit),
	"fc":  mustParse(faradayLit),
	"rc":  mustParse(molarGasLit),
	"vm":  mustParse(molarVolumeLit),
	"si":  mustParse(stefanBoltzmannLit),
}

// Lookup returns a copy of the constant registered under the short
// symbol used on the calculator keypad ("c", "kb", "na", …).
func Lookup(symbol string) (*apd.Decimal, bool) {
	v, ok := table[symbol]
	if !ok {
		return nil, false
	}

	return new(apd.Decimal).Set(v), true
}

// Symbols returns the registered short symbols, for enumeration by a
// front end.
func Symbols() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}

	return out
}

func get(symbol string) *apd.Decimal {
	v, _ := Lookup(symbol)

	return v
}

// SpeedOfLight returns c in m/s (exact).
func SpeedOfLight() *apd.Decimal { return get("c") }

// Gravitational returns Newton's constant G in m³/(kg·s²).
func Gravitational() *apd.Decimal { return get("g") }

// Planck returns h in J·s (exact).
func Planck() *apd.Decimal { return get("h") }

// PlanckReduced returns ħ = h/2π in J·s.
func PlanckReduced() *apd.Decimal { return get("hb") }

// ElementaryCharge returns e in A·s (exact).
func ElementaryCharge() *apd.Decimal { return get("e") }

// VacuumPermeability returns μ₀ in V·s/(A·m).
func VacuumPermeability() *apd.Decimal { return get("mu0") }

// VacuumPermittivity returns ε₀ in A·s/(V·m).
func VacuumPermittivity() *apd.Decimal { return get("ep0") }

// FineStructure returns the dimensionless fine-structure constant α.
func FineStructure() *apd.Decimal { return get("a") }

// AtomicMass returns the atomic mass constant in kg.
func AtomicMass() *apd.Decimal { return get("mu") }

// ElectronMass returns mₑ in kg.
func ElectronMass() *apd.Decimal { return get("me") }

// ProtonMass returns mₚ in kg.
func ProtonMass() *apd.Decimal { return get("mp") }

// NeutronMass returns mₙ in kg.
func NeutronMass() *apd.Decimal { return get("mn") }

// Boltzmann returns k_B in J/K (exact).
func Boltzmann() *apd.Decimal { return get("kb") }

// Avogadro returns N_A in 1/mol (exact).
func Avogadro() *apd.Decimal { return get("na") }

// Faraday returns F = N_A·e in C/mol.
func Faraday() *apd.Decimal { return get("fc") }

// MolarGas returns R in J/(mol·K).
func MolarGas() *apd.Decimal { return get("rc") }

// MolarVolume returns the molar volume of an ideal gas in m³/mol.
func MolarVolume() *apd.Decimal { return get("vm") }

// StefanBoltzmann returns σ in W/(m²·K⁴).
func StefanBoltzmann() *apd.Decimal { return get("si") }
