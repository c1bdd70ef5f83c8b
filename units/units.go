package units

import "strings"

// Canonical unit codes
const (
	Kilogram   = "kg"
	Gram       = "g"
	Liter      = "l"
	Milliliter = "ml"
	Pieces     = "pcs"
	Buah       = "buah"
	Butir      = "butir"
	Lembar     = "lembar"
	Botol      = "botol"
)

// Common lists the units offered when building a recipe or stocking an item.
var Common = []string{Gram, Kilogram, Milliliter, Liter, Pieces, Buah, Butir, Lembar, Botol}

// synonyms maps long-form spellings onto their canonical code
var synonyms = map[string]string{
	"kilogram":   Kilogram,
	"gram":       Gram,
	"liter":      Liter,
	"litre":      Liter,
	"milliliter": Milliliter,
	"millilitre": Milliliter,
	"pieces":     Pieces,
	"piece":      Pieces,
}

// Factor is a single registered conversion: 1 From equals Factor To.
type Factor struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Factor float64 `json:"factor"`
}

// factors is the authoritative conversion table. It is a flat lookup, not a
// graph: pairs that are not listed here do not convert, even when a path
// through other units exists. Keys are canonical codes only; long forms such
// as "liter" are folded by Normalize before the lookup.
var factors = []Factor{
	// weight
	{From: Kilogram, To: Gram, Factor: 1000},
	{From: Gram, To: Kilogram, Factor: 0.001},
	// volume
	{From: Liter, To: Milliliter, Factor: 1000},
	{From: Milliliter, To: Liter, Factor: 0.001},
	// count units only map onto themselves
	{From: Pieces, To: Pieces, Factor: 1},
	{From: Buah, To: Buah, Factor: 1},
	{From: Butir, To: Butir, Factor: 1},
	{From: Lembar, To: Lembar, Factor: 1},
	{From: Botol, To: Botol, Factor: 1},
}

type factorKey struct {
	From string
	To   string
}

var factorMap = func() map[factorKey]float64 {
	m := make(map[factorKey]float64, len(factors))
	for _, f := range factors {
		m[factorKey{f.From, f.To}] = f.Factor
	}
	return m
}()

// Normalize lower-cases and trims a unit and folds known synonyms onto their
// canonical code. Unrecognised units come back in their trimmed lower-case form.
func Normalize(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := synonyms[u]; ok {
		return canonical
	}
	return u
}

// Equal reports whether two unit strings normalize to the same code.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Convert expresses amount (in unit from) in unit to. Both units are
// normalized first. The second result is false when no registered factor
// connects the two units; the caller decides what to do about it.
func Convert(amount float64, from, to string) (float64, bool) {
	f, t := Normalize(from), Normalize(to)
	if f == t {
		return amount, true
	}
	factor, ok := factorMap[factorKey{f, t}]
	if !ok {
		return 0, false
	}
	return amount * factor, true
}

// Convertible reports whether Convert would succeed for the pair.
func Convertible(from, to string) bool {
	_, ok := Convert(1, from, to)
	return ok
}

// Factors returns a copy of the registered conversion table.
func Factors() []Factor {
	out := make([]Factor, len(factors))
	copy(out, factors)
	return out
}
