package calculator

// Kind identifies one of the fixed calculators. The set is closed: a Kind
// is only ever obtained from ParseKind or the exported constants.
type Kind uint8

const (
	Fertilizer Kind = iota + 1
	Irrigation
	Yield
	Profit
)

// Kinds lists every calculator in display order.
var Kinds = [...]Kind{Fertilizer, Irrigation, Yield, Profit}

func (k Kind) String() string {
	switch k {
	case Fertilizer:
		return "fertilizer"
	case Irrigation:
		return "irrigation"
	case Yield:
		return "yield"
	case Profit:
		return "profit"
	}
	return "unknown"
}

// ParseKind maps a calculator identifier to its Kind. Unknown identifiers
// report false; identifiers are case-sensitive.
func ParseKind(id string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == id {
			return k, true
		}
	}
	return 0, false
}
