package rental

import (
	"fmt"
	"strings"

	"agriservice/internal/money"
)

const (
	monthlyDays  = 20
	seasonalDays = 60
)

var catalog = []Equipment{
	{ID: "tractor-1", Name: "John Deere 6120M Tractor", Category: "Tractors", DailyRate: 150, WeeklyRate: 800},
	{ID: "planter-1", Name: "Precision Planter 12-Row", Category: "Planting Equipment", DailyRate: 200, WeeklyRate: 1000},
	{ID: "harvester-1", Name: "Combine Harvester", Category: "Harvesting Equipment", DailyRate: 300, WeeklyRate: 1500},
	{ID: "irrigation-1", Name: "Center Pivot Irrigation", Category: "Irrigation Systems", MonthlyRate: 2000, SeasonalRate: 5000},
	{ID: "tiller-1", Name: "Rotary Tiller", Category: "Tillage Equipment", DailyRate: 80, WeeklyRate: 400},
	{ID: "sprayer-1", Name: "Sprayer Boom", Category: "Spraying Equipment", DailyRate: 120, WeeklyRate: 600},
}

// Find returns the equipment with the given id.
func Find(id string) (Equipment, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Equipment{}, false
}

// Search returns equipment whose category contains category, ignoring case.
// An empty category matches everything.
func Search(category string) []Equipment {
	needle := strings.ToLower(strings.TrimSpace(category))
	out := make([]Equipment, 0, len(catalog))
	for _, e := range catalog {
		if needle == "" || strings.Contains(strings.ToLower(e.Category), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Rate is the price of one period.
func (e Equipment) Rate(p Period) (float64, error) {
	var rate float64
	switch p {
	case Daily:
		rate = e.DailyRate
	case Weekly:
		rate = e.WeeklyRate
	case Monthly:
		rate = e.MonthlyRate
		if rate == 0 {
			rate = e.DailyRate * monthlyDays
		}
	case Seasonal:
		rate = e.SeasonalRate
		if rate == 0 {
			rate = e.DailyRate * seasonalDays
		}
	default:
		return 0, ErrUnknownPeriod
	}
	if rate <= 0 {
		return 0, fmt.Errorf("%s for %s: %w", p, e.ID, ErrPeriodUnavailable)
	}
	return rate, nil
}

// QuoteFor prices count periods of the given equipment.
func QuoteFor(id string, p Period, count int) (Quote, error) {
	e, ok := Find(id)
	if !ok {
		return Quote{}, fmt.Errorf("%q: %w", id, ErrUnknownEquipment)
	}
	if count <= 0 {
		return Quote{}, ErrInvalidCount
	}

	rate, err := e.Rate(p)
	if err != nil {
		return Quote{}, err
	}

	total := rate * float64(count)

	return Quote{
		EquipmentID: e.ID,
		Equipment:   e.Name,
		Period:      p,
		Count:       count,
		Rate:        rate,
		Total:       total,
		Summary: fmt.Sprintf("Equipment: %s\nDuration: %d %s periods\nRate: %s/%s\nTotal Cost: %s",
			e.Name, count, p, money.Dollars(rate, false), p, money.Dollars(total, false)),
	}, nil
}
