package rental

import "errors"

var (
	ErrUnknownEquipment  = errors.New("unknown equipment")
	ErrUnknownPeriod     = errors.New("unknown rental period")
	ErrPeriodUnavailable = errors.New("rental period not offered for this equipment")
	ErrInvalidCount      = errors.New("number of periods must be a positive integer")
)

// Equipment is one rentable machine. A zero rate means the period is not
// offered directly; monthly and seasonal rates fall back to multiples of the
// daily rate.
type Equipment struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	DailyRate    float64 `json:"daily_rate,omitempty"`
	WeeklyRate   float64 `json:"weekly_rate,omitempty"`
	MonthlyRate  float64 `json:"monthly_rate,omitempty"`
	SeasonalRate float64 `json:"seasonal_rate,omitempty"`
}

// Quote prices a rental of Count consecutive periods.
type Quote struct {
	EquipmentID string  `json:"equipment_id"`
	Equipment   string  `json:"equipment"`
	Period      Period  `json:"period"`
	Count       int     `json:"count"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
	Summary     string  `json:"summary"`
}

// Booking is a confirmed quote. Nothing is stored; Reference only lets the
// customer quote the booking back.
type Booking struct {
	Reference string `json:"reference"`
	Quote     Quote  `json:"quote"`
	Message   string `json:"message"`
}

// QuoteRequest is the JSON body for quote and booking requests.
type QuoteRequest struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}
