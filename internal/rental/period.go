package rental

import (
	"encoding/json"
	"strings"
)

// Period is a rental billing period.
type Period uint8

const (
	Daily Period = iota + 1
	Weekly
	Monthly
	Seasonal
)

var periodNames = map[Period]string{
	Daily:    "daily",
	Weekly:   "weekly",
	Monthly:  "monthly",
	Seasonal: "seasonal",
}

func (p Period) String() string {
	if name, ok := periodNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// ParsePeriod accepts a period name in any case, or the menu number 1-4
// offered in the booking dialog.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "1":
		return Daily, nil
	case "2":
		return Weekly, nil
	case "3":
		return Monthly, nil
	case "4":
		return Seasonal, nil
	}
	for p, name := range periodNames {
		if name == s {
			return p, nil
		}
	}
	return 0, ErrUnknownPeriod
}

func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
