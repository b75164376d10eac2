package consultation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownExpert = errors.New("unknown expert")
	ErrUnknownType   = errors.New("unknown consultation type")
)

// Expert is a consultant who can be booked.
type Expert struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Category  string `json:"category"`
}

// Type is a consultation format and its price.
type Type struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

// Rate renders the price as shown to customers, e.g. "$75/hour".
func (t Type) Rate() string {
	return fmt.Sprintf("$%g/%s", t.Price, t.Unit)
}

// Category groups experts by specialty.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Booking confirms a consultation. Nothing is scheduled or stored.
type Booking struct {
	Reference string `json:"reference"`
	Expert    Expert `json:"expert"`
	Type      Type   `json:"type"`
	Rate      string `json:"rate"`
	Message   string `json:"message"`
}

var experts = []Expert{
	{ID: "sarah-johnson", Name: "Dr. Sarah Johnson", Specialty: "Crop Science Specialist", Category: "crop-science"},
	{ID: "michael-chen", Name: "Michael Chen", Specialty: "Pest Management Expert", Category: "pest-management"},
	{ID: "emily-rodriguez", Name: "Dr. Emily Rodriguez", Specialty: "Irrigation Specialist", Category: "irrigation"},
	{ID: "james-wilson", Name: "James Wilson", Specialty: "Agricultural Business Consultant", Category: "business"},
}

// types keeps the order of the booking menu (1-4).
var types = []Type{
	{ID: "video", Name: "Video Call", Price: 75, Unit: "hour"},
	{ID: "phone", Name: "Phone Call", Price: 50, Unit: "hour"},
	{ID: "visit", Name: "Farm Visit", Price: 150, Unit: "visit"},
	{ID: "chat", Name: "Chat Support", Price: 25, Unit: "session"},
}

var categories = []Category{
	{ID: "crop-science", Name: "Crop Science"},
	{ID: "pest-management", Name: "Pest Management"},
	{ID: "irrigation", Name: "Irrigation"},
	{ID: "business", Name: "Business Planning"},
}

// Experts returns the experts in category, or all of them when category is
// empty.
func Experts(category string) []Expert {
	out := make([]Expert, 0, len(experts))
	for _, e := range experts {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Types returns a copy of the consultation types in menu order.
func Types() []Type {
	return append([]Type(nil), types...)
}

// Categories returns a copy of the expert categories.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// FindExpert looks up an expert by id.
func FindExpert(id string) (Expert, bool) {
	for _, e := range experts {
		if e.ID == id {
			return e, true
		}
	}
	return Expert{}, false
}

// FindType resolves a consultation type by id ("video") or by its position
// in the booking menu ("1").
func FindType(key string) (Type, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, t := range types {
		if t.ID == key || fmt.Sprint(i+1) == key {
			return t, true
		}
	}
	return Type{}, false
}

// Book confirms a consultation of the given type with an expert. reference
// is supplied by the caller.
func Book(expertID, typeKey, reference string) (Booking, error) {
	e, ok := FindExpert(expertID)
	if !ok {
		return Booking{}, fmt.Errorf("%q: %w", expertID, ErrUnknownExpert)
	}
	t, ok := FindType(typeKey)
	if !ok {
		return Booking{}, fmt.Errorf("%q: %w", typeKey, ErrUnknownType)
	}

	return Booking{
		Reference: reference,
		Expert:    e,
		Type:      t,
		Rate:      t.Rate(),
		Message: fmt.Sprintf("Booking confirmed!\n\nExpert: %s\nType: %s\nRate: %s\n\nYou will receive a confirmation email with scheduling details.",
			e.Name, t.Name, t.Rate()),
	}, nil
}
