package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultVariantName is the name of the variant every workspace starts with.
const DefaultVariantName = "Variant A"

// Performance is externally supplied telemetry for a variant. The engine
// stores it verbatim and never derives it.
type Performance struct {
	Views  int64   `json:"views"`
	Clicks int64   `json:"clicks"`
	CTR    float64 `json:"ctr"`
}

// Validate rejects negative counters.
func (p Performance) Validate() error {
	if p.Views < 0 || p.Clicks < 0 || p.CTR < 0 {
		return ErrInvalidPerformance
	}
	return nil
}

// Variant is an independently mutable snapshot of a layout.
type Variant struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Layout      Layout       `json:"layout"`
	Performance *Performance `json:"performance,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewVariant creates an empty variant.
func NewVariant(name string) (Variant, error) {
	if strings.TrimSpace(name) == "" {
		return Variant{}, ErrInvalidVariantName
	}
	return Variant{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// Clone returns a deep copy that shares no memory with v.
func (v Variant) Clone() Variant {
	out := v
	out.Layout = v.Layout.Clone()
	if v.Performance != nil {
		p := *v.Performance
		out.Performance = &p
	}
	return out
}
