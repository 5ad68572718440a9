package domain

import "github.com/google/uuid"

// Layout is a (zones, logos) working set. Every method is a pure
// transformation: it never writes to the receiver's backing arrays, so a
// Layout handed to a variant snapshot can't be changed through another one.
type Layout struct {
	Zones []Zone `json:"zones"`
	Logos []Logo `json:"logos"`
}

// ZonePair is a zone together with the logo bound to it.
type ZonePair struct {
	Zone Zone
	Logo Logo
}

// Clone returns a deep copy.
func (l Layout) Clone() Layout {
	return Layout{
		Zones: append([]Zone(nil), l.Zones...),
		Logos: append([]Logo(nil), l.Logos...),
	}
}

// IsEmpty reports whether the layout has neither zones nor logos.
func (l Layout) IsEmpty() bool {
	return len(l.Zones) == 0 && len(l.Logos) == 0
}

// Zone returns the zone with the given id.
func (l Layout) Zone(id uuid.UUID) (Zone, bool) {
	for _, z := range l.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// Logo returns the logo with the given id.
func (l Layout) Logo(id uuid.UUID) (Logo, bool) {
	for _, lg := range l.Logos {
		if lg.ID == id {
			return lg, true
		}
	}
	return Logo{}, false
}

// LogoForZone returns the logo bound to zoneID, if any.
func (l Layout) LogoForZone(zoneID uuid.UUID) (Logo, bool) {
	for _, lg := range l.Logos {
		if lg.ZoneID == zoneID {
			return lg, true
		}
	}
	return Logo{}, false
}

// WithZone appends z.
func (l Layout) WithZone(z Zone) Layout {
	zones := make([]Zone, 0, len(l.Zones)+1)
	zones = append(zones, l.Zones...)
	return Layout{Zones: append(zones, z), Logos: l.Logos}
}

// ReplaceZone swaps the zone with the same id for z.
func (l Layout) ReplaceZone(z Zone) (Layout, error) {
	zones := make([]Zone, len(l.Zones))
	found := false
	for i, existing := range l.Zones {
		if existing.ID == z.ID {
			existing = z
			found = true
		}
		zones[i] = existing
	}
	if !found {
		return l, ErrZoneNotFound
	}
	return Layout{Zones: zones, Logos: l.Logos}, nil
}

// WithoutZone removes the zone and every logo bound to it.
func (l Layout) WithoutZone(id uuid.UUID) (Layout, error) {
	if _, ok := l.Zone(id); !ok {
		return l, ErrZoneNotFound
	}

	zones := make([]Zone, 0, len(l.Zones))
	for _, z := range l.Zones {
		if z.ID != id {
			zones = append(zones, z)
		}
	}
	return Layout{Zones: zones, Logos: l.logosWhere(func(lg Logo) bool { return lg.ZoneID != id })}, nil
}

// WithZones replaces the whole zone collection. Logos bound to zones that no
// longer exist are dropped.
func (l Layout) WithZones(zones []Zone) Layout {
	ids := make(map[uuid.UUID]struct{}, len(zones))
	for _, z := range zones {
		ids[z.ID] = struct{}{}
	}
	return Layout{
		Zones: append([]Zone(nil), zones...),
		Logos: l.logosWhere(func(lg Logo) bool {
			_, ok := ids[lg.ZoneID]
			return ok || !lg.Bound()
		}),
	}
}

// WithLogo inserts lg, evicting whatever logo was already bound to its zone.
func (l Layout) WithLogo(lg Logo) Layout {
	logos := l.logosWhere(func(existing Logo) bool {
		return !lg.Bound() || existing.ZoneID != lg.ZoneID
	})
	return Layout{Zones: l.Zones, Logos: append(logos, lg)}
}

// ReplaceLogo swaps the logo with the same id for lg.
func (l Layout) ReplaceLogo(lg Logo) (Layout, error) {
	logos := make([]Logo, len(l.Logos))
	found := false
	for i, existing := range l.Logos {
		if existing.ID == lg.ID {
			existing = lg
			found = true
		}
		logos[i] = existing
	}
	if !found {
		return l, ErrLogoNotFound
	}
	return Layout{Zones: l.Zones, Logos: logos}, nil
}

// WithoutLogo removes a logo by id.
func (l Layout) WithoutLogo(id uuid.UUID) (Layout, error) {
	if _, ok := l.Logo(id); !ok {
		return l, ErrLogoNotFound
	}
	return Layout{Zones: l.Zones, Logos: l.logosWhere(func(lg Logo) bool { return lg.ID != id })}, nil
}

// Pairs returns every zone that has a logo, in zone declaration order.
func (l Layout) Pairs() []ZonePair {
	var pairs []ZonePair
	for _, z := range l.Zones {
		if lg, ok := l.LogoForZone(z.ID); ok {
			pairs = append(pairs, ZonePair{Zone: z, Logo: lg})
		}
	}
	return pairs
}

func (l Layout) logosWhere(keep func(Logo) bool) []Logo {
	logos := make([]Logo, 0, len(l.Logos)+1)
	for _, lg := range l.Logos {
		if keep(lg) {
			logos = append(logos, lg)
		}
	}
	return logos
}
