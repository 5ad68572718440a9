package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCanvasSize is used for either canvas side when none is given.
const DefaultCanvasSize = 600.0

// Canvas is the visible editing surface the base image is displayed on.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Selection is the element currently focused in the editor. At most one of
// the ids is set.
type Selection struct {
	ZoneID uuid.UUID `json:"zone_id"`
	LogoID uuid.UUID `json:"logo_id"`
}

// Workspace is the explicit editing context for one product image: the
// working layout, the selection, and the A/B variants of that layout.
type Workspace struct {
	ID              uuid.UUID `json:"id"`
	Category        string    `json:"category"`
	BaseImageURL    string    `json:"base_image_url"`
	Canvas          Canvas    `json:"canvas"`
	Layout          Layout    `json:"layout"`
	Selection       Selection `json:"selection"`
	ABTesting       bool      `json:"ab_testing"`
	Variants        []Variant `json:"variants"`
	ActiveVariantID uuid.UUID `json:"active_variant_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewWorkspace creates a workspace holding a single empty variant.
func NewWorkspace(category, baseImageURL string, canvas Canvas, abTesting bool) (*Workspace, error) {
	if strings.TrimSpace(category) == "" {
		return nil, ErrInvalidCategory
	}
	if strings.TrimSpace(baseImageURL) == "" {
		return nil, ErrMissingBaseImage
	}
	if canvas.Width < 0 || canvas.Height < 0 {
		return nil, ErrInvalidCanvas
	}
	if canvas.Width == 0 {
		canvas.Width = DefaultCanvasSize
	}
	if canvas.Height == 0 {
		canvas.Height = DefaultCanvasSize
	}

	variant, err := NewVariant(DefaultVariantName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Workspace{
		ID:              uuid.New(),
		Category:        category,
		BaseImageURL:    baseImageURL,
		Canvas:          canvas,
		ABTesting:       abTesting,
		Variants:        []Variant{variant},
		ActiveVariantID: variant.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Clone returns a deep copy of the workspace.
func (w *Workspace) Clone() *Workspace {
	out := *w
	out.Layout = w.Layout.Clone()
	out.Variants = make([]Variant, len(w.Variants))
	for i, v := range w.Variants {
		out.Variants[i] = v.Clone()
	}
	return &out
}

// commit installs layout as the working set and, with A/B testing on, writes
// it back into the active variant.
func (w *Workspace) commit(layout Layout) {
	w.Layout = layout
	if w.ABTesting {
		w.SyncActiveVariant()
	}
	w.UpdatedAt = time.Now()
}

// ============================================================================
// Layout Store
// ============================================================================

// AddZone creates a DefaultZoneSize zone centered in the canvas and selects it.
func (w *Workspace) AddZone(shape Shape, method string) (Zone, error) {
	box := Box{
		X:      w.Canvas.Width/2 - DefaultZoneSize/2,
		Y:      w.Canvas.Height/2 - DefaultZoneSize/2,
		Width:  DefaultZoneSize,
		Height: DefaultZoneSize,
	}
	zone, err := NewZone(DefaultZoneLabel(len(w.Layout.Zones)+1), shape, box, method)
	if err != nil {
		return Zone{}, err
	}

	w.commit(w.Layout.WithZone(zone))
	w.Selection = Selection{ZoneID: zone.ID}
	return zone, nil
}

// UpdateZone merges a partial update into the zone with the given id.
func (w *Workspace) UpdateZone(id uuid.UUID, u ZoneUpdate) (Zone, error) {
	zone, ok := w.Layout.Zone(id)
	if !ok {
		return Zone{}, ErrZoneNotFound
	}
	updated, err := zone.Apply(u)
	if err != nil {
		return Zone{}, err
	}
	return updated, w.replaceZone(updated)
}

// TransformZone folds a handle scale into the zone's box using its shape's
// transform.
func (w *Workspace) TransformZone(id uuid.UUID, scaleX, scaleY float64) (Zone, Transform, error) {
	zone, ok := w.Layout.Zone(id)
	if !ok {
		return Zone{}, Transform{}, ErrZoneNotFound
	}
	t := TransformBox(zone.Shape, zone.Box, scaleX, scaleY)
	zone.Box = t.Box
	return zone, t, w.replaceZone(zone)
}

// MoveZone translates the zone's box.
func (w *Workspace) MoveZone(id uuid.UUID, dx, dy float64) (Zone, error) {
	zone, ok := w.Layout.Zone(id)
	if !ok {
		return Zone{}, ErrZoneNotFound
	}
	zone.Box = MoveBox(zone.Box, dx, dy)
	return zone, w.replaceZone(zone)
}

func (w *Workspace) replaceZone(zone Zone) error {
	layout, err := w.Layout.ReplaceZone(zone)
	if err != nil {
		return err
	}
	w.commit(layout)
	return nil
}

// RemoveZone deletes the zone and cascades to its logo.
func (w *Workspace) RemoveZone(id uuid.UUID) error {
	layout, err := w.Layout.WithoutZone(id)
	if err != nil {
		return err
	}
	w.commit(layout)
	w.pruneSelection()
	return nil
}

// AttachLogo fits a logo of the given natural size into the zone's current
// box, evicts any logo already bound to that zone, and selects the new one.
func (w *Workspace) AttachLogo(zoneID uuid.UUID, url string, dims Dimensions) (Logo, error) {
	if strings.TrimSpace(url) == "" {
		return Logo{}, ErrInvalidLogoURL
	}
	zone, ok := w.Layout.Zone(zoneID)
	if !ok {
		return Logo{}, ErrZoneNotFound
	}
	placement, err := FitLogo(zone.Box, dims)
	if err != nil {
		return Logo{}, err
	}

	logo := Logo{
		ID:        uuid.New(),
		URL:       url,
		Placement: placement,
		ZoneID:    zoneID,
	}
	w.commit(w.Layout.WithLogo(logo))
	w.Selection = Selection{LogoID: logo.ID}
	return logo, nil
}

// UpdateLogo merges a partial placement update into a logo.
func (w *Workspace) UpdateLogo(id uuid.UUID, u LogoUpdate) (Logo, error) {
	logo, ok := w.Layout.Logo(id)
	if !ok {
		return Logo{}, ErrLogoNotFound
	}
	logo = logo.Apply(u)
	layout, err := w.Layout.ReplaceLogo(logo)
	if err != nil {
		return Logo{}, err
	}
	w.commit(layout)
	return logo, nil
}

// RemoveLogo deletes a logo by id.
func (w *Workspace) RemoveLogo(id uuid.UUID) error {
	layout, err := w.Layout.WithoutLogo(id)
	if err != nil {
		return err
	}
	w.commit(layout)
	w.pruneSelection()
	return nil
}

// ReplaceZones swaps the whole zone collection for zones built from
// templates, each with a fresh id and the given method. The workspace is left
// untouched when templates is empty.
func (w *Workspace) ReplaceZones(templates []ZoneTemplate, method string) ([]Zone, error) {
	if len(templates) == 0 {
		return nil, ErrNoZonesDetected
	}

	zones := make([]Zone, 0, len(templates))
	for i, t := range templates {
		label := t.Label
		if strings.TrimSpace(label) == "" {
			label = DefaultZoneLabel(i + 1)
		}
		shape := t.Shape
		if shape == "" {
			shape = ShapeRectangle
		}
		zone, err := NewZone(label, shape, t.Box(), method)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	w.commit(w.Layout.WithZones(zones))
	w.pruneSelection()
	return zones, nil
}

// Select focuses a zone or a logo. Exactly one id must be set.
func (w *Workspace) Select(sel Selection) error {
	switch {
	case sel.ZoneID != uuid.Nil && sel.LogoID != uuid.Nil, sel.ZoneID == uuid.Nil && sel.LogoID == uuid.Nil:
		return ErrNothingSelected
	case sel.ZoneID != uuid.Nil:
		if _, ok := w.Layout.Zone(sel.ZoneID); !ok {
			return ErrZoneNotFound
		}
	default:
		if _, ok := w.Layout.Logo(sel.LogoID); !ok {
			return ErrLogoNotFound
		}
	}
	w.Selection = sel
	return nil
}

// ClearSelection deselects everything.
func (w *Workspace) ClearSelection() {
	w.Selection = Selection{}
}

func (w *Workspace) pruneSelection() {
	if w.Selection.ZoneID != uuid.Nil {
		if _, ok := w.Layout.Zone(w.Selection.ZoneID); !ok {
			w.Selection.ZoneID = uuid.Nil
		}
	}
	if w.Selection.LogoID != uuid.Nil {
		if _, ok := w.Layout.Logo(w.Selection.LogoID); !ok {
			w.Selection.LogoID = uuid.Nil
		}
	}
}

// ============================================================================
// Variant Manager
// ============================================================================

// SetABTesting toggles A/B testing. Turning it on captures the current working
// set into the active variant.
func (w *Workspace) SetABTesting(enabled bool) {
	w.ABTesting = enabled
	if enabled {
		w.SyncActiveVariant()
	}
	w.UpdatedAt = time.Now()
}

// SyncActiveVariant overwrites the active variant's stored layout with a copy
// of the working set.
func (w *Workspace) SyncActiveVariant() {
	if i := w.variantIndex(w.ActiveVariantID); i >= 0 {
		w.Variants[i].Layout = w.Layout.Clone()
	}
}

// ActiveVariant returns the active variant.
func (w *Workspace) ActiveVariant() (Variant, bool) {
	if i := w.variantIndex(w.ActiveVariantID); i >= 0 {
		return w.Variants[i], true
	}
	return Variant{}, false
}

// Variant returns the variant with the given id.
func (w *Workspace) Variant(id uuid.UUID) (Variant, bool) {
	if i := w.variantIndex(id); i >= 0 {
		return w.Variants[i], true
	}
	return Variant{}, false
}

// CreateVariant appends an empty variant and activates it.
func (w *Workspace) CreateVariant(name string) (Variant, error) {
	if !w.ABTesting {
		return Variant{}, ErrABTestingDisabled
	}
	v, err := NewVariant(name)
	if err != nil {
		return Variant{}, err
	}
	w.Variants = append(w.Variants, v)
	w.activate(v)
	return v, nil
}

// ForkVariant appends a copy of the source variant's layout under a new name
// and activates it.
func (w *Workspace) ForkVariant(sourceID uuid.UUID, name string) (Variant, error) {
	if !w.ABTesting {
		return Variant{}, ErrABTestingDisabled
	}
	source, ok := w.Variant(sourceID)
	if !ok {
		return Variant{}, ErrVariantNotFound
	}
	v, err := NewVariant(name)
	if err != nil {
		return Variant{}, err
	}
	v.Layout = source.Layout.Clone()
	w.Variants = append(w.Variants, v)
	w.activate(v)
	return v, nil
}

// SwitchVariant activates a variant; the working set becomes a copy of its
// stored layout.
func (w *Workspace) SwitchVariant(id uuid.UUID) (Variant, error) {
	if !w.ABTesting {
		return Variant{}, ErrABTestingDisabled
	}
	v, ok := w.Variant(id)
	if !ok {
		return Variant{}, ErrVariantNotFound
	}
	w.activate(v)
	return v, nil
}

// DeleteVariant removes a variant. The last remaining variant can't be
// deleted; deleting the active one falls back to the first remaining.
func (w *Workspace) DeleteVariant(id uuid.UUID) error {
	if !w.ABTesting {
		return ErrABTestingDisabled
	}
	i := w.variantIndex(id)
	if i < 0 {
		return ErrVariantNotFound
	}
	if len(w.Variants) == 1 {
		return ErrCannotDeleteLastVariant
	}

	variants := make([]Variant, 0, len(w.Variants)-1)
	variants = append(variants, w.Variants[:i]...)
	w.Variants = append(variants, w.Variants[i+1:]...)

	if id == w.ActiveVariantID {
		w.activate(w.Variants[0])
	} else {
		w.UpdatedAt = time.Now()
	}
	return nil
}

// RenameVariant changes a variant's display name.
func (w *Workspace) RenameVariant(id uuid.UUID, name string) (Variant, error) {
	if !w.ABTesting {
		return Variant{}, ErrABTestingDisabled
	}
	if strings.TrimSpace(name) == "" {
		return Variant{}, ErrInvalidVariantName
	}
	i := w.variantIndex(id)
	if i < 0 {
		return Variant{}, ErrVariantNotFound
	}
	w.Variants[i].Name = name
	w.UpdatedAt = time.Now()
	return w.Variants[i], nil
}

// RecordPerformance stores externally measured telemetry on a variant.
func (w *Workspace) RecordPerformance(id uuid.UUID, p Performance) (Variant, error) {
	if err := p.Validate(); err != nil {
		return Variant{}, err
	}
	i := w.variantIndex(id)
	if i < 0 {
		return Variant{}, ErrVariantNotFound
	}
	w.Variants[i].Performance = &p
	w.UpdatedAt = time.Now()
	return w.Variants[i], nil
}

func (w *Workspace) activate(v Variant) {
	w.ActiveVariantID = v.ID
	w.Layout = v.Layout.Clone()
	w.Selection = Selection{}
	w.UpdatedAt = time.Now()
}

func (w *Workspace) variantIndex(id uuid.UUID) int {
	for i := range w.Variants {
		if w.Variants[i].ID == id {
			return i
		}
	}
	return -1
}
