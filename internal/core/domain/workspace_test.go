package domain

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T, ab bool) *Workspace {
	t.Helper()
	ws, err := NewWorkspace("bottles", "https://cdn.example.com/bottle.png", Canvas{}, ab)
	require.NoError(t, err)
	return ws
}

var logoDims = Dimensions{Width: 200, Height: 100}

// ============================================================================
// Workspace
// ============================================================================

func TestNewWorkspace(t *testing.T) {
	ws := newTestWorkspace(t, false)

	assert.Equal(t, Canvas{Width: DefaultCanvasSize, Height: DefaultCanvasSize}, ws.Canvas)
	require.Len(t, ws.Variants, 1)
	assert.Equal(t, DefaultVariantName, ws.Variants[0].Name)
	assert.Equal(t, ws.Variants[0].ID, ws.ActiveVariantID)
	assert.True(t, ws.Layout.IsEmpty())
}

func TestNewWorkspace_Validation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		base     string
		canvas   Canvas
		want     error
	}{
		{name: "missing category", category: " ", base: "x.png", want: ErrInvalidCategory},
		{name: "missing base image", category: "mugs", base: "", want: ErrMissingBaseImage},
		{name: "negative canvas", category: "mugs", base: "x.png", canvas: Canvas{Width: -1}, want: ErrInvalidCanvas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorkspace(tt.category, tt.base, tt.canvas, false)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ============================================================================
// Layout Store
// ============================================================================

func TestAddZone_CenteredLabelledAndSelected(t *testing.T) {
	ws := newTestWorkspace(t, false)

	z1, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	z2, err := ws.AddZone(ShapeCircle, "UV Print")
	require.NoError(t, err)

	assert.Equal(t, "Zone 1", z1.Label)
	assert.Equal(t, "Zone 2", z2.Label)
	assert.Equal(t, Box{X: 250, Y: 250, Width: 100, Height: 100}, z1.Box)
	assert.Equal(t, z2.ID, ws.Selection.ZoneID)
	assert.NotEqual(t, z1.ID, z2.ID)

	_, err = ws.AddZone(Shape("hexagon"), "UV Print")
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.Len(t, ws.Layout.Zones, 2)
}

func TestAttachLogo_EvictsPreviousLogo(t *testing.T) {
	ws := newTestWorkspace(t, false)
	zone, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)

	first, err := ws.AttachLogo(zone.ID, "https://cdn.example.com/a.png", logoDims)
	require.NoError(t, err)
	second, err := ws.AttachLogo(zone.ID, "https://cdn.example.com/b.png", logoDims)
	require.NoError(t, err)

	require.Len(t, ws.Layout.Logos, 1)
	assert.Equal(t, second.ID, ws.Layout.Logos[0].ID)
	_, ok := ws.Layout.Logo(first.ID)
	assert.False(t, ok)
	assert.Equal(t, second.ID, ws.Selection.LogoID)
}

func TestAttachLogo_UnknownZoneLeavesStateUnchanged(t *testing.T) {
	ws := newTestWorkspace(t, false)
	_, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	before := ws.Layout.Clone()

	_, err = ws.AttachLogo(uuid.New(), "https://cdn.example.com/a.png", logoDims)
	assert.ErrorIs(t, err, ErrZoneNotFound)
	assert.Equal(t, before, ws.Layout)
}

func TestRemoveZone_CascadesToLogo(t *testing.T) {
	ws := newTestWorkspace(t, false)
	keep, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	drop, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)

	kept, err := ws.AttachLogo(keep.ID, "https://cdn.example.com/a.png", logoDims)
	require.NoError(t, err)
	_, err = ws.AttachLogo(drop.ID, "https://cdn.example.com/b.png", logoDims)
	require.NoError(t, err)

	require.NoError(t, ws.RemoveZone(drop.ID))

	require.Len(t, ws.Layout.Logos, 1)
	assert.Equal(t, kept.ID, ws.Layout.Logos[0].ID)
	for _, lg := range ws.Layout.Logos {
		_, ok := ws.Layout.Zone(lg.ZoneID)
		assert.True(t, ok, "logo %s references a missing zone", lg.ID)
	}
	assert.Equal(t, Selection{}, ws.Selection)

	assert.ErrorIs(t, ws.RemoveZone(drop.ID), ErrZoneNotFound)
}

func TestTransformZone(t *testing.T) {
	ws := newTestWorkspace(t, false)
	rect, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	circle, err := ws.AddZone(ShapeCircle, "UV Print")
	require.NoError(t, err)

	z, tr, err := ws.TransformZone(rect.ID, 0.1, 2)
	require.NoError(t, err)
	assert.Equal(t, MinZoneSize, z.Box.Width)
	assert.Equal(t, 200.0, z.Box.Height)
	assert.True(t, tr.ResetHandle)

	z, _, err = ws.TransformZone(circle.ID, 1.5, 3)
	require.NoError(t, err)
	assert.Equal(t, z.Box.Width, z.Box.Height)
	assert.Equal(t, 300.0, z.Box.Width)

	stored, ok := ws.Layout.Zone(circle.ID)
	require.True(t, ok)
	assert.Equal(t, z.Box, stored.Box)

	_, _, err = ws.TransformZone(uuid.New(), 2, 2)
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestUpdateZone(t *testing.T) {
	ws := newTestWorkspace(t, false)
	zone, err := ws.AddZone(ShapeCircle, "UV Print")
	require.NoError(t, err)

	label := "Cap"
	method := "Embroidery"
	width := 140.0
	updated, err := ws.UpdateZone(zone.ID, ZoneUpdate{Label: &label, Method: &method, Width: &width})
	require.NoError(t, err)
	assert.Equal(t, "Cap", updated.Label)
	assert.Equal(t, "Embroidery", updated.Method)
	assert.Equal(t, 140.0, updated.Box.Width)
	assert.Equal(t, 140.0, updated.Box.Height)

	tiny := 3.0
	updated, err = ws.UpdateZone(zone.ID, ZoneUpdate{Width: &tiny, Height: &tiny})
	require.NoError(t, err)
	assert.Equal(t, MinZoneSize, updated.Box.Width)

	empty := ""
	_, err = ws.UpdateZone(zone.ID, ZoneUpdate{Label: &empty})
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestUpdateZone_CircleSingleSideDrivesDiameter(t *testing.T) {
	ws := newTestWorkspace(t, false)
	zone, err := ws.AddZone(ShapeCircle, "UV Print")
	require.NoError(t, err)

	width := 80.0
	updated, err := ws.UpdateZone(zone.ID, ZoneUpdate{Width: &width})
	require.NoError(t, err)
	assert.Equal(t, Box{X: zone.Box.X, Y: zone.Box.Y, Width: 80, Height: 80}, updated.Box)

	height := 65.0
	updated, err = ws.UpdateZone(zone.ID, ZoneUpdate{Height: &height})
	require.NoError(t, err)
	assert.Equal(t, 65.0, updated.Box.Width)
	assert.Equal(t, 65.0, updated.Box.Height)

	w, h := 70.0, 120.0
	updated, err = ws.UpdateZone(zone.ID, ZoneUpdate{Width: &w, Height: &h})
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.Box.Width)
	assert.Equal(t, 120.0, updated.Box.Height)
}

func TestUpdateZone_PositionStaysFinite(t *testing.T) {
	ws := newTestWorkspace(t, false)
	zone, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)

	x, y := math.Inf(1), math.NaN()
	updated, err := ws.UpdateZone(zone.ID, ZoneUpdate{X: &x, Y: &y})
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, updated.Box.X)
	assert.Equal(t, zone.Box.Y, updated.Box.Y)

	for i := 0; i < 2; i++ {
		_, err = ws.MoveZone(zone.ID, 1e308, 0)
		require.NoError(t, err)
	}
	moved, ok := ws.Layout.Zone(zone.ID)
	require.True(t, ok)
	assert.Equal(t, math.MaxFloat64, moved.Box.X)
}

func TestReplaceZones(t *testing.T) {
	ws := newTestWorkspace(t, false)
	old, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	_, err = ws.AttachLogo(old.ID, "https://cdn.example.com/a.png", logoDims)
	require.NoError(t, err)

	zones, err := ws.ReplaceZones([]ZoneTemplate{
		{Label: "Front", X: 50, Y: 50, Width: 120, Height: 120},
		{X: 0, Y: 0, Width: 10, Height: 10},
	}, "UV Print")
	require.NoError(t, err)

	require.Len(t, zones, 2)
	assert.Equal(t, "Front", zones[0].Label)
	assert.Equal(t, ShapeRectangle, zones[0].Shape)
	assert.Equal(t, "Zone 2", zones[1].Label)
	assert.Equal(t, MinZoneSize, zones[1].Box.Width)
	assert.Empty(t, ws.Layout.Logos)

	_, err = ws.ReplaceZones(nil, "UV Print")
	assert.ErrorIs(t, err, ErrNoZonesDetected)
	assert.Len(t, ws.Layout.Zones, 2)
}

func TestDetectThenAttach_BottleScenario(t *testing.T) {
	ws := newTestWorkspace(t, false)

	zones, err := ws.ReplaceZones([]ZoneTemplate{{Label: "Front", X: 50, Y: 50, Width: 120, Height: 120}}, "UV Print")
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, Box{X: 50, Y: 50, Width: 120, Height: 120}, zones[0].Box)
	assert.Equal(t, "UV Print", zones[0].Method)

	logo, err := ws.AttachLogo(zones[0].ID, "https://cdn.example.com/logo.png", logoDims)
	require.NoError(t, err)
	assert.Equal(t, Placement{X: 62, Y: 86, Width: 96, Height: 48}, logo.Placement)
}

func TestSelect(t *testing.T) {
	ws := newTestWorkspace(t, false)
	zone, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	logo, err := ws.AttachLogo(zone.ID, "https://cdn.example.com/a.png", logoDims)
	require.NoError(t, err)

	require.NoError(t, ws.Select(Selection{ZoneID: zone.ID}))
	assert.Equal(t, zone.ID, ws.Selection.ZoneID)

	assert.ErrorIs(t, ws.Select(Selection{}), ErrNothingSelected)
	assert.ErrorIs(t, ws.Select(Selection{ZoneID: zone.ID, LogoID: logo.ID}), ErrNothingSelected)
	assert.ErrorIs(t, ws.Select(Selection{LogoID: uuid.New()}), ErrLogoNotFound)
	assert.Equal(t, zone.ID, ws.Selection.ZoneID)

	ws.ClearSelection()
	assert.Equal(t, Selection{}, ws.Selection)
}

func TestUpdateLogo(t *testing.T) {
	ws := newTestWorkspace(t, false)
	zone, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	logo, err := ws.AttachLogo(zone.ID, "https://cdn.example.com/a.png", logoDims)
	require.NoError(t, err)

	rotation := 45.0
	x := 10.0
	negative := -20.0
	updated, err := ws.UpdateLogo(logo.ID, LogoUpdate{X: &x, Rotation: &rotation, Width: &negative})
	require.NoError(t, err)
	assert.Equal(t, 10.0, updated.Placement.X)
	assert.Equal(t, 45.0, updated.Placement.Rotation)
	assert.Equal(t, logo.Placement.Width, updated.Placement.Width)

	require.NoError(t, ws.RemoveLogo(logo.ID))
	assert.Empty(t, ws.Layout.Logos)
	assert.ErrorIs(t, ws.RemoveLogo(logo.ID), ErrLogoNotFound)
}

// ============================================================================
// Variant Manager
// ============================================================================

func TestVariants_SwitchDoesNotAlias(t *testing.T) {
	ws := newTestWorkspace(t, true)
	zone, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)
	_, err = ws.AttachLogo(zone.ID, "https://cdn.example.com/a.png", logoDims)
	require.NoError(t, err)

	variantA := ws.ActiveVariantID
	forked, err := ws.ForkVariant(variantA, "Variant B")
	require.NoError(t, err)
	assert.Equal(t, forked.ID, ws.ActiveVariantID)
	require.Len(t, ws.Layout.Zones, 1)

	// mutate B heavily
	_, _, err = ws.TransformZone(zone.ID, 3, 3)
	require.NoError(t, err)
	_, err = ws.AddZone(ShapeCircle, "UV Print")
	require.NoError(t, err)
	require.NoError(t, ws.RemoveLogo(ws.Layout.Logos[0].ID))

	a, ok := ws.Variant(variantA)
	require.True(t, ok)
	require.Len(t, a.Layout.Zones, 1)
	assert.Equal(t, 100.0, a.Layout.Zones[0].Box.Width)
	assert.Len(t, a.Layout.Logos, 1)

	b, ok := ws.Variant(forked.ID)
	require.True(t, ok)
	assert.Len(t, b.Layout.Zones, 2)
	assert.Empty(t, b.Layout.Logos)

	_, err = ws.SwitchVariant(variantA)
	require.NoError(t, err)
	assert.Len(t, ws.Layout.Zones, 1)
	assert.Len(t, ws.Layout.Logos, 1)
	assert.Equal(t, Selection{}, ws.Selection)
}

func TestVariants_CreateIsEmptyAndActive(t *testing.T) {
	ws := newTestWorkspace(t, true)
	_, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)

	v, err := ws.CreateVariant("Variant B")
	require.NoError(t, err)
	assert.Equal(t, v.ID, ws.ActiveVariantID)
	assert.True(t, ws.Layout.IsEmpty())
	assert.Len(t, ws.Variants, 2)

	_, err = ws.CreateVariant("  ")
	assert.ErrorIs(t, err, ErrInvalidVariantName)
}

func TestVariants_CannotDeleteLast(t *testing.T) {
	ws := newTestWorkspace(t, true)

	err := ws.DeleteVariant(ws.ActiveVariantID)
	assert.ErrorIs(t, err, ErrCannotDeleteLastVariant)
	assert.Len(t, ws.Variants, 1)
}

func TestVariants_DeleteActiveFallsBackToFirst(t *testing.T) {
	ws := newTestWorkspace(t, true)
	first := ws.ActiveVariantID
	_, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)

	v, err := ws.CreateVariant("Variant B")
	require.NoError(t, err)
	require.NoError(t, ws.DeleteVariant(v.ID))

	assert.Equal(t, first, ws.ActiveVariantID)
	assert.Len(t, ws.Layout.Zones, 1)
	assert.ErrorIs(t, ws.DeleteVariant(v.ID), ErrVariantNotFound)
}

func TestVariants_RequireABTesting(t *testing.T) {
	ws := newTestWorkspace(t, false)
	id := ws.ActiveVariantID

	_, err := ws.CreateVariant("Variant B")
	assert.ErrorIs(t, err, ErrABTestingDisabled)
	_, err = ws.ForkVariant(id, "Variant B")
	assert.ErrorIs(t, err, ErrABTestingDisabled)
	_, err = ws.SwitchVariant(id)
	assert.ErrorIs(t, err, ErrABTestingDisabled)
	_, err = ws.RenameVariant(id, "Renamed")
	assert.ErrorIs(t, err, ErrABTestingDisabled)
	assert.ErrorIs(t, ws.DeleteVariant(id), ErrABTestingDisabled)

	_, err = ws.RecordPerformance(id, Performance{Views: 10, Clicks: 1, CTR: 0.1})
	assert.NoError(t, err)
}

func TestVariants_EditsWithoutABTestingStayOutOfVariant(t *testing.T) {
	ws := newTestWorkspace(t, false)
	_, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)

	active, ok := ws.ActiveVariant()
	require.True(t, ok)
	assert.Empty(t, active.Layout.Zones)

	ws.SetABTesting(true)
	active, ok = ws.ActiveVariant()
	require.True(t, ok)
	assert.Len(t, active.Layout.Zones, 1)
}

func TestVariants_RenameAndPerformance(t *testing.T) {
	ws := newTestWorkspace(t, true)
	id := ws.ActiveVariantID

	v, err := ws.RenameVariant(id, "Control")
	require.NoError(t, err)
	assert.Equal(t, "Control", v.Name)

	_, err = ws.RecordPerformance(id, Performance{Views: -1})
	assert.ErrorIs(t, err, ErrInvalidPerformance)

	v, err = ws.RecordPerformance(id, Performance{Views: 1000, Clicks: 42, CTR: 0.042})
	require.NoError(t, err)
	require.NotNil(t, v.Performance)
	assert.Equal(t, int64(42), v.Performance.Clicks)

	_, err = ws.RecordPerformance(uuid.New(), Performance{})
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestWorkspaceClone_IsDeep(t *testing.T) {
	ws := newTestWorkspace(t, true)
	_, err := ws.AddZone(ShapeRectangle, "UV Print")
	require.NoError(t, err)

	clone := ws.Clone()
	clone.Layout.Zones[0].Label = "changed"
	clone.Variants[0].Layout.Zones[0].Label = "changed too"

	assert.Equal(t, "Zone 1", ws.Layout.Zones[0].Label)
	assert.Equal(t, "Zone 1", ws.Variants[0].Layout.Zones[0].Label)
}
