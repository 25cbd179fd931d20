package kicad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RCoeurjoly/edea/kicad"
	"github.com/RCoeurjoly/edea/kicad/common"
	"github.com/RCoeurjoly/edea/kicad/pcb"
	"github.com/RCoeurjoly/edea/kicad/schematic"
	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/sexpr"
)

func decodeSchematic(t *testing.T, body string) *schematic.Schematic {
	t.Helper()

	doc, err := kicad.DecodeDocument(`(kicad_sch (version 20230121) (generator eeschema) ` + body + `)`)
	require.NoError(t, err)

	return doc.(*schematic.Schematic)
}

// decodeRecord decodes a single tagged expression into out.
func decodeRecord(t *testing.T, text string, out any) {
	t.Helper()

	expr, err := sexpr.Parse(text)
	require.NoError(t, err)
	require.NoError(t, kicad.Catalog().Unmarshal(expr, out))
}

func encodeRecord(t *testing.T, v any) string {
	t.Helper()

	text, err := kicad.Catalog().Marshal(v)
	require.NoError(t, err)

	return text
}

func TestPaper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		want   common.Paper
		width  float64
		height float64
	}{
		{`(paper "A4")`, common.PaperStandard{Format: common.PaperA4}, 297, 210},
		{`(paper "A3" portrait)`, common.PaperStandard{Format: common.PaperA3, Orientation: common.Portrait}, 297, 420},
		{`(paper "USLetter")`, common.PaperStandard{Format: common.PaperUSLetter}, 279.4, 215.9},
		{`(paper "User" 431.8 279.4)`, common.PaperUser{Format: "User", Width: 431.8, Height: 279.4}, 431.8, 279.4},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			sch := decodeSchematic(t, tt.text)
			assert.Equal(t, tt.want, sch.Paper)

			w, h := sch.Paper.Dimensions()
			assert.InDelta(t, tt.width, w, 1e-9)
			assert.InDelta(t, tt.height, h, 1e-9)

			text, err := kicad.EncodeDocument(sch)
			require.NoError(t, err)
			assert.Contains(t, text, tt.text)
		})
	}
}

func TestPaperRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := kicad.DecodeDocument(`(kicad_sch (version 20230121) (paper "A7"))`)
	require.ErrorIs(t, err, marshal.ErrUnionExhausted)

	var ue *marshal.UnionError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, []string{"PaperUser", "PaperStandard"}, ue.Members)
}

func TestFillUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want schematic.Fill
	}{
		{`(fill (type background))`, schematic.FillSimple{Type: schematic.FillBackground}},
		{`(fill (type none))`, schematic.FillSimple{Type: schematic.FillNone}},
		{`(fill (color 255 255 194 1))`, schematic.FillColor{Color: common.Color{255, 255, 194, 1}}},
		{`(fill (type color) (color 0 0 255 0.5))`, schematic.FillTypeColor{Type: "color", Color: common.Color{0, 0, 255, 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			sch := decodeSchematic(t, `(rectangle (start 0 0) (end 10 10) (stroke (width 0) (type default)) `+tt.text+` (uuid 3c1f0a52-98e2-4a7e-b8a3-0d5c2f1e6b7a))`)
			require.Len(t, sch.Rectangle, 1)
			assert.Equal(t, tt.want, sch.Rectangle[0].Fill)

			text := encodeRecord(t, sch.Rectangle[0])
			assert.Contains(t, text, tt.text)
		})
	}
}

func TestJustify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want common.Justify
	}{
		{`(justify top)`, common.Justify{Horizontal: common.JustifyHCenter, Vertical: common.JustifyTop}},
		{`(justify left)`, common.Justify{Horizontal: common.JustifyLeft, Vertical: common.JustifyVCenter}},
		{`(justify right bottom)`, common.Justify{Horizontal: common.JustifyRight, Vertical: common.JustifyBottom}},
		{`(justify left mirror)`, common.Justify{Horizontal: common.JustifyLeft, Vertical: common.JustifyVCenter, Mirror: true}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var e common.Effects
			decodeRecord(t, `(effects (font (size 1.27 1.27)) `+tt.text+`)`, &e)
			assert.Equal(t, tt.want, e.Justify)
			assert.Equal(t, `(effects (font (size 1.27 1.27)) `+tt.text+`)`, encodeRecord(t, e))
		})
	}

	t.Run("centered is not written", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, `(effects (font (size 1.27 1.27)) hide)`, encodeRecord(t, common.Effects{
			Font:    common.Font{Size: [2]float64{1.27, 1.27}},
			Justify: common.Justify{Horizontal: common.JustifyHCenter, Vertical: common.JustifyVCenter},
			Hide:    true,
		}))
	})
}

func TestAtNormalize(t *testing.T) {
	t.Parallel()

	for text, want := range map[string]float64{
		"0":    0,
		"90":   90,
		"450":  90,
		"-90":  270,
		"-360": 0,
		"720":  0,
	} {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			sch := decodeSchematic(t, `(label "N" (at 1 2 `+text+`) (effects (font (size 1.27 1.27))) (uuid 7d1f2a3b-4c5d-4e6f-8a9b-0c1d2e3f4a5b))`)
			require.Len(t, sch.Label, 1)
			assert.Equal(t, want, sch.Label[0].At.Angle)
			assert.Contains(t, encodeRecord(t, sch.Label[0]), "(at 1 2 "+map[float64]string{0: "0", 90: "90", 270: "270"}[want]+")")
		})
	}
}

func TestPinAlternate(t *testing.T) {
	t.Parallel()

	var pin schematic.Pin
	decodeRecord(t, `(pin bidirectional line (at -7.62 2.54 0) (length 2.54)
		(name "PB7" (effects (font (size 1.27 1.27))))
		(number "1" (effects (font (size 1.27 1.27))))
		(alternate "I2C1_SDA" bidirectional line)
		(alternate "TIM4_CH2" output clock))`, &pin)

	assert.Equal(t, schematic.PinElectricalType("bidirectional"), pin.ElectricalType)
	assert.Equal(t, "PB7", pin.Name.Text)
	assert.Equal(t, []schematic.PinAlternate{
		{Name: "I2C1_SDA", ElectricalType: "bidirectional", GraphicStyle: "line"},
		{Name: "TIM4_CH2", ElectricalType: "output", GraphicStyle: "clock"},
	}, pin.Alternate)

	// the placed symbol's pin only names the selected alternate
	var use schematic.PinAssignment
	decodeRecord(t, `(pin "1" (uuid 0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d) (alternate "CLK"))`, &use)
	require.NotNil(t, use.Alternate)
	assert.Equal(t, "CLK", *use.Alternate)
	assert.Equal(t, `(pin "1" (uuid 0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d) (alternate "CLK"))`, encodeRecord(t, use))
}

func TestPinHideAfterGroups(t *testing.T) {
	t.Parallel()

	var pin schematic.Pin
	decodeRecord(t, `(pin power_in line (at 0 0 90) (length 0) hide (name "VCC" (effects (font (size 1.27 1.27)))))`, &pin)

	assert.Equal(t, schematic.PinElectricalType("power_in"), pin.ElectricalType)
	assert.True(t, pin.Hide)
	assert.Equal(t, "VCC", pin.Name.Text)
	assert.Equal(t, [2]float64{1.27, 1.27}, pin.Number.Effects.Font.Size)

	_, err := kicad.Catalog().Marshal(pin)
	require.NoError(t, err)

	var bad schematic.Pin
	expr, err := sexpr.Parse(`(pin sideways line (at 0 0 0) (length 1))`)
	require.NoError(t, err)
	assert.ErrorIs(t, kicad.Catalog().Unmarshal(expr, &bad), marshal.ErrSchemaMismatch)
}

func TestLayerTable(t *testing.T) {
	t.Parallel()

	var table pcb.LayerTable
	decodeRecord(t, `(layers (0 "F.Cu" signal) (31 "B.Cu" power "Ground") (44 "Edge.Cuts" user))`, &table)

	ground := "Ground"
	assert.Equal(t, []pcb.LayerDef{
		{Ordinal: 0, Name: "F.Cu", Type: "signal"},
		{Ordinal: 31, Name: "B.Cu", Type: "power", UserName: &ground},
		{Ordinal: 44, Name: "Edge.Cuts", Type: "user"},
	}, table.Defs)

	assert.Equal(t, `(layers (0 "F.Cu" signal) (31 "B.Cu" power "Ground") (44 "Edge.Cuts" user))`, encodeRecord(t, table))

	// a table KiCad could not read back is refused when writing
	_, err := kicad.Catalog().Marshal(pcb.LayerTable{Defs: []pcb.LayerDef{{Ordinal: 0, Name: "Top", Type: "signal"}}})
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), `"Top" is not a valid LayerName`)
}

func TestDrillWidthWithoutDiameter(t *testing.T) {
	t.Parallel()

	w := 1.79
	_, err := kicad.Catalog().Marshal(pcb.PadDrill{Oval: true, Width: &w})
	require.ErrorIs(t, err, pcb.ErrDrillWidthOnly)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)

	var drill pcb.PadDrill
	decodeRecord(t, `(drill oval 1.79)`, &drill)
	require.NotNil(t, drill.Diameter)
	assert.Nil(t, drill.Width)
	assert.Equal(t, `(drill oval 1.79)`, encodeRecord(t, drill))
}

func TestDocumentWithoutPaper(t *testing.T) {
	t.Parallel()

	sch := schematic.New()
	sch.Paper = nil
	_, err := kicad.EncodeDocument(sch)
	require.ErrorIs(t, err, common.ErrNoPaper)

	board := pcb.New()
	board.Paper = nil
	_, err = kicad.EncodeDocument(board)
	require.ErrorIs(t, err, common.ErrNoPaper)
}

func TestIsLayerDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{`(0 "F.Cu" signal)`, true},
		{`(36 "B.SilkS" user "B.Silkscreen")`, true},
		{`(50 "User.1" user)`, true},
		{`(0 "F.Cu")`, false},
		{`("0" "F.Cu" signal)`, false},
		{`(-1 "F.Cu" signal)`, false},
		{`(+3 "F.Cu" signal)`, false},
		{`(0x1 "F.Cu" signal)`, false},
		{`(0 "Top" signal)`, false},
		{`(0 "F.Cu" copper)`, false},
		{`(net 1 "GND")`, false},
		{`(0 "F.Cu" signal "a" "b")`, false},
	}

	for _, tt := range tests {
		l, err := sexpr.Parse(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, pcb.IsLayerDefinition(l), tt.text)
	}
}

func TestZoneLayers(t *testing.T) {
	t.Parallel()

	var single pcb.Zone
	decodeRecord(t, `(zone (net 0) (net_name "") (layer "F.Cu") (tstamp 1) (hatch edge 0.5) (connect_pads (clearance 0)) (min_thickness 0.25))`, &single)
	assert.Equal(t, []string{"F.Cu"}, single.Layers)

	var multi pcb.Zone
	decodeRecord(t, `(zone (net 0) (net_name "") (layers "F.Cu" "B.Cu") (tstamp 2) (hatch full 0.5) (connect_pads yes (clearance 0)) (min_thickness 0.25))`, &multi)
	assert.Nil(t, multi.Layer)
	assert.Equal(t, []string{"F.Cu", "B.Cu"}, multi.Layers)
	assert.Equal(t, pcb.PadConnection("yes"), multi.ConnectPads.Type)
	assert.Equal(t, pcb.ZoneFillMode("solid"), multi.Fill.Mode)
	assert.True(t, multi.FilledAreasThickness)
}

func TestPadDrill(t *testing.T) {
	t.Parallel()

	f := func(v float64) *float64 { return &v }

	tests := []struct {
		text string
		want pcb.PadDrill
	}{
		{`(drill 0.8)`, pcb.PadDrill{Diameter: f(0.8)}},
		{`(drill oval 1.2 0.8)`, pcb.PadDrill{Oval: true, Diameter: f(1.2), Width: f(0.8)}},
		{`(drill oval 1.2)`, pcb.PadDrill{Oval: true, Diameter: f(1.2)}},
		{`(drill 0.8 (offset 0 0.2))`, pcb.PadDrill{Diameter: f(0.8), Offset: &[2]float64{0, 0.2}}},
	}

	for _, tt := range tests {
		var d pcb.PadDrill
		decodeRecord(t, tt.text, &d)
		assert.Equal(t, tt.want, d, tt.text)
	}
}
