package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"TitleBlock", []string{"Title", "Block"}},
		{"PCBPlotParams", []string{"PCB", "Plot", "Params"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"bus_entry", []string{"bus", "entry"}},
		{"lib-id name", []string{"lib", "id", "name"}},
		{"libID", []string{"lib", "ID"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"TitleBlock":     "title_block",
		"InBOM":          "in_bom",
		"PCBPlotParams":  "pcb_plot_params",
		"LibID":          "lib_id",
		"UUID":           "uuid",
		"XY":             "xy",
		"already_snake":  "already_snake",
		"GraphicTextBox": "graphic_text_box",
	}

	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "titleblock", Fold("TitleBlock"))
	assert.Equal(t, "titleblock", Fold("title_block"))
	assert.Equal(t, "titleblock", Fold("title-block"))
	assert.Empty(t, Fold("_-"))
}
