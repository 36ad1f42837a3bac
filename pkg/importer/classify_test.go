// Unit tests for keyword classification.
package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		identifier  string
		description string
		want        string
	}{
		{
			name:       "74-series identifier is an IC",
			identifier: "74HC595",
			want:       types.CategoryIC,
		},
		{
			name:        "IC keyword in the description",
			identifier:  "NE555",
			description: "timer IC",
			want:        types.CategoryIC,
		},
		{
			name:       "LM prefix is an IC",
			identifier: "LM358",
			want:       types.CategoryIC,
		},
		{
			name:        "resistor keyword in the description",
			identifier:  "R10K",
			description: "10k ohm resistor",
			want:        types.CategoryResistor,
		},
		{
			name:       "capacitance code in the identifier",
			identifier: "C100NF",
			want:       types.CategoryCapacitor,
		},
		{
			name:        "diode keyword in the description",
			identifier:  "1N4148",
			description: "switching diode",
			want:        types.CategoryDiode,
		},
		{
			name:       "IRF identifier is a transistor",
			identifier: "IRF540",
			want:       types.CategoryTransistors,
		},
		{
			name:        "LED parts are other components, not diodes",
			identifier:  "LED-RED-5MM",
			description: "red diode LED",
			want:        types.CategoryOther,
		},
		{
			name:       "unrecognized parts fall back to other components",
			identifier: "XYZ123",
			want:       types.CategoryOther,
		},
		{
			name:        "classification is case-insensitive",
			identifier:  "bc547",
			description: "npn transistor",
			want:        types.CategoryTransistors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.identifier, tt.description))
		})
	}
}
