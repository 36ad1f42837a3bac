// This file implements keyword classification of components onto the
// built-in category names.
package importer

import (
	"strings"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

// classifyRule maps keyword patterns to a category name. Keywords match in
// the identifier or the description; prefixes match the identifier only.
type classifyRule struct {
	category     string
	keywords     []string
	codePatterns []string // contained in the identifier only, e.g. value suffixes
	prefixes     []string
}

// classifyRules are evaluated in order; the first match wins. ICs come first
// so "LM358 driver IC" does not fall through to a later rule.
var classifyRules = []classifyRule{
	{
		category: types.CategoryIC,
		keywords: []string{"IC", "LM", "MC", "OPAMP", "OP-AMP", "REGULATOR", "DRIVER", "BUFFER", "INVERTER"},
	},
	{
		category: types.CategoryResistor,
		keywords: []string{"RESISTOR", "OHM", "RES"},
		prefixes: []string{"R_"},
	},
	{
		category:     types.CategoryCapacitor,
		keywords:     []string{"CAPACITOR", "CAP"},
		codePatterns: []string{"UF", "NF", "PF"},
		prefixes:     []string{"C_"},
	},
	{
		category: types.CategoryDiode,
		keywords: []string{"DIODE"},
		prefixes: []string{"D_"},
	},
	{
		category: types.CategoryTransistors,
		keywords: []string{"TRANSISTOR", "FET", "IRF"},
		prefixes: []string{"T_"},
	},
}

// Classify guesses a built-in category from a component's identifier and
// description. LED parts belong to OTHER COMPONENTS rather than DIODE, and
// 74-series logic identifiers are ICs regardless of description.
func Classify(identifier, description string) string {
	code := strings.ToUpper(identifier)
	desc := strings.ToUpper(description)

	if strings.Contains(code, "LED") {
		return types.CategoryOther
	}
	if strings.HasPrefix(code, "74") {
		return types.CategoryIC
	}

	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(code, kw) || strings.Contains(desc, kw) {
				return rule.category
			}
		}
		for _, pat := range rule.codePatterns {
			if strings.Contains(code, pat) {
				return rule.category
			}
		}
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(code, prefix) {
				return rule.category
			}
		}
	}
	return types.CategoryOther
}
