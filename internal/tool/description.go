package tool

import (
	"fmt"

	"github.com/descware/descgen/internal/describe"
)

// DescriptionTool wraps a describe.Synthesizer as a protocol tool.
type DescriptionTool struct {
	def Definition
	syn *describe.Synthesizer
}

// NewDescriptionTool builds the product description tool with its static
// definition. The served strategy is whatever the synthesizer was
// constructed with.
func NewDescriptionTool(syn *describe.Synthesizer, version string) *DescriptionTool {
	return &DescriptionTool{
		syn: syn,
		def: Definition{
			Name:        "generate_product_description",
			Description: "Generates a product description from a product name, part number and a list of key: value attribute strings.",
			Version:     version,
			Parameters: []Param{
				{
					Name:        "productName",
					Type:        "string",
					Description: "Product name or title",
					Required:    true,
					Example:     "DEWALT 20V Acrylic Dispenser",
				},
				{
					Name:        "partNumber",
					Type:        "string",
					Description: "Manufacturer part number",
					Required:    true,
					Example:     "211DCE595D1",
				},
				{
					Name:        "attributes",
					Type:        "array",
					Description: "Product attributes as 'Key: Value' strings; may be empty",
					Required:    false,
					Items:       &ParamItems{Type: "string"},
				},
				{
					Name:        "type",
					Type:        "string",
					Description: "Style category: general or ecommerce (default general)",
					Required:    false,
				},
				{
					Name:        "tone",
					Type:        "string",
					Description: "Tone hint: professional or casual (default professional)",
					Required:    false,
				},
			},
			Endpoint:         "/",
			HTTPMethod:       "POST",
			AuthRequirements: []string{},
		},
	}
}

// Definition returns the static capability descriptor.
func (t *DescriptionTool) Definition() Definition {
	return t.def
}

// Execute coerces the extracted parameter map into a description request
// and runs synthesis. Returns *describe.ValidationError for missing
// required fields.
func (t *DescriptionTool) Execute(params map[string]any) (*describe.Result, error) {
	return t.syn.Describe(describe.Request{
		ProductName: stringParam(params, "productName"),
		PartNumber:  stringParam(params, "partNumber"),
		Attributes:  stringSliceParam(params, "attributes"),
		Type:        stringParam(params, "type"),
		Tone:        stringParam(params, "tone"),
	})
}

func stringParam(params map[string]any, name string) string {
	if v, ok := params[name].(string); ok {
		return v
	}
	return ""
}

// stringSliceParam reads an array parameter. Non-string elements are
// stringified rather than rejected, matching the parser's permissiveness.
func stringSliceParam(params map[string]any, name string) []string {
	raw, ok := params[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			out[i] = s
		} else {
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
