package tool

import (
	"errors"
	"testing"

	"github.com/descware/descgen/internal/describe"
)

func newTestTool() *DescriptionTool {
	return NewDescriptionTool(describe.New(describe.SentenceStrategy{}), "1.0.0")
}

func TestExtractParams_WrapperShapes(t *testing.T) {
	bodies := map[string]string{
		"parameters": `{"parameters": {"productName": "X", "partNumber": "Y"}}`,
		"arguments":  `{"arguments": {"productName": "X", "partNumber": "Y"}}`,
		"input":      `{"input": {"productName": "X", "partNumber": "Y"}}`,
		"flat":       `{"productName": "X", "partNumber": "Y"}`,
	}

	for shape, body := range bodies {
		params, err := ExtractParams([]byte(body))
		if err != nil {
			t.Fatalf("shape %s: unexpected error: %v", shape, err)
		}
		if params["productName"] != "X" || params["partNumber"] != "Y" {
			t.Errorf("shape %s: wrong params extracted: %v", shape, params)
		}
	}
}

func TestExtractParams_PriorityOrder(t *testing.T) {
	body := `{"arguments": {"productName": "from-arguments"}, "parameters": {"productName": "from-parameters"}}`

	params, err := ExtractParams([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params["productName"] != "from-parameters" {
		t.Errorf("expected parameters wrapper to win, got %v", params["productName"])
	}
}

func TestExtractParams_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty body":     "",
		"whitespace":     "   \n",
		"invalid json":   `{"productName": `,
		"non-object":     `["productName"]`,
		"scalar":         `42`,
		"wrapper scalar": `{"parameters": "not an object"}`,
		"wrapper array":  `{"arguments": []}`,
	}

	for name, body := range cases {
		_, err := ExtractParams([]byte(body))
		var merr *MalformedRequestError
		if !errors.As(err, &merr) {
			t.Errorf("%s: expected MalformedRequestError, got %v", name, err)
		}
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	if _, err := NewRegistry(newTestTool(), newTestTool()); err == nil {
		t.Error("expected duplicate tool name error")
	}
}

func TestRegistry_ListsInRegistrationOrder(t *testing.T) {
	dt := newTestTool()
	reg, err := NewRegistry(dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defs := reg.Definitions()
	if len(defs) != 1 || defs[0].Name != "generate_product_description" {
		t.Errorf("unexpected definitions: %v", defs)
	}

	got, ok := reg.Get("generate_product_description")
	if !ok || got != Tool(dt) {
		t.Error("expected Get to return the registered tool")
	}
	if _, ok := reg.Get("nope"); ok {
		t.Error("expected miss for unknown tool")
	}
}

func TestDescriptionTool_Execute(t *testing.T) {
	res, err := newTestTool().Execute(map[string]any{
		"productName": "Test Product",
		"partNumber":  "TP-001",
		"attributes":  []any{"Feature 1", "Feature 2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AttributeCount != 2 {
		t.Errorf("expected 2 attributes, got %d", res.AttributeCount)
	}
	if res.Content == "" {
		t.Error("expected non-empty content")
	}
}

func TestDescriptionTool_ExecuteMissingFields(t *testing.T) {
	_, err := newTestTool().Execute(map[string]any{"productName": "X"})

	var verr *describe.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Missing) != 1 || verr.Missing[0] != "partNumber" {
		t.Errorf("expected partNumber missing, got %v", verr.Missing)
	}
}

func TestDescriptionTool_StringifiesNonStringAttributes(t *testing.T) {
	res, err := newTestTool().Execute(map[string]any{
		"productName": "X",
		"partNumber":  "Y",
		"attributes":  []any{"Voltage: 20", float64(42)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AttributeCount != 2 {
		t.Errorf("expected non-string element kept, got count %d", res.AttributeCount)
	}
}

func TestSuccessResponse_Shape(t *testing.T) {
	dt := newTestTool()
	res, err := dt.Execute(map[string]any{"productName": "X", "partNumber": "Y"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp := SuccessResponse(dt.Definition(), res)
	if !resp.Success {
		t.Error("expected success flag")
	}
	if resp.Content != res.Content {
		t.Error("expected content duplicated at top level")
	}
	if resp.Metadata == nil || resp.Metadata.Tool != "generate_product_description" || resp.Metadata.Version != "1.0.0" {
		t.Errorf("unexpected metadata: %+v", resp.Metadata)
	}
}
