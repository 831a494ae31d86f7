// Package describe turns a product name, part number and parsed attributes
// into description text. Three interchangeable strategies exist; which one a
// process serves is fixed at startup from config.
package describe

import (
	"fmt"
	"strings"

	"github.com/descware/descgen/internal/attr"
)

// Defaults applied when the caller omits the optional style hints.
const (
	DefaultType = "general"
	DefaultTone = "professional"
)

// maxContentLength is the hard cap applied by the sentence and summary
// strategies. Truncated output is exactly this long and ends with "...".
const maxContentLength = 500

// Request is one description job. Attributes may be nil or empty.
type Request struct {
	ProductName string   `json:"productName"`
	PartNumber  string   `json:"partNumber"`
	Attributes  []string `json:"attributes"`
	Type        string   `json:"type"`
	Tone        string   `json:"tone"`
}

// Result is the synthesis output plus echoed metadata for the caller.
type Result struct {
	Content        string `json:"content"`
	ProductName    string `json:"productName"`
	PartNumber     string `json:"partNumber"`
	AttributeCount int    `json:"attributeCount"`
}

// ValidationError reports blank or missing required fields.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	details := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		details[i] = f + " is required"
	}
	return strings.Join(details, "; ")
}

// Validate checks the required fields. Whitespace-only values count as
// blank. Attributes is optional: a nil or empty list is valid input.
func Validate(req Request) error {
	var missing []string
	if strings.TrimSpace(req.ProductName) == "" {
		missing = append(missing, "productName")
	}
	if strings.TrimSpace(req.PartNumber) == "" {
		missing = append(missing, "partNumber")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Strategy is one synthesis algorithm. Implementations are pure functions
// of their inputs and safe for concurrent use.
type Strategy interface {
	Name() string
	Describe(req Request, attrs attr.Set) string
}

// StrategyByName resolves a config strategy name. An empty name selects
// the sentence strategy.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sentence":
		return SentenceStrategy{}, nil
	case "report":
		return ReportStrategy{}, nil
	case "summary":
		return SummaryStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (expected sentence, report or summary)", name)
	}
}

// Synthesizer binds a strategy to the validate/parse/describe pipeline.
type Synthesizer struct {
	strategy Strategy
}

// New creates a synthesizer using the given strategy.
func New(strategy Strategy) *Synthesizer {
	return &Synthesizer{strategy: strategy}
}

// Strategy returns the bound strategy.
func (s *Synthesizer) Strategy() Strategy {
	return s.strategy
}

// Describe validates the request, parses its attributes and produces the
// description. The only error it returns is *ValidationError.
func (s *Synthesizer) Describe(req Request) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Type) == "" {
		req.Type = DefaultType
	}
	if strings.TrimSpace(req.Tone) == "" {
		req.Tone = DefaultTone
	}

	attrs := attr.Parse(req.Attributes)

	return &Result{
		Content:        s.strategy.Describe(req, attrs),
		ProductName:    req.ProductName,
		PartNumber:     req.PartNumber,
		AttributeCount: attrs.Len(),
	}, nil
}

// truncate enforces the content length cap.
func truncate(s string) string {
	if len(s) > maxContentLength {
		return s[:maxContentLength-3] + "..."
	}
	return s
}
