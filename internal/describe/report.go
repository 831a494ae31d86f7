package describe

import (
	"fmt"
	"strings"

	"github.com/descware/descgen/internal/attr"
)

// ReportStrategy renders a structured markdown report with a fixed section
// skeleton. It has no length cap.
type ReportStrategy struct{}

func (ReportStrategy) Name() string { return "report" }

// genericFeatures are emitted when no attributes were supplied, so the Key
// Features section is never empty.
var genericFeatures = []string{
	"Premium build quality",
	"Reliable everyday performance",
	"Designed with the end user in mind",
}

func (ReportStrategy) Describe(req Request, attrs attr.Set) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", req.ProductName))
	sb.WriteString(fmt.Sprintf("**Part Number:** %s\n\n", req.PartNumber))

	sb.WriteString("## Overview\n\n")
	sb.WriteString(fmt.Sprintf("The %s is a high-quality product engineered for consistent, reliable performance.", req.ProductName))
	if attrs.Len() > 0 {
		sb.WriteString(fmt.Sprintf(" It features %d key attributes that distinguish it in its class.", attrs.Len()))
	}
	sb.WriteString("\n\n")

	sb.WriteString("## Key Features\n\n")
	n := 1
	if attrs.Len() > 0 {
		for _, a := range attrs.Attrs() {
			sb.WriteString(fmt.Sprintf("%d. **%s** — built to meet demanding requirements\n", n, a.Original))
			n++
		}
	} else {
		for _, f := range genericFeatures {
			sb.WriteString(fmt.Sprintf("%d. %s\n", n, f))
			n++
		}
	}
	sb.WriteString(fmt.Sprintf("%d. Quality assurance backed by rigorous testing\n", n))
	n++
	sb.WriteString(fmt.Sprintf("%d. Dedicated customer support\n\n", n))

	sb.WriteString("## Technical Specifications\n\n")
	sb.WriteString(fmt.Sprintf("Refer to part number %s for complete technical documentation and compatibility details.\n\n", req.PartNumber))

	sb.WriteString("## Product Attributes\n\n")
	if attrs.Len() > 0 {
		for _, a := range attrs.Attrs() {
			sb.WriteString(fmt.Sprintf("- %s\n", a.Original))
		}
	} else {
		sb.WriteString("- No additional attributes specified\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Why Choose This Product\n\n")
	sb.WriteString("- Trusted quality and consistent performance\n")
	sb.WriteString("- Competitive value for the capability delivered\n")
	sb.WriteString("- Straightforward ordering by part number\n")
	if attrs.Len() > 3 {
		sb.WriteString("- Extensive feature set covering a wide range of needs\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Applications\n\n")
	sb.WriteString("- Commercial installations\n")
	sb.WriteString("- Industrial environments\n")
	sb.WriteString("- Professional trade use\n\n")
	if attrs.Len() > 0 {
		sb.WriteString(fmt.Sprintf("With %d documented attributes, the %s adapts to a broad range of applications.\n\n", attrs.Len(), req.ProductName))
	} else {
		sb.WriteString(fmt.Sprintf("Its versatile design makes the %s suitable for a broad range of applications.\n\n", req.ProductName))
	}

	sb.WriteString(fmt.Sprintf("*%s — Part Number: %s*\n", req.ProductName, req.PartNumber))

	return sb.String()
}
