package describe

import (
	"fmt"
	"strings"

	"github.com/descware/descgen/internal/attr"
)

// SummaryStrategy is the simplest renderer: product identity plus a plain
// dump of the raw attribute strings, capped at 500 characters.
type SummaryStrategy struct{}

func (SummaryStrategy) Name() string { return "summary" }

func (SummaryStrategy) Describe(req Request, attrs attr.Set) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s (Part# %s) is available for order.", req.ProductName, req.PartNumber))
	if attrs.Len() > 0 {
		originals := make([]string, attrs.Len())
		for i, a := range attrs.Attrs() {
			originals[i] = a.Original
		}
		sb.WriteString(fmt.Sprintf(" Product details: %s.", strings.Join(originals, ", ")))
	}

	return truncate(sb.String())
}
