package describe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/descware/descgen/internal/attr"
)

// SentenceStrategy renders one compact natural-language paragraph, capped
// at 500 characters.
type SentenceStrategy struct{}

func (SentenceStrategy) Name() string { return "sentence" }

// internalPrefix marks catalog-internal attribute keys that never belong
// in customer-facing feature text.
const internalPrefix = "cs_"

const (
	cordedKey   = "cordless / corded"
	brandKey    = "brand"
	warrantyKey = "cs_manufacturer_warranty"
)

// powerKeys are the attribute keys that indicate a powered product.
var powerKeys = []string{"battery voltage (v)", "voltage", "power"}

// priorityKeys sort ahead of all other attributes when picking feature
// highlights.
var priorityKeys = map[string]bool{
	"capacity":       true,
	"cartridge type": true,
	"weight":         true,
	"dimensions":     true,
	"material":       true,
}

func (SentenceStrategy) Describe(req Request, attrs attr.Set) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("The %s (Part# %s) ", req.ProductName, req.PartNumber))
	sb.WriteString(openingClause(req, attrs))

	if clause := featureClause(attrs); clause != "" {
		sb.WriteString(clause)
	}

	if brand, ok := attrs.Get(brandKey); ok && brand != "" {
		sb.WriteString(fmt.Sprintf("Manufactured by %s, a name professionals trust. ", brand))
	}

	sb.WriteString(closingClause(attrs))

	return truncate(strings.TrimSpace(sb.String()))
}

// openingClause picks one of four templates based on whether the product
// is powered and whether it is cordless. The ecommerce/professional
// type-tone pair selects more elaborate phrasing; every other combination
// takes the default branch.
func openingClause(req Request, attrs attr.Set) string {
	hasPower := false
	for _, k := range powerKeys {
		if attrs.Has(k) {
			hasPower = true
			break
		}
	}
	corded, _ := attrs.Get(cordedKey)
	isCordless := strings.EqualFold(corded, "cordless")
	elaborate := strings.EqualFold(req.Type, "ecommerce") && strings.EqualFold(req.Tone, "professional")

	switch {
	case hasPower && isCordless:
		if elaborate {
			return "delivers dependable cordless power for demanding jobs, pairing battery-driven performance with go-anywhere freedom. "
		}
		return "is a cordless, battery-powered tool built for dependable performance. "
	case hasPower:
		if elaborate {
			return "delivers consistent powered performance engineered for demanding professional use. "
		}
		return "is a powered tool built for dependable performance. "
	case isCordless:
		if elaborate {
			return "offers untethered cordless convenience without compromising build quality. "
		}
		return "is a cordless product designed for convenient, unrestricted use. "
	default:
		if elaborate {
			return "combines thoughtful engineering with everyday practicality. "
		}
		return "is a quality product designed for reliable use. "
	}
}

// featureClause selects up to three customer-facing attributes and renders
// them as a single sentence. Returns "" when nothing qualifies.
func featureClause(attrs attr.Set) string {
	var qualified []attr.Attribute
	for _, a := range attrs.Attrs() {
		if strings.HasPrefix(a.Key, internalPrefix) {
			continue
		}
		if a.Key == brandKey || a.Key == cordedKey {
			continue
		}
		if strings.EqualFold(a.Value, "yes") || strings.EqualFold(a.Value, "no") {
			continue
		}
		if len(a.Value) < 3 {
			continue
		}
		qualified = append(qualified, a)
	}
	if len(qualified) == 0 {
		return ""
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return priorityKeys[qualified[i].Key] && !priorityKeys[qualified[j].Key]
	})
	if len(qualified) > 3 {
		qualified = qualified[:3]
	}

	parts := make([]string, len(qualified))
	for i, a := range qualified {
		parts[i] = highlight(a)
	}
	return fmt.Sprintf("It features %s. ", strings.Join(parts, ", "))
}

// highlight renders one feature. Short values that don't already mention
// the key get a "key: " prefix so the reader has context.
func highlight(a attr.Attribute) string {
	words := strings.Fields(a.Key)
	if len(a.Value) < 15 && len(words) > 0 && !strings.Contains(strings.ToLower(a.Value), words[0]) {
		return fmt.Sprintf("%s: %s", a.Key, a.Value)
	}
	return a.Value
}

// closingClause builds the warranty sentence when the catalog carries a
// manufacturer warranty, otherwise a fixed generic closer. Warranty values
// like "3 Year Limited Warranty / Lifetime Service" reduce to
// "3 Year Limited".
func closingClause(attrs attr.Set) string {
	if w, ok := attrs.Get(warrantyKey); ok {
		if cut := strings.Index(w, "/"); cut >= 0 {
			w = w[:cut]
		}
		w = strings.TrimSpace(w)
		if strings.HasSuffix(strings.ToLower(w), "warranty") {
			w = strings.TrimSpace(w[:len(w)-len("warranty")])
		}
		if w != "" {
			return fmt.Sprintf("Backed by a %s manufacturer warranty.", w)
		}
	}
	return "Built to deliver long-lasting, dependable service."
}
