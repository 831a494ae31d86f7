package tool

import "github.com/descware/descgen/internal/describe"

// Metadata echoes tool identity and request facts back to the caller.
type Metadata struct {
	Tool           string `json:"tool"`
	Version        string `json:"version"`
	ProductName    string `json:"productName"`
	PartNumber     string `json:"partNumber"`
	AttributeCount int    `json:"attributeCount"`
}

// Response is the execute response envelope. Content duplicates
// Result.Content at the top level for caller convenience.
type Response struct {
	Success  bool             `json:"success"`
	Result   *describe.Result `json:"result,omitempty"`
	Content  string           `json:"content,omitempty"`
	Metadata *Metadata        `json:"metadata,omitempty"`
	Error    string           `json:"error,omitempty"`
	Details  string           `json:"details,omitempty"`
}

// SuccessResponse wraps a synthesis result in the platform envelope.
func SuccessResponse(def Definition, res *describe.Result) Response {
	return Response{
		Success: true,
		Result:  res,
		Content: res.Content,
		Metadata: &Metadata{
			Tool:           def.Name,
			Version:        def.Version,
			ProductName:    res.ProductName,
			PartNumber:     res.PartNumber,
			AttributeCount: res.AttributeCount,
		},
	}
}

// ErrorResponse builds a failure envelope. Details is optional diagnostic
// text; callers decide whether the configuration warrants including it.
func ErrorResponse(message, details string) Response {
	return Response{
		Success: false,
		Error:   message,
		Details: details,
	}
}
