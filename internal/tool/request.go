package tool

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MalformedRequestError reports a request body that is not valid JSON or
// does not match any accepted parameter-wrapper shape.
type MalformedRequestError struct {
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return e.Reason
}

// wrapperKeys are the accepted parameter nesting shapes, in priority
// order. The first key present wins; a flat body is the fallback.
var wrapperKeys = []string{"parameters", "arguments", "input"}

// ExtractParams unwraps an execute request body into a flat parameter map.
// Bodies may nest parameters under "parameters", "arguments" or "input",
// or carry them at the top level.
func ExtractParams(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &MalformedRequestError{Reason: "request body is empty"}
	}

	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, &MalformedRequestError{Reason: "request body is not valid JSON"}
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &MalformedRequestError{Reason: "request body must be a JSON object"}
	}

	for _, key := range wrapperKeys {
		if v, present := obj[key]; present {
			nested, ok := v.(map[string]any)
			if !ok {
				return nil, &MalformedRequestError{Reason: fmt.Sprintf("%q must be a JSON object", key)}
			}
			return nested, nil
		}
	}
	return obj, nil
}
