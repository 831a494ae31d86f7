// Package tool implements the discovery/execute protocol core: static
// capability descriptors, the registry of named tools, request parameter
// extraction and the platform response envelope.
package tool

import "github.com/descware/descgen/internal/describe"

// ParamItems describes the element type of an array parameter.
type ParamItems struct {
	Type string `json:"type"`
}

// Param is one entry in a tool's parameter schema.
type Param struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Example     string      `json:"example,omitempty"`
	Items       *ParamItems `json:"items,omitempty"`
}

// Definition is the capability descriptor served by discovery. Built once
// at startup and never mutated, so repeated discovery calls serialize
// byte-identically.
type Definition struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Version          string   `json:"version"`
	Parameters       []Param  `json:"parameters"`
	Endpoint         string   `json:"endpoint"`
	HTTPMethod       string   `json:"http_method"`
	AuthRequirements []string `json:"auth_requirements"`
}

// Tool is one executable capability. Implementations must be stateless
// across calls and safe for concurrent use.
type Tool interface {
	Definition() Definition
	Execute(params map[string]any) (*describe.Result, error)
}
