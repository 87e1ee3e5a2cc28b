// Package tools exposes the Tandoor tool catalog: a static registry of tool
// specifications, a dispatcher that validates and routes incoming calls, and
// one handler per tool translating the call into Tandoor API requests.
package tools

import "sort"

// Spec declares a tool's name and input shape.
type Spec struct {
	Name        string
	Description string
	Parameters  map[string]ParameterSpec
}

// ParameterSpec defines the specification for a tool parameter
type ParameterSpec struct {
	// Type is the data type of the parameter (string, integer, number, boolean, array)
	Type string

	// Description describes what the parameter is for
	Description string

	// Required indicates if the parameter is required
	Required bool

	// Default is the default value for the parameter
	Default interface{}

	// Items is the type of the items in the parameter
	Items *ParameterSpec
}

// InputSchema renders the spec as a JSON Schema object document for MCP
// registration.
func (s Spec) InputSchema() map[string]interface{} {
	properties := map[string]interface{}{}
	var required []string

	for name, param := range s.Parameters {
		prop := map[string]interface{}{}
		if param.Type != "" {
			prop["type"] = param.Type
		}
		if param.Description != "" {
			prop["description"] = param.Description
		}
		if param.Default != nil {
			prop["default"] = param.Default
		}
		if param.Items != nil {
			items := map[string]interface{}{}
			if param.Items.Type != "" {
				items["type"] = param.Items.Type
			}
			if param.Items.Description != "" {
				items["description"] = param.Items.Description
			}
			prop["items"] = items
		}
		properties[name] = prop

		if param.Required {
			required = append(required, name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		sort.Strings(required)
		schema["required"] = required
	}
	return schema
}
