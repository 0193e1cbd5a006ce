// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// patternFromSchema compiles the JSON Schema at path and extracts a
// "pattern" keyword to generate strings for: the schema's own top-level
// pattern if it has one, otherwise the first pattern found among its
// direct properties, walking the compiled *jsonschema.Schema property by
// property.
func patternFromSchema(path string) (string, error) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(path)
	if err != nil {
		return "", fmt.Errorf("compiling schema %s: %w", path, err)
	}

	if schema.Pattern != nil {
		return schema.Pattern.String(), nil
	}
	for _, prop := range schema.Properties {
		if prop.Pattern != nil {
			return prop.Pattern.String(), nil
		}
	}
	return "", fmt.Errorf("schema %s has no \"pattern\" keyword at its top level or direct properties", path)
}
