package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "taskeasy://tasks.schema.json"

// tasksSchema describes the persisted blob: an array of task records.
// Numeric ids are allowed for data written by older versions.
const tasksSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "completed"],
		"properties": {
			"id": {
				"oneOf": [
					{"type": "string", "minLength": 1},
					{"type": "number"}
				]
			},
			"title": {"type": "string"},
			"completed": {"type": "boolean"},
			"createdAt": {"type": "string", "format": "date-time"}
		}
	}
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(tasksSchema)); err != nil {
		panic(fmt.Sprintf("add tasks schema: %v", err))
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile tasks schema: %v", err))
	}
	return schema
}

// SchemaError is a blob that parsed as JSON but does not match the schema.
type SchemaError struct {
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return e.Msg
}

// validateBlob checks data against the tasks schema.
func validateBlob(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse tasks: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return firstSchemaError(err)
	}
	return nil
}

// firstSchemaError flattens a jsonschema error tree to its first leaf.
func firstSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &SchemaError{
		Path: jsonPointerToPath(ve.InstanceLocation),
		Msg:  ve.Message,
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&path, "[%d]", idx)
			continue
		}
		if path.Len() > 0 {
			path.WriteByte('.')
		}
		path.WriteString(part)
	}
	return path.String()
}
