package schema

import "fmt"

// UnsupportedTypeError reports an Ansible type tag that has no JSON Schema
// equivalent. A build step that hits one must abort: guessing a type would
// corrupt the emitted schema silently.
type UnsupportedTypeError struct {
	Tag string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unable to map ansible type %q to a JSON Schema type", e.Tag)
}

// MapType returns the JSON Schema type for a given Ansible type tag.
// See https://json-schema.org/understanding-json-schema/reference/type.html
func MapType(tag string) (string, error) {
	switch tag {
	// raw is used by ansible for file modes
	case "str", "filename", "path", "raw", "sid":
		return "string", nil
	case "list":
		return "array", nil
	case "bool":
		return "boolean", nil
	case "int":
		return "integer", nil
	case "dict", "jsonarg", "json":
		return "object", nil
	case "float":
		return "number", nil
	}
	return "", &UnsupportedTypeError{Tag: tag}
}
