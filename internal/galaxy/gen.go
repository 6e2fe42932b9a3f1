package galaxy

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"slices"
)

// WritePlatformsFile renders the platforms table as a generated Go source
// file in the models package. Keys and releases are sorted so that refreshes
// against unchanged API data produce no diff.
func WritePlatformsFile(path string, platforms map[string][]string) error {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by \"schemas platforms\"; DO NOT EDIT.\n")
	buf.WriteString("\npackage models\n\n")
	buf.WriteString("// GalaxyPlatforms maps each Galaxy platform name to its known releases.\n")
	buf.WriteString("var GalaxyPlatforms = map[string][]string{\n")

	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		releases := slices.Clone(platforms[name])
		slices.Sort(releases)
		fmt.Fprintf(&buf, "\t%q: {", name)
		for i, release := range releases {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%q", release)
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format platforms file: %w", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write platforms file: %w", err)
	}
	return nil
}
