package scopedcss

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
)

// WriteGoFile writes the generated constants for styles to path. Styles that
// share a class (byte-identical content) appear in AllStyles and Stylesheet
// once; the number of such repeats is returned.
func WriteGoFile(path, packageName string, styles []Style) (int, error) {
	src, merged := renderGoFile(packageName, styles)

	formatted, err := format.Source(src)
	if err != nil {
		return 0, fmt.Errorf("format generated source: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return merged, nil
}

func renderGoFile(packageName string, styles []Style) ([]byte, int) {
	if packageName == "" {
		packageName = "ui"
	}

	var b bytes.Buffer
	b.WriteString("// Code generated by scopedcss. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", packageName)

	for _, s := range styles {
		fmt.Fprintf(&b, "// %s is compiled from %s.\n", s.GoName, filepath.ToSlash(s.SourceFile))
		b.WriteString("const (\n")
		fmt.Fprintf(&b, "%sClass = %s\n", s.GoName, strconv.Quote(s.Class))
		fmt.Fprintf(&b, "%sCSS = %s\n", s.GoName, strconv.Quote(s.Stylesheet))
		b.WriteString(")\n\n")
	}

	seen := make(map[string]bool)
	var distinct []Style
	merged := 0
	for _, s := range styles {
		if seen[s.Class] {
			merged++
			continue
		}
		seen[s.Class] = true
		distinct = append(distinct, s)
	}

	b.WriteString("// AllStyles maps each generated class to its stylesheet.\n")
	b.WriteString("var AllStyles = map[string]string{\n")
	for _, s := range distinct {
		fmt.Fprintf(&b, "%s: %sCSS,\n", strconv.Quote(s.Class), s.GoName)
	}
	b.WriteString("}\n\n")

	var sheet bytes.Buffer
	for i, s := range distinct {
		if i > 0 {
			sheet.WriteByte('\n')
		}
		sheet.WriteString(s.Stylesheet)
	}
	b.WriteString("// Stylesheet holds every distinct generated stylesheet.\n")
	fmt.Fprintf(&b, "const Stylesheet = %s\n", strconv.Quote(sheet.String()))

	return b.Bytes(), merged
}
