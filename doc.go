// Package scopedcss compiles scoped style templates into class-bound CSS.
//
// A template is CSS in which & stands for "this component's root" and
// [[expr]] marks a value supplied by the caller:
//
//	res, err := scopedcss.Compile(`& { background: [[bg]]; } &:hover { opacity: .8 }`, "#4ecdc4")
//	// res.Class      == "css-xxxxxxxx"
//	// res.Stylesheet == ".css-xxxxxxxx{background:#4ecdc4}.css-xxxxxxxx:hover{opacity:.8}"
//
// # Pipeline
//
//  1. Scan splits the template into literal chunks and [[...]] spans.
//  2. Assemble fills the spans with values in left-to-right order.
//  3. GenerateID hashes the assembled content: "css-" + the first four bytes
//     of its SHA-256 digest as eight hex digits.
//  4. RewriteScope replaces every & with "." + the identifier.
//  5. A Normalizer validates the result and prints it, minified or not.
//
// Identical assembled content always yields the identical class, so equal
// styles deduplicate. The & rewrite is textual and also applies inside
// comments and strings.
//
// # Values
//
// Compile takes values by position. CompileWith takes a Resolver, such as a
// MapResolver loaded with LoadValues, and looks each expression up by name.
//
// # Generation
//
// Generate compiles every template under a directory and writes a Go file of
// Class and CSS constants:
//
//	result, err := scopedcss.Generate(scopedcss.Config{
//		SourceDir:   "web/styles",
//		OutputDir:   "internal/web/ui",
//		PackageName: "ui",
//		Minify:      true,
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/scopedcss/cmd/scopedcss@latest
package scopedcss
