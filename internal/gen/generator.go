package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// Config holds configuration for registration file generation.
type Config struct {
	// PackageName is the name of the package the files belong to.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// MaxTupleArity is the largest covered tuple arity, inclusive.
	MaxTupleArity int
	// MaxArrayLen is the largest covered array length, inclusive.
	MaxArrayLen int
}

// DefaultConfig returns the configuration the shipped registration files
// were generated with.
func DefaultConfig() Config {
	return Config{
		PackageName:   "staticize",
		OutputDir:     ".",
		MaxTupleArity: 16,
		MaxArrayLen:   32,
	}
}

// Generator emits the registration files for a Config.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "tuples_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// registrationTemplate is the single template every combinatorial
// registration file is expanded from.
var registrationTemplate = template.Must(template.New("registration").Parse(
	`// Code generated by staticize-gen. DO NOT EDIT.

package {{.PackageName}}

{{range .Doc}}// {{.}}
{{end}}func {{.FuncName}}(r *Registry) {
{{range .Values}}	r.{{$.Method}}({{.}})
{{end}}}
`))

// fileData holds all data needed for one registration file.
type fileData struct {
	PackageName string
	Doc         []string
	FuncName    string
	Method      string
	Values      []int
}

// Generate emits the tuple-arity and array-length registration files.
func (g *Generator) Generate() ([]GeneratedFile, error) {
	if g.config.MaxTupleArity < 0 || g.config.MaxArrayLen < 0 {
		return nil, fmt.Errorf("coverage bounds must be non-negative, got tuple %d, array %d",
			g.config.MaxTupleArity, g.config.MaxArrayLen)
	}

	files := []struct {
		name string
		data fileData
	}{
		{
			name: "tuples_gen.go",
			data: fileData{
				PackageName: g.config.PackageName,
				Doc: []string{
					"registerTupleArities installs one independent registration per covered",
					"tuple arity.",
				},
				FuncName: "registerTupleArities",
				Method:   "registerTupleArity",
				Values:   seq(g.config.MaxTupleArity),
			},
		},
		{
			name: "arrays_gen.go",
			data: fileData{
				PackageName: g.config.PackageName,
				Doc: []string{
					"registerArrayLens installs one independent registration per covered array",
					"length. The upper bound is a coverage choice with no semantic meaning.",
				},
				FuncName: "registerArrayLens",
				Method:   "registerArrayLen",
				Values:   seq(g.config.MaxArrayLen),
			},
		},
	}

	out := make([]GeneratedFile, 0, len(files))

	for _, file := range files {
		content, err := g.render(file.data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", file.name, err)
		}

		out = append(out, GeneratedFile{Filename: file.name, Content: content})
	}

	return out, nil
}

// render expands the template and formats the result.
func (g *Generator) render(data fileData) ([]byte, error) {
	var buf bytes.Buffer

	err := registrationTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return formatted, nil
}

// seq returns 0..max inclusive.
func seq(max int) []int {
	out := make([]int, 0, max+1)
	for i := 0; i <= max; i++ {
		out = append(out, i)
	}

	return out
}
