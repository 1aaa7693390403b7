package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"staticize"
	"staticize/internal/common"
	"staticize/shape"
)

// LoadMode specifies what information to load from packages. Shape
// derivation needs type information only.
const LoadMode = packages.NeedName | packages.NeedTypes

// Finding describes one exported named type and its staticizability.
type Finding struct {
	PkgPath string
	Name    string
	Shape   shape.Shape // derived descriptor, zero when Err is a derivation failure
	Static  shape.Shape // resolved longest-lived form, zero when Err is set
	Err     error       // nil when the type is supported
}

// String returns the qualified type name, e.g. "staticize/options.FeatureEnum".
func (f Finding) String() string {
	if f.PkgPath == "" {
		return f.Name
	}

	return f.PkgPath + "." + f.Name
}

// Report holds the findings for every exported named type of the checked
// packages, in load order.
type Report struct {
	Findings []Finding
}

// Unsupported returns the findings whose types have no static form.
func (r *Report) Unsupported() []Finding {
	var out []Finding

	for _, f := range r.Findings {
		if f.Err != nil {
			out = append(out, f)
		}
	}

	return out
}

// Ok reports whether every checked type is supported.
func (r *Report) Ok() bool {
	return common.IsEmpty(r.Unsupported())
}

// Analyzer loads Go packages and checks their exported named types against
// a registry.
type Analyzer struct {
	registry *staticize.Registry
}

// NewAnalyzer creates a new Analyzer checking against the given registry.
func NewAnalyzer(registry *staticize.Registry) *Analyzer {
	return &Analyzer{registry: registry}
}

// Check loads the specified packages and derives and resolves the shape of
// every exported named type. Patterns are standard Go package patterns
// (e.g. "./...", "staticize/shape"). Load or syntax errors fail the whole
// check; unsupported types are findings, not errors.
func (a *Analyzer) Check(patterns ...string) (*Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if !common.IsEmpty(errs) {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	report := &Report{}
	for _, pkg := range pkgs {
		report.Findings = append(report.Findings, a.checkPackage(pkg)...)
	}

	return report, nil
}

// checkPackage derives findings for the exported named types of one package.
func (a *Analyzer) checkPackage(pkg *packages.Package) []Finding {
	var out []Finding

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		finding := Finding{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		s, err := ShapeOf(typeName.Type())
		if err != nil {
			finding.Err = err
			out = append(out, finding)

			continue
		}

		finding.Shape = s

		static, err := a.registry.Resolve(s)
		if err != nil {
			finding.Err = err
			out = append(out, finding)

			continue
		}

		finding.Static = static
		out = append(out, finding)
	}

	return out
}
