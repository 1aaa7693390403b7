// Package main provides the CLI entrypoint for staticize-gen.
//
// staticize-gen is the build tooling of the staticize library:
//   - gen regenerates the combinatorial registration files (tuple arities,
//     array lengths) from their template
//   - check loads Go packages and reports every exported named type that
//     has no longest-lived form, before any affected code runs
package main

import (
	"flag"
	"fmt"
	"os"

	"staticize"
	"staticize/internal/analyze"
	"staticize/internal/common"
	"staticize/internal/gen"
	"staticize/options"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	default:
		usage()
		os.Exit(2)

	case "gen":
		err = runGen(os.Args[2:])

	case "check":
		err = runCheck(os.Args[2:])
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "staticize-gen:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: staticize-gen gen [-out dir] [-pkg name] [-max-tuple n] [-max-array n]")
	fmt.Fprintln(os.Stderr, "       staticize-gen check [-features base|lite|full] [packages]")
}

func runGen(args []string) error {
	def := gen.DefaultConfig()

	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	out := fs.String("out", def.OutputDir, "output directory")
	pkg := fs.String("pkg", def.PackageName, "package name of the generated files")
	maxTuple := fs.Int("max-tuple", def.MaxTupleArity, "largest covered tuple arity, inclusive")
	maxArray := fs.Int("max-array", def.MaxArrayLen, "largest covered array length, inclusive")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	cfg := gen.Config{
		PackageName:   *pkg,
		OutputDir:     *out,
		MaxTupleArity: *maxTuple,
		MaxArrayLen:   *maxArray,
	}

	files, err := gen.NewGenerator(cfg).Generate()
	if err != nil {
		return err
	}

	err = gen.WriteFiles(files, cfg.OutputDir)
	if err != nil {
		return err
	}

	for _, file := range files {
		fmt.Println("wrote", file.Filename)
	}

	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	features := fs.String("features", "full", "container registration set: base, lite or full")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	mask, err := parseFeatures(*features)
	if err != nil {
		return err
	}

	patterns := fs.Args()
	if common.IsEmpty(patterns) {
		patterns = []string{"./..."}
	}

	report, err := analyze.NewAnalyzer(staticize.New(mask)).Check(patterns...)
	if err != nil {
		return err
	}

	for _, f := range report.Findings {
		if f.Err != nil {
			fmt.Printf("%s: unsupported: %v\n", f, f.Err)

			continue
		}

		fmt.Printf("%s => %s\n", f, f.Static)
	}

	if !report.Ok() {
		return fmt.Errorf("%d of %d exported types have no static form",
			len(report.Unsupported()), len(report.Findings))
	}

	return nil
}

func parseFeatures(name string) (options.FeatureEnum, error) {
	switch name {
	default:
		return 0, fmt.Errorf("unknown feature set %q, want base, lite or full", name)
	case "base":
		return options.FeatureNone, nil
	case "lite":
		return options.FeatureAllocLite, nil
	case "full":
		return options.FeatureAll, nil
	}
}
