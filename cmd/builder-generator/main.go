// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator is a codegen tool that:
//   - Parses a declarative YAML schema of request builders
//   - Validates it structurally, reporting every problem in one run
//   - Resolves each builder into a typestate description (marker types per
//     required field)
//   - Generates fluent Go builders whose finalize operation only compiles
//     once every required field has been set
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"builder-generator/internal/gen"
	"builder-generator/internal/plan"
	"builder-generator/internal/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "path to the YAML builder schema (required)")
	outDir := flag.String("out", "./generated", "output directory for generated files")
	pkgName := flag.String("pkg", "", "override the generated package name")
	runtimeImport := flag.String("runtime", "builder-generator/request", "import path of the request runtime package")
	check := flag.Bool("check", false, "validate the schema and exit without generating")
	dump := flag.Bool("dump", false, "dump the resolved typestate plan and exit")
	flag.Parse()

	if *schemaPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*schemaPath, *outDir, *pkgName, *runtimeImport, *check, *dump); err != nil {
		fmt.Fprintln(os.Stderr, "builder-generator:", err)
		os.Exit(1)
	}
}

func run(schemaPath, outDir, pkgName, runtimeImport string, check, dump bool) error {
	sf, err := schema.LoadFile(schemaPath)
	if err != nil {
		return err
	}

	rs := plan.Resolve(sf)

	for _, w := range rs.Diagnostics.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	if rs.Diagnostics.HasErrors() {
		for _, e := range rs.Diagnostics.Errors {
			fmt.Fprintln(os.Stderr, "error:", e.String())
		}

		return fmt.Errorf("schema %s has %d error(s)", schemaPath, len(rs.Diagnostics.Errors))
	}

	if dump {
		spew.Dump(rs)
		return nil
	}

	if check {
		fmt.Printf("schema %s: %d builder(s), %d tracked field(s), OK\n",
			schemaPath, len(rs.Builders), len(rs.States))

		return nil
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = outDir
	cfg.PackageName = pkgName
	cfg.RuntimeImport = runtimeImport

	files, err := gen.NewGenerator(cfg).Generate(rs)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println("wrote", f.Filename)
	}

	return nil
}
