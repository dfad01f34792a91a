// Package loader loads Go packages and resolves the capability matrices of their types.
package loader

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/diag/capability"
	"github.com/saylorsolutions/diag/capability/capcheck"
	"go/token"
	"go/types"
	"golang.org/x/tools/go/packages"
	"log/slog"
	"slices"
	"strings"
)

var (
	ErrNoPackages = errors.New("no packages matched")
	ErrPackage    = errors.New("package has errors")
)

// Config controls how packages are loaded.
type Config struct {
	Dir    string       // Dir is the directory that patterns are relative to. Defaults to the working directory.
	Tags   []string     // Tags are build tags passed to the go command.
	Tests  bool         // Tests includes test packages.
	Logger *slog.Logger // Logger receives debug records about loading. Defaults to slog.Default().
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Load loads the packages matched by patterns with their type information.
// Packages that failed to load are still returned, and their errors are collected in an [*Errors] that wraps [ErrPackage].
// If no package could be loaded at all, then no packages are returned and the error also wraps [ErrNoPackages].
func Load(ctx context.Context, cfg Config, patterns ...string) ([]*packages.Package, error) {
	pcfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:     cfg.Dir,
		Tests:   cfg.Tests,
	}
	if len(cfg.Tags) > 0 {
		pcfg.BuildFlags = []string{"-tags", strings.Join(cfg.Tags, ",")}
	}
	log := cfg.logger()
	log.Debug("Loading packages", "patterns", patterns, "dir", cfg.Dir, "tags", cfg.Tags)
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", patterns, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoPackages, patterns)
	}
	var (
		errs   Errors
		loaded int
	)
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			errs.Add(fmt.Errorf("%w: %s: %s", ErrPackage, pkg.PkgPath, perr.Msg))
		}
		// go list reports unmatched patterns as packages with only errors.
		if len(pkg.Errors) == 0 || len(pkg.Syntax) > 0 {
			loaded++
		}
	}
	log.Debug("Loaded packages", "count", loaded, "errors", errs.Len())
	if loaded == 0 {
		return nil, fmt.Errorf("%w: %v: %w", ErrNoPackages, patterns, &errs)
	}
	return pkgs, errs.Result()
}

// Type is a named struct type with its resolved capability matrix.
type Type struct {
	Package string
	Name    string
	Pos     token.Position
	Matrix  capability.Matrix
}

// Types returns the named struct types declared at package level in pkgs, sorted by package and name.
// Unless all is true, only types with a declarator or a restricted operation are returned.
// Types repeated in test variants of a package are only returned once.
func Types(pkgs []*packages.Package, all bool) []Type {
	resolver := capcheck.NewResolver()
	seen := map[string]bool{}
	var result []Type
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn.IsAlias() {
				continue
			}
			if _, ok := tn.Type().Underlying().(*types.Struct); !ok {
				continue
			}
			key := pkg.PkgPath + "." + name
			if seen[key] {
				continue
			}
			seen[key] = true
			if named, ok := tn.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
				continue
			}
			m := resolver.Matrix(tn.Type())
			if !all && !m.Declared() && !m.Restricted() {
				continue
			}
			var pos token.Position
			if pkg.Fset != nil {
				pos = pkg.Fset.Position(tn.Pos())
			}
			result = append(result, Type{
				Package: pkg.PkgPath,
				Name:    name,
				Pos:     pos,
				Matrix:  m,
			})
		}
	}
	slices.SortStableFunc(result, func(a, b Type) int {
		return cmp.Or(cmp.Compare(a.Package, b.Package), cmp.Compare(a.Name, b.Name))
	})
	return result
}
