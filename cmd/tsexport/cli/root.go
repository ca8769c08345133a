// Package cli wires the tsexport command line: flag and config handling
// around discovery, generation, and writing.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/mod/modfile"

	"github.com/TournyMasterBot/tsexport"
	"github.com/TournyMasterBot/tsexport/descriptor"
	"github.com/TournyMasterBot/tsexport/discover"
	"github.com/TournyMasterBot/tsexport/errors"
	"github.com/TournyMasterBot/tsexport/logger"
	"github.com/TournyMasterBot/tsexport/typescript"
	"github.com/TournyMasterBot/tsexport/writer"
)

var (
	flagOutput   string
	flagPackages []string
	flagModule   string
	flagClasses  bool
	flagJSONLogs bool
)

// RootCmd is the tsexport command.
var RootCmd = &cobra.Command{
	Use:   "tsexport",
	Short: "Generate TypeScript declarations from tagged Go structs",
	Long: `Generate TypeScript type declarations from Go structs.

tsexport scans the given packages for structs whose doc comment carries a
//tsexport:export directive and emits one TypeScript file per declaration,
mirroring the package layout as a directory tree. Cross-type references
become relative imports.

It handles:
  - Tagged structs → TypeScript interfaces (or classes with "export class")
  - JSON tags for field naming
  - Pointer types as nullable wrappers
  - Constant-set types → string
  - Slices, arrays and maps → array and index-signature types
  - time.Time as Date, unknown standard-library types as string

Examples:
  tsexport                                # Generate to stdout
  tsexport --output web/types/gen/        # Write files + barrel index.ts
  tsexport --packages ./models/...        # Restrict the scan`,
	RunE: runExport,
}

func init() {
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output root directory (default: stdout)")
	RootCmd.Flags().StringSliceVarP(&flagPackages, "packages", "p", []string{"./..."}, "Package patterns to scan")
	RootCmd.Flags().StringVarP(&flagModule, "module", "m", "", "Module root path (default: read from go.mod)")
	RootCmd.Flags().BoolVar(&flagClasses, "classes", false, "Emit every declaration as a class, overriding the directive kind")
	RootCmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")

	viper.SetEnvPrefix("TSEXPORT")
	viper.AutomaticEnv()
	viper.BindPFlag("output", RootCmd.Flags().Lookup("output"))
	viper.BindPFlag("packages", RootCmd.Flags().Lookup("packages"))
	viper.BindPFlag("module", RootCmd.Flags().Lookup("module"))
	viper.BindPFlag("classes", RootCmd.Flags().Lookup("classes"))
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := logger.Initialize(flagJSONLogs); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	loadConfigFile()

	modulePath := viper.GetString("module")
	if modulePath == "" {
		detected, err := readModulePath(".")
		if err != nil {
			return err
		}
		modulePath = detected
	}

	decls, err := discover.Load(&discover.Config{
		ModulePath: modulePath,
		Packages:   viper.GetStringSlice("packages"),
	})
	if err != nil {
		return err
	}

	if viper.GetBool("classes") {
		decls = forceClassKind(decls)
	}

	gen := typescript.NewGenerator()
	units, exportErr := tsexport.Export(decls, gen)

	output := viper.GetString("output")
	if output == "" {
		for _, unit := range units {
			fmt.Printf("// File: %s\n%s\n", unit.Path(gen.FileExtension()), unit.Text)
		}
	} else {
		if err := writer.WriteUnits(output, units, gen); err != nil {
			return err
		}
		for _, unit := range units {
			fmt.Printf("✓ Generated %s\n", filepath.Join(output, unit.Path(gen.FileExtension())))
		}
	}

	// Per-declaration failures surface after the good units are written.
	return exportErr
}

// loadConfigFile reads .tsexport.yaml from the working directory, if
// present. Flags and TSEXPORT_* env vars take precedence.
func loadConfigFile() {
	viper.SetConfigName(".tsexport")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err == nil {
		logger.Logger.Debugw("config file loaded", "file", viper.ConfigFileUsed())
	}
}

// forceClassKind rewrites every declaration to class kind, regardless
// of what its directive asked for.
func forceClassKind(decls []descriptor.DeclarationDescriptor) []descriptor.DeclarationDescriptor {
	out := make([]descriptor.DeclarationDescriptor, len(decls))
	for i, decl := range decls {
		decl.Kind = descriptor.KindClass
		out[i] = decl
	}
	return out
}

// readModulePath extracts the module path from go.mod in dir.
func readModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", errors.Wrap(err, "failed to read go.mod; pass --module explicitly")
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", errors.New("go.mod carries no module path; pass --module explicitly")
	}
	return modulePath, nil
}
