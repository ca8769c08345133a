// Package writer is the file-writing collaborator: it materializes output
// units under the output root, creating intermediate directories and
// overwriting prior output unconditionally so re-runs are idempotent.
package writer

import (
	"os"
	"path/filepath"

	"github.com/TournyMasterBot/tsexport"
	"github.com/TournyMasterBot/tsexport/errors"
	"github.com/TournyMasterBot/tsexport/logger"
	"github.com/TournyMasterBot/tsexport/typescript"
)

// WriteUnits writes every unit below root using the generator's file
// extension, then regenerates the barrel index.ts. Paths come verbatim
// from the units; the writer adds no naming of its own.
func WriteUnits(root string, units []*tsexport.OutputUnit, gen tsexport.Generator) error {
	ext := gen.FileExtension()

	for _, unit := range units {
		outPath := filepath.Join(root, filepath.FromSlash(unit.Path(ext)))

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", outPath)
		}
		if err := os.WriteFile(outPath, []byte(unit.Text), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", outPath)
		}

		logger.Logger.Debugw("unit written",
			"path", outPath,
			"imports", len(unit.Imports),
		)
	}

	if err := typescript.GenerateIndexFile(root, units); err != nil {
		return err
	}

	return nil
}
