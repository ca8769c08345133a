package tsexport

import (
	"github.com/TournyMasterBot/tsexport/descriptor"
	"github.com/TournyMasterBot/tsexport/errors"
	"github.com/TournyMasterBot/tsexport/logger"
)

// Export renders every declaration through gen. A declaration that fails to
// render (a malformed nullable wrapper, for instance) is dropped from the
// result without stopping the run; the failures come back combined into a
// single error alongside the units that did render. Declarations that
// render to nothing are silently omitted.
//
// Export is deterministic: the same descriptor set produces byte-identical
// units on every run.
func Export(decls []descriptor.DeclarationDescriptor, gen Generator) ([]*OutputUnit, error) {
	units := make([]*OutputUnit, 0, len(decls))
	var failures error

	for _, decl := range decls {
		unit, err := gen.GenerateUnit(decl)
		if err != nil {
			logger.Logger.Errorw("declaration skipped",
				"declaration", decl.QualifiedName(),
				"error", err,
			)
			failures = errors.CombineErrors(failures, err)
			continue
		}
		if unit == nil {
			logger.Logger.Debugw("declaration rendered empty, omitted",
				"declaration", decl.QualifiedName(),
			)
			continue
		}
		units = append(units, unit)
	}

	return units, failures
}
