package typescript

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/TournyMasterBot/tsexport"
	"github.com/TournyMasterBot/tsexport/descriptor"
	"github.com/TournyMasterBot/tsexport/errors"
)

// GenerateIndexFile creates a barrel export file (index.ts) for cleaner imports.
func GenerateIndexFile(outputDir string, units []*tsexport.OutputUnit) error {
	var sb strings.Builder

	// Header
	sb.WriteString("/* eslint-disable */\n")
	sb.WriteString("// Auto-generated barrel export - re-exports all generated types\n")
	sb.WriteString("// This file is regenerated on every export run\n\n")

	// Sort units by output path for deterministic output
	sorted := make([]*tsexport.OutputUnit, len(units))
	copy(sorted, units)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path("ts") < sorted[j].Path("ts")
	})

	for _, unit := range sorted {
		modulePath := strings.TrimSuffix(unit.Path("ts"), ".ts")
		// Classes are values; interfaces are type-only exports.
		keyword := "export type"
		if unit.Kind == descriptor.KindClass {
			keyword = "export"
		}
		sb.WriteString(fmt.Sprintf("%s { %s } from './%s';\n", keyword, unit.Name, modulePath))
	}

	// Write index file
	indexPath := filepath.Join(outputDir, "index.ts")
	if err := os.WriteFile(indexPath, []byte(sb.String()), 0644); err != nil {
		return errors.Wrap(err, "failed to write index.ts")
	}

	return nil
}
