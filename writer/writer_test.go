package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TournyMasterBot/tsexport"
	"github.com/TournyMasterBot/tsexport/descriptor"
	"github.com/TournyMasterBot/tsexport/typescript"
)

func sampleUnits() []*tsexport.OutputUnit {
	return []*tsexport.OutputUnit{
		{
			Name:      "Job",
			Namespace: []string{"pulse"},
			Kind:      descriptor.KindInterface,
			Text:      "export interface Job {\n  id: string;\n}\n",
		},
		{
			Name:      "Detail",
			Namespace: []string{"models", "orders"},
			Kind:      descriptor.KindInterface,
			Text:      "export interface Detail {\n}\n",
		},
	}
}

func TestWriteUnits(t *testing.T) {
	root := t.TempDir()
	gen := typescript.NewGenerator()

	require.NoError(t, WriteUnits(root, sampleUnits(), gen))

	// Namespace segments become directory segments.
	data, err := os.ReadFile(filepath.Join(root, "pulse", "Job.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export interface Job {")

	_, err = os.Stat(filepath.Join(root, "models", "orders", "Detail.ts"))
	require.NoError(t, err)

	// Barrel index covers every unit.
	index, err := os.ReadFile(filepath.Join(root, "index.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "export type { Job } from './pulse/Job';")
	assert.Contains(t, string(index), "export type { Detail } from './models/orders/Detail';")
}

func TestWriteUnitsOverwrites(t *testing.T) {
	root := t.TempDir()
	gen := typescript.NewGenerator()
	units := sampleUnits()

	require.NoError(t, WriteUnits(root, units, gen))

	// Tamper with prior output; a re-run must restore it byte-for-byte.
	stale := filepath.Join(root, "pulse", "Job.ts")
	require.NoError(t, os.WriteFile(stale, []byte("// stale\n"), 0644))

	require.NoError(t, WriteUnits(root, units, gen))

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, units[0].Text, string(data))
}
