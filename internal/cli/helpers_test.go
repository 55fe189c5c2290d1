package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chainVariants resolves var1o through two assembled fragments.
const chainVariants = `name: assembly_chain
description: A translocation resolved through two assembled fragments
variants:
  - id: var1
    start: { chromosome: "1", position: 1000, orientation: 1 }
    end: { chromosome: "2", position: 5000, orientation: -1 }
    qual: 100
    insert_sequence_length: 1000
  - id: var2
    start: { chromosome: "1", position: 1000, orientation: 1 }
    end: { chromosome: "1", position: 3000, orientation: -1, assemblies: [asm1] }
    qual: 100
  - id: var3
    start: { chromosome: "1", position: 3500, orientation: 1, assemblies: [asm1] }
    end: { chromosome: "1", position: 6000, orientation: -1, assemblies: [asm2] }
    qual: 100
  - id: var4
    start: { chromosome: "1", position: 6500, orientation: 1, assemblies: [asm2] }
    end: { chromosome: "2", position: 5000, orientation: -1 }
    qual: 100
expect:
  - breakend: var1o
    links: [PAIR, asm1-0, PAIR, asm2-0, PAIR]
    outcome: resolved
`

const chainSnapshot = "# assembly_chain\n" +
	"var1o\tresolved\tPAIR,asm1-0,PAIR,asm2-0,PAIR\n" +
	"var2o\texhausted\t-\n" +
	"var3o\tno_alternatives\t-\n" +
	"var4o\tno_alternatives\t-\n"

// writeFile writes content to name under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
