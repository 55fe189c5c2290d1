// Package harness runs link resolution scenarios.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	config:
//	  max-iterations: 100
//	variants:
//	  - id: var1
//	    start: { chromosome: "1", position: 1000, orientation: 1 }
//	    end: { chromosome: "2", position: 5000, orientation: -1, assemblies: [asm1] }
//	    insert_sequence_length: 500
//	  - id: sgl1
//	    start: { chromosome: "3", position: 200, orientation: -1 }
//	expect:
//	  - breakend: var1o
//	    links: [PAIR, trs_var1o_0, PAIR]
//	  - breakend: sgl1b
//	    links: []
//	    outcome: single_breakend
//
// A variant without an end is single-ended. Unknown fields are rejected.
//
// # Deterministic Testing
//
// The engine runs with a fixed run ID and a discarded log, and every run is
// also written to an in-memory SQLite store and read back. The same scenario
// therefore always produces the same snapshot for golden comparison.
package harness
