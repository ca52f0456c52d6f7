// Package testspec loads JSON test suites and executes them against
// the real library surface.
//
// # Suite format
//
// A suite is one JSON document:
//
//	{
//	  "test_suite_name": "core",
//	  "version": "1.0",
//	  "categories": {
//	    "scalars": {
//	      "description": "scalar arithmetic",
//	      "tests": [
//	        {
//	          "test_name": "add_basic",
//	          "operation": "scalar.add",
//	          "inputs": [2, 3],
//	          "expected_outputs": [5],
//	          "tolerance": 1e-10,
//	          "tags": ["basic"]
//	        }
//	      ]
//	    }
//	  }
//	}
//
// Each case names an operation from a Registry; the runner calls the
// bound Go function with the flat inputs and compares the outputs
// element-wise within the case tolerance (DefaultTolerance when
// unset). Two NaNs compare equal.
//
// # Wire encoding
//
// Grades ride the wire as 0..3 with -1 standing for the general
// (mixed) grade; vectors ride as three coefficients in basis order.
//
// # Execution
//
// Runner executes sequentially by default; WithParallelism(n) bounds a
// concurrent run with errgroup. Every run gets a UUID so repeated runs
// stay distinguishable in structured logs.
package testspec
