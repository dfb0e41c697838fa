// Package config reads HCL job files that parameterize the engine and the
// algorithms:
//
//	engine {
//	  workers         = 4
//	  invoke_on_empty = false
//	  direction       = "both"   # or "src_to_dst", "dst_to_src"
//	  max_iterations  = 50
//	}
//
//	pagerank {
//	  reset_probability = 0.15
//	  threshold         = 0.0001
//	  max_iterations    = 100
//	  result_key        = "rank"
//	}
//
//	components {
//	  max_iterations = 1000
//	  result_key     = "component"
//	}
//
// Every block and attribute is optional. Unknown blocks or attributes and
// type mismatches fail with ErrDecode; out-of-domain values with ErrInvalid.
package config
