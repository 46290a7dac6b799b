// Package apidesc holds the normalized operation model the generator works
// on, and a YAML loader for operation sets produced by an upstream API
// description parser.
//
// The loader checks only structural invariants of the model (unique
// parameter names, known parameter locations). It does not interpret the
// API description itself.
//
// # Document format
//
//	operations:
//	  - id: getPetById
//	    method: get
//	    path: /pets/{petId}
//	    summary: Find pet by ID
//	    deprecated: false
//	    tags: [pet]
//	    accepts: [application/json]
//	    parameters:
//	      - name: petId
//	        in: path
//	        type: integer
//	        required: true
package apidesc
