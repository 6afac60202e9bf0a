package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is the schema of a single configuration file. Every field is
// optional so settings can be split across files.
type fileRoot struct {
	Assemblies *[]string    `hcl:"assemblies,optional"`
	Startup    *string      `hcl:"startup,optional"`
	Naming     *namingBlock `hcl:"naming,block"`
}

// namingBlock is the `naming { ... }` block.
type namingBlock struct {
	Strict *bool `hcl:"strict,optional"`
	// NamespaceMap is kept as an expression so both map and object syntax
	// are accepted and an explicit empty map can be told apart from an
	// omitted one.
	NamespaceMap hcl.Expression `hcl:"namespace_map,optional"`
}
