// Package hcl_adapter provides the HCL implementation of the config.Loader
// interface. It parses every .hcl file under the given paths, decodes the
// top-level attributes and the naming block with gohcl, and translates
// them into the format-agnostic config.Model.
package hcl_adapter
