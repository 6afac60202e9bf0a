// Package config defines the format-agnostic configuration model for the
// application and the Loader interface implemented by each file format.
//
// The `config.Model` is the single source of truth for which assemblies the
// app loads, which view-model it starts with and how view names are
// derived. Concrete loaders, for HCL and YAML, live in separate packages.
package config
