// Package registry provides the type catalog searched by the view locator.
//
// The catalog plays the role of an assembly set: every compiled-in Module
// registers its view and view-model types under a namespace, producing
// fully-qualified names such as "Sample.Views.WidgetView". Modules are loaded
// in the configured order during application startup, after which the
// registry is sealed and treated as immutable, so lookups by name or by
// reflect.Type are plain map reads.
//
// Registering the same Go type twice is a programmer error and panics. Two
// different types sharing a fully-qualified name are accepted here and
// reported as ambiguous by the locator.
package registry
