// Package naming derives the expected view type name from a view-model's
// fully-qualified type name.
//
// A fully-qualified name is the registered namespace joined with the type
// name by a dot, e.g. "Sample.ViewModels.WidgetViewModel". The resolver
// strips the trailing "Model" from the type segment and optionally rewrites
// namespace segments ("ViewModels" -> "Views"), yielding an ordered list of
// candidate names for the locator to try.
package naming
