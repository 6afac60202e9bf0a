// Package app contains the core application logic. It wires configuration,
// the type catalog, the view locator, the binder and the root host into an
// App, decoupled from any specific entrypoint like the CLI.
package app
