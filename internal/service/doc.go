// Package service contains the application services that orchestrate the
// domain: the login flow, the generate-render-persist quiz pipeline, and
// rating bookkeeping. Services depend on store and generation interfaces,
// never on concrete platform implementations.
package service
