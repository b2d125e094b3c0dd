// Package modules contains the application's features.
//
// Each subdirectory is a module implementing module.Module. Modules are
// listed in internal/app/modules.go; the server registers them all, then
// boots each one under the route group named after it.
package modules
