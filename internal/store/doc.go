// Package store defines the persistence interfaces used by the application
// core. Implementations live under internal/platform; the interfaces here
// keep handlers and services decoupled from the concrete database.
package store
