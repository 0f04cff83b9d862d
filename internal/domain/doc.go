// Package domain contains the core entities of the Quiz Crawler application:
// quiz requests, generated quiz questions, the per-user saved quiz snapshot,
// and user records. Entities validate themselves; persistence and transport
// concerns live in the store and api packages.
package domain
