// Package mocks provides hand-written test doubles for the store, auth,
// and generation interfaces. Each mock exposes Fn fields so test cases can
// override individual methods; unset methods fall back to simple defaults.
package mocks
