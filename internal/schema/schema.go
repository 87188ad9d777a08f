// Package schema provides the implementations for handling (Unix-based)
// operating system syscalls. The other packages only consume small provider
// interfaces, which are satisfied by the types in this package in production
// and by fakes in tests.
package schema
