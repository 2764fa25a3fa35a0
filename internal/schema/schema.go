// Package schema provides the principal schematics for all other packages. It
// provides the implementation for handling the (Unix-based) operating system
// syscalls that the diagnostic programs issue against a mounted file system.
// The package serves as the only layer talking to the kernel, so that all
// consumers can be exercised against mocked providers.
package schema
