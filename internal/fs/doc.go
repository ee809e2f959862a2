// Package fs provides the filesystem abstraction used to open input files, for
// testability and fault injection.
//
//   - [FileSystem]: opens and stats files
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that fails opens or reads on demand
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.Open(path)
//
// Tests can inject [FaultyFS] to simulate I/O failures part way through a file:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("front.txt", fs.Fault{FailAfterBytes: 64})
package fs
