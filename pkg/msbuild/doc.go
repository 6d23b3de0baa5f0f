// Package msbuild reads and rewrites the XML documents used by .NET tooling:
// SDK and legacy project files (.csproj) and XML solution files (.slnx).
//
// Documents are loaded into a mutable element tree so that entries can be
// removed and the file written back without re-encoding it from a struct
// model. Attribute order, comments and untouched elements are kept; the
// whitespace left around a removed element is not.
package msbuild
