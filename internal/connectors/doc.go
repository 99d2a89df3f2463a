// Package connectors provides the document sources the extraction run reads
// from. Each connector enumerates Documents from one kind of location.
package connectors
