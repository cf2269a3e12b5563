// Package serialize defines the Serializer contract the bounded tile
// container uses to evict and reload tiles, plus (in the filestore
// subpackage) a file-based default implementation.
package serialize
