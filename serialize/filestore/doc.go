// Package filestore is the default serialize.Serializer: one file per
// tile (prefix+index+".bin") holding the dimension and a vertex count
// followed by a (point, label) stream, plus a JSON index mapping tile indices to file
// paths so a later process can discover what was persisted without
// globbing the directory.
package filestore
