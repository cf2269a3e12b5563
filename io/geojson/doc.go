// Package geojson writes a distributed triangulation as one GeoJSON
// FeatureCollection mixing point features (vertices) and polygon features
// (cells), each carrying tile/id/local properties.
package geojson
