// Package packs holds the embedded content pack catalog, the pack_config.json
// codec and discovery of packs already present under a content root.
package packs
