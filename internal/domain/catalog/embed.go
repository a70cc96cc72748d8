package catalog

import _ "embed"

// defaultSpecs carries the built-in target definitions used when no
// catalog_path is configured.
//
//go:embed target_specs.json
var defaultSpecs []byte
