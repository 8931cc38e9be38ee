// Package config loads the generator configuration file.
//
// The file is YAML or TOML, picked by extension:
//
//	output_dir: ./generated
//	import_path: example.com/trading/fix
//	runtime_import: fixdict-generator/tagvalue
//	jobs: 2
//	comments: true
//	dictionaries:
//	  - path: dict/FIX42.xml
//	  - path: dict/FIX50SP2.xml
//	    package: fix50
//	log:
//	  level: info
//	  format: console
//
// Relative paths resolve against the directory of the configuration file.
// FIXDICT_LOG_LEVEL and FIXDICT_LOG_FORMAT override the log section.
package config
