// Package main provides the entry point for the persist CLI.
//
// persist prints the inputs of a Rails security review in one place: the
// application directory, the Brakeman and RuboCop JSON reports rendered as
// readable trees, and the bundle-audit output as-is.
//
// Usage:
//
//	persist <local_dirname> <brakeman_json_path> <rubocop_json_path> <bundle_audit_output_path>
//	persist --format yaml app brakeman.json rubocop.json audit.txt
//
// See --help for all available options.
package main

// main is the entry point for persist.
func main() {
	Execute()
}
