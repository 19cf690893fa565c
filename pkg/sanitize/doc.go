// Package sanitize validates and normalizes user- and template-supplied
// input before it reaches the merge engine.
//
// The split between errors and warnings follows one rule: anything the
// user could fix by typing a different name is an error; cosmetic issues
// the sanitizer repairs on its own are warnings. Template-supplied paths
// and content get their own validators so the engine can drop unsafe
// files instead of writing them.
package sanitize
