// Package generate orchestrates one project generation: validate the
// name, validate the selections, resolve and merge templates, run the
// substitution pass, and synthesize the auxiliary documents.
//
// The split between hard errors and degradations follows the rule that
// anything the user could fix by choosing differently (bad name,
// incompatible selections, circular dependencies in what they picked) is
// an error, while anything caused by imperfect template data is absorbed
// with a fallback and recorded in the result's warnings.
package generate
