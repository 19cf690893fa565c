// Package stack defines the core data model for technology templates.
//
// A Template is an immutable, versioned bundle representing one technology
// choice (a framework, an auth provider, a database, ...): the files it
// contributes, the environment variables it needs, its setup steps, and the
// package-manifest fragments it brings along. Templates are created by the
// registry at load time and never mutated afterward.
//
// A SelectionSet is the user's chosen technology per category, with the
// sentinel "none" for categories they opted out of.
package stack
