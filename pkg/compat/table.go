package compat

// Entry is one row of the static compatibility table. CompatibleWith is
// informational; ConflictsWith produces hard errors when both sides are
// selected; Warnings surface as advisory notes whenever the template is
// part of the selection.
type Entry struct {
	CompatibleWith []string
	ConflictsWith  []string
	Warnings       []string
}

// table is keyed by template ID. Templates absent from the table are
// treated as compatible with everything; their manifest-declared
// conflicts still apply.
var table = map[string]Entry{
	"nextjs": {
		CompatibleWith: []string{"nextauth", "clerk", "supabase", "mongodb", "stripe", "posthog", "resend", "sentry", "shadcn"},
	},
	"nextauth": {
		CompatibleWith: []string{"nextjs", "supabase", "mongodb"},
		ConflictsWith:  []string{"clerk"},
		Warnings:       []string{"NextAuth with MongoDB requires the official adapter; check the generated setup guide"},
	},
	"clerk": {
		CompatibleWith: []string{"nextjs", "supabase", "mongodb"},
		ConflictsWith:  []string{"nextauth"},
	},
	"supabase": {
		CompatibleWith: []string{"nextjs", "nextauth", "clerk"},
		ConflictsWith:  []string{"mongodb"},
	},
	"mongodb": {
		CompatibleWith: []string{"nextjs", "nextauth", "clerk"},
		ConflictsWith:  []string{"supabase"},
	},
	"stripe": {
		CompatibleWith: []string{"nextjs"},
		Warnings:       []string{"Stripe webhooks need a publicly reachable URL in development (e.g. the Stripe CLI listener)"},
	},
	"posthog": {
		CompatibleWith: []string{"nextjs"},
	},
	"resend": {
		CompatibleWith: []string{"nextjs"},
	},
	"sentry": {
		CompatibleWith: []string{"nextjs"},
	},
	"shadcn": {
		CompatibleWith: []string{"nextjs"},
	},
}

// Lookup returns the table entry for a template ID.
func Lookup(id string) (Entry, bool) {
	e, ok := table[id]
	return e, ok
}
