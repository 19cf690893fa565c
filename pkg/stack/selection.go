package stack

// SelectionSet is the user's chosen technology per category. Every field
// holds a template ID or None. The zero value is not valid; use
// DefaultSelections and overwrite what the user picked.
//
// Hosting is not a template category; it keys the deployment descriptor
// generator and never participates in merging.
type SelectionSet struct {
	Framework      string `yaml:"framework"`
	Authentication string `yaml:"authentication"`
	Database       string `yaml:"database"`
	Payments       string `yaml:"payments"`
	Analytics      string `yaml:"analytics"`
	Email          string `yaml:"email"`
	Monitoring     string `yaml:"monitoring"`
	UI             string `yaml:"ui"`
	Hosting        string `yaml:"hosting,omitempty"`
}

// DefaultSelections returns a selection set with the given framework and
// every optional category set to None.
func DefaultSelections(framework string) SelectionSet {
	return SelectionSet{
		Framework:      framework,
		Authentication: None,
		Database:       None,
		Payments:       None,
		Analytics:      None,
		Email:          None,
		Monitoring:     None,
		UI:             None,
		Hosting:        None,
	}
}

// Get returns the choice for a category, or None for categories that have
// no selectable slot (base, other).
func (s SelectionSet) Get(c Category) string {
	switch c {
	case CategoryFramework:
		return s.Framework
	case CategoryAuthentication:
		return s.Authentication
	case CategoryDatabase:
		return s.Database
	case CategoryPayments:
		return s.Payments
	case CategoryAnalytics:
		return s.Analytics
	case CategoryEmail:
		return s.Email
	case CategoryMonitoring:
		return s.Monitoring
	case CategoryUI:
		return s.UI
	default:
		return None
	}
}

// Chosen returns every non-None template ID in canonical category order,
// framework first.
func (s SelectionSet) Chosen() []string {
	var ids []string
	for _, c := range Categories {
		if id := s.Get(c); id != "" && id != None {
			ids = append(ids, id)
		}
	}
	return ids
}

// Export returns the selection set as a dot-addressable map for the
// variable-substitution context. Every category is present, None included,
// so templates can emit the literal choice.
func (s SelectionSet) Export() map[string]any {
	return map[string]any{
		"framework":      s.Framework,
		"authentication": s.Authentication,
		"database":       s.Database,
		"payments":       s.Payments,
		"analytics":      s.Analytics,
		"email":          s.Email,
		"monitoring":     s.Monitoring,
		"ui":             s.UI,
		"hosting":        s.Hosting,
	}
}
