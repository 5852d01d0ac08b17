package schemarules

// Options configures schema generation.
type Options struct {
	// Rules replaces the default schema rule table when non-nil. An empty
	// non-nil slice disables all schema mutations.
	Rules []SchemaRule

	// ExtraRules run after the base table. Use this to add schema behavior
	// for custom validation rules without redefining the defaults.
	ExtraRules []SchemaRule
}

// rules merges the configured rule table with the defaults into the
// effective table used for one generation run.
func (o Options) rules() []SchemaRule {
	base := o.Rules
	if base == nil {
		base = DefaultRules()
	}
	if len(o.ExtraRules) == 0 {
		return base
	}
	merged := make([]SchemaRule, 0, len(base)+len(o.ExtraRules))
	merged = append(merged, base...)
	merged = append(merged, o.ExtraRules...)
	return merged
}
