package schemarules

type describe struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the schema description.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Description() string {
	return r.desc
}

func (r *describe) Validate(any) error {
	return nil
}
