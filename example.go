package schemarules

type example struct {
	ex any
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex any) Rule {
	return &example{ex: ex}
}

func (r *example) ExampleValue() any {
	return r.ex
}

func (r *example) Validate(any) error {
	return nil
}
