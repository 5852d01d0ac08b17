package schemarules

type custom struct {
	f    func(any) error
	desc string
}

// Custom returns a validation rule that uses f for validation and desc for documentation.
func Custom(f func(any) error, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Description() string {
	return r.desc
}

func (r custom) Validate(value any) error {
	return r.f(value)
}
