package ptr

func String(s string) *string {
	return &s
}

func Bool(b bool) *bool {
	return &b
}

// NonEmptyString is nil for the empty string.
func NonEmptyString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
