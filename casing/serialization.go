package casing

func (f NamingFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *NamingFormat) UnmarshalText(text []byte) error {
	var err error
	*f, err = ParseNamingFormat(string(text))
	return err
}

// Set implements pflag.Value.
func (f *NamingFormat) Set(value string) error {
	return f.UnmarshalText([]byte(value))
}

// Type implements pflag.Value.
func (f *NamingFormat) Type() string {
	return "format"
}
