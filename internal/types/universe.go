package types

// LookupType returns the basic type spelled name in source (the type
// keywords int, string and bool), or nil.
func LookupType(name string) *Basic {
	for _, t := range Typ {
		if t != nil && t.name == name {
			return t
		}
	}
	return nil
}
