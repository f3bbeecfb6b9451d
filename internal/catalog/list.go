package catalog

// List is an ordered field list. Every method returns a new list and never
// modifies its receiver, so named lists can be shared as derivation bases.
type List []Field

// Without returns the list minus every field whose key is in keys.
func (l List) Without(keys ...string) List {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(List, 0, len(l))
	for _, f := range l {
		if _, ok := drop[f.Value]; ok {
			continue
		}
		out = append(out, f.clone())
	}
	return out
}

// With returns the list followed by fields.
func (l List) With(fields ...Field) List {
	out := make(List, 0, len(l)+len(fields))
	for _, f := range l {
		out = append(out, f.clone())
	}
	for _, f := range fields {
		out = append(out, f.clone())
	}
	return out
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	return l.With()
}

// Keys returns the field keys in order.
func (l List) Keys() []string {
	keys := make([]string, len(l))
	for i, f := range l {
		keys[i] = f.Value
	}
	return keys
}

// Visible returns the fields that are not hidden companions.
func (l List) Visible() List {
	out := make(List, 0, len(l))
	for _, f := range l {
		if !f.Hidden() {
			out = append(out, f.clone())
		}
	}
	return out
}

// Find returns the first field with the given key.
func (l List) Find(key string) (Field, bool) {
	for _, f := range l {
		if f.Value == key {
			return f.clone(), true
		}
	}
	return Field{}, false
}

// Contains reports whether the list has a field with the given key.
func (l List) Contains(key string) bool {
	_, ok := l.Find(key)
	return ok
}

// Replace returns the list with every field keyed key swapped for f.
func (l List) Replace(key string, f Field) List {
	out := make(List, len(l))
	for i, existing := range l {
		if existing.Value == key {
			out[i] = f.clone()
			continue
		}
		out[i] = existing.clone()
	}
	return out
}
