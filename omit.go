package projection

// Omit is the complement operation: it returns a fresh object holding all own
// fields of data minus the excluded keys. Exclusion is flat; dotted or array
// paths are not interpreted here.
func Omit(data map[string]any, exclude []string, opt Options) map[string]any {
	if data == nil {
		return nil
	}
	drop := make(map[string]struct{}, len(exclude))
	for _, k := range exclude {
		drop[k] = struct{}{}
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		if _, excluded := drop[k]; excluded {
			continue
		}
		out[k] = v
	}
	return out
}
