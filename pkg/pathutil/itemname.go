package pathutil

// IsValidItemName reports whether name is a valid item name: normalizing it
// must be a no-op, and the normalized form must consist of exactly one
// "normal" component (not empty, not ".", not "..", and containing no path
// separator).
//
// Ground: original_source/src/helpers.rs's is_valid_item_name /
// library.rs's MediaLibrary::is_valid_item_name.
func IsValidItemName(name string) bool {
	if name == "" {
		return false
	}

	normalized := Normalize(name)
	if normalized != name {
		return false
	}

	components := splitComponents(name)
	if len(components) != 1 {
		return false
	}

	switch components[0] {
	case ".", "..":
		return false
	default:
		return true
	}
}
