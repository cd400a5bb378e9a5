package mallet

// These helpers are the only place that understands the spellings of a
// flag.  Every read -- boolean, scalar, optional -- resolves positions
// through fieldPos, which is what keeps the long form and the short
// alias interchangeable everywhere instead of just for some shapes.

// canonicalFieldName is the long-form spelling of a field: "--" plus
// the kebab-cased field name.
func canonicalFieldName(field string) string {
	return "--" + kebabName(field)
}

// positionOf finds the first exact match of target in tokens.
func positionOf(tokens []string, target string) (int, bool) {
	for i, tok := range tokens {
		if tok == target {
			return i, true
		}
	}
	return 0, false
}

// fieldPos locates the token matching the current field: the
// canonical long form first, then the configured short alias.
func (d *FlagDecoder) fieldPos() (int, bool) {
	if pos, ok := positionOf(d.source, canonicalFieldName(d.currentField)); ok {
		return pos, true
	}
	if alias, ok := d.config.ShortFor(d.currentField); ok {
		return positionOf(d.source, "-"+string(alias))
	}
	return 0, false
}
