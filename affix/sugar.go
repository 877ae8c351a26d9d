package affix

// Prefixation applies a prefix to stem.
func Prefixation(stem, prefix, joiner string) Affixation {
	return NewPrefix(prefix, joiner).WithStem(stem)
}

// Suffixation applies a suffix to stem.
func Suffixation(stem, suffix, joiner string) Affixation {
	return NewSuffix(suffix, joiner).WithStem(stem)
}

// Infixation inserts infix into stem at the given point.
func Infixation(stem, infix string, at Index, joiner string) (Affixation, error) {
	a, err := NewInfix(infix, at, joiner)
	if err != nil {
		return Affixation{}, err
	}

	return a.WithStem(stem), nil
}

// Circumfixation surrounds stem with prefix and suffix.
func Circumfixation(stem, prefix, suffix, joiner string) Affixation {
	return NewCircumfix(prefix, suffix, joiner).WithStem(stem)
}

// Ambifixation surrounds stem with ambifix on both sides.
func Ambifixation(stem, ambifix, joiner string) Affixation {
	return NewAmbifix(ambifix, joiner).WithStem(stem)
}

// Duplifixation repeats stem.
func Duplifixation(stem, joiner string) Affixation {
	return NewDuplifix(joiner).WithStem(stem)
}

// Prefix returns prefix + joiner + stem.
func Prefix(stem, prefix, joiner string) string {
	return Prefixation(stem, prefix, joiner).MustRender()
}

// Suffix returns stem + joiner + suffix.
func Suffix(stem, suffix, joiner string) string {
	return Suffixation(stem, suffix, joiner).MustRender()
}

// Infix returns stem with infix spliced in at the given point, joiners on both sides.
func Infix(stem, infix string, at Index, joiner string) (string, error) {
	a, err := Infixation(stem, infix, at, joiner)
	if err != nil {
		return "", err
	}

	return a.Render()
}

// Circumfix returns prefix + joiner + stem + joiner + suffix.
func Circumfix(stem, prefix, suffix, joiner string) string {
	return Circumfixation(stem, prefix, suffix, joiner).MustRender()
}

// Ambifix returns ambifix + joiner + stem + joiner + ambifix.
func Ambifix(stem, ambifix, joiner string) string {
	return Ambifixation(stem, ambifix, joiner).MustRender()
}

// Duplifix returns stem + joiner + stem.
func Duplifix(stem, joiner string) string {
	return Duplifixation(stem, joiner).MustRender()
}
