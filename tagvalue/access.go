package tagvalue

// Require reads and converts a field that must be present.
func Require[T any](v View, tag Tag, parse func(string) (T, error)) (T, error) {
	raw, ok := v.Field(tag)
	if !ok {
		var zero T
		return zero, &MissingRequiredFieldError{Tag: tag}
	}

	val, err := parse(raw)
	if err != nil {
		var zero T
		return zero, &FieldValueError{Tag: tag, Value: raw, Err: err}
	}

	return val, nil
}

// Optional reads and converts a field that may be absent, returning nil then.
func Optional[T any](v View, tag Tag, parse func(string) (T, error)) (*T, error) {
	raw, ok := v.Field(tag)
	if !ok {
		return nil, nil
	}

	val, err := parse(raw)
	if err != nil {
		return nil, &FieldValueError{Tag: tag, Value: raw, Err: err}
	}

	return &val, nil
}

// GroupCount reads the entry count of a repeating group.
// An absent optional count is zero.
func GroupCount(v View, countTag Tag, required bool) (int, error) {
	raw, ok := v.Field(countTag)
	if !ok {
		if required {
			return 0, &MissingRequiredFieldError{Tag: countTag}
		}

		return 0, nil
	}

	n, err := ParseInt(raw)
	if err != nil {
		return 0, &FieldValueError{Tag: countTag, Value: raw, Err: err}
	}

	if n < 0 {
		return 0, &FieldValueError{Tag: countTag, Value: raw, Err: ErrNegativeGroupCount}
	}

	return n, nil
}

// DecodeGroup decodes every entry of the group counted by countTag.
// It returns nil when the group has no entries.
func DecodeGroup[T any, P interface {
	*T
	Decode(View) error
}](v View, countTag Tag, required bool) ([]T, error) {
	n, err := GroupCount(v, countTag, required)
	if err != nil || n == 0 {
		return nil, err
	}

	entries := make([]T, n)
	for i := range entries {
		entry, err := v.Group(countTag, i)
		if err != nil {
			return nil, err
		}

		if err := P(&entries[i]).Decode(entry); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// EncodeGroup writes entries as a repeating group. An empty group writes
// nothing unless it is required, in which case the count is written as 0.
func EncodeGroup[T any, P interface {
	*T
	Encode(View)
}](v View, countTag Tag, entries []T, required bool) {
	if len(entries) == 0 {
		if required {
			v.SetField(countTag, FormatInt(0))
		}

		return
	}

	for i := range entries {
		entry := v.NewGroup(countTag)
		P(&entries[i]).Encode(entry)
		v.AddGroup(countTag, entry)
	}
}
