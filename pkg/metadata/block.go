package metadata

// FieldKV is one field-name/value entry of a MetaBlock.
type FieldKV struct {
	Field string
	Value MetaValue
}

// MetaBlock is an ordered mapping from field-name string to MetaValue. It
// is the unit of metadata attached to a single item. Unlike MetaValue.Map,
// field names are always strings, never Nil.
type MetaBlock struct {
	Fields []FieldKV
}

// NewBlock constructs a MetaBlock from an ordered list of fields. The
// fields retain the order supplied; block field order is not itself part
// of any invariant the resolver depends on, but it is kept stable for
// deterministic output.
func NewBlock(fields []FieldKV) MetaBlock {
	return MetaBlock{Fields: fields}
}

// Get returns the value bound to field and whether it was present.
func (b MetaBlock) Get(field string) (MetaValue, bool) {
	for _, kv := range b.Fields {
		if kv.Field == field {
			return kv.Value, true
		}
	}
	return MetaValue{}, false
}

// Equal reports whether b and other have the same fields bound to equal
// values, in the same order.
func (b MetaBlock) Equal(other MetaBlock) bool {
	if len(b.Fields) != len(other.Fields) {
		return false
	}
	for i := range b.Fields {
		if b.Fields[i].Field != other.Fields[i].Field {
			return false
		}
		if !b.Fields[i].Value.Equal(other.Fields[i].Value) {
			return false
		}
	}
	return true
}
