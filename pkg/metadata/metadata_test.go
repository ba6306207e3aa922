package metadata

import "testing"

func TestMetaKeyCompare(t *testing.T) {
	if NilKey.Compare(StrKey("a")) >= 0 {
		t.Error("expected Nil to sort before any Str")
	}
	if StrKey("a").Compare(NilKey) <= 0 {
		t.Error("expected any Str to sort after Nil")
	}
	if StrKey("a").Compare(StrKey("b")) >= 0 {
		t.Error("expected lexicographic ordering among Str keys")
	}
	if !NilKey.Equal(NilKey) {
		t.Error("expected Nil to equal itself")
	}
}

func TestMapSortsByKey(t *testing.T) {
	v := Map([]KV{
		{Key: StrKey("zebra"), Value: Str("z")},
		{Key: NilKey, Value: Str("nil")},
		{Key: StrKey("apple"), Value: Str("a")},
	})

	if len(v.Map) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(v.Map))
	}
	if !v.Map[0].Key.IsNil() {
		t.Errorf("expected Nil key first, got %v", v.Map[0].Key)
	}
	if v.Map[1].Key.Str() != "apple" || v.Map[2].Key.Str() != "zebra" {
		t.Errorf("expected apple before zebra, got %q then %q", v.Map[1].Key.Str(), v.Map[2].Key.Str())
	}
}

func TestMetaValueEqualIncludesOrder(t *testing.T) {
	a := Seq([]MetaValue{Str("x"), Str("y")})
	b := Seq([]MetaValue{Str("y"), Str("x")})

	if a.Equal(b) {
		t.Error("expected sequences with different order to be unequal")
	}

	c := Seq([]MetaValue{Str("x"), Str("y")})
	if !a.Equal(c) {
		t.Error("expected identically ordered sequences to be equal")
	}
}

func TestMetaValueEqualNilVsStr(t *testing.T) {
	if Nil().Equal(Str("")) {
		t.Error("Nil must not equal an empty Str")
	}
}

func TestMetaBlockGet(t *testing.T) {
	block := NewBlock([]FieldKV{
		{Field: "title", Value: Str("Track One")},
		{Field: "year", Value: Str("2020")},
	})

	if v, ok := block.Get("title"); !ok || !v.Equal(Str("Track One")) {
		t.Errorf("expected title field to be present with value Track One, got %v, %v", v, ok)
	}
	if _, ok := block.Get("missing"); ok {
		t.Error("expected missing field to be absent")
	}
}

func TestMetaBlockEqualOrderSensitive(t *testing.T) {
	a := NewBlock([]FieldKV{{Field: "a", Value: Str("1")}, {Field: "b", Value: Str("2")}})
	b := NewBlock([]FieldKV{{Field: "b", Value: Str("2")}, {Field: "a", Value: Str("1")}})

	if a.Equal(b) {
		t.Error("expected differently ordered blocks to compare unequal")
	}
}
