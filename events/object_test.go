package events

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseKeepsKeyOrder(t *testing.T) {
	expected := []string{"zeta", "alpha", "mid", "beta"}

	object, err := Parse([]byte(`{ "zeta": 1, "alpha": { "b": 1, "a": 2 }, "mid": [ { "q": 1, "p": 2 } ], "beta": null }`))
	if err != nil {
		t.Fatalf("Unexpected error parsing object (%v)", err)
	}

	if !reflect.DeepEqual(object.Keys(), expected) {
		t.Errorf("Incorrect key order\n   expected: %v\n   got:      %v\n", expected, object.Keys())
	}

	alpha, ok := object.Object("alpha")
	if !ok {
		t.Fatalf("Expected nested object for 'alpha'")
	}

	if !reflect.DeepEqual(alpha.Keys(), []string{"b", "a"}) {
		t.Errorf("Incorrect nested key order - got:%v", alpha.Keys())
	}

	mid, ok := object.List("mid")
	if !ok || len(mid) != 1 {
		t.Fatalf("Expected one element list for 'mid', got %v", mid)
	}

	if item, ok := mid[0].(*Object); !ok || !reflect.DeepEqual(item.Keys(), []string{"q", "p"}) {
		t.Errorf("Incorrect list element %v", mid[0])
	}
}

func TestKeysReturnsCopy(t *testing.T) {
	object, err := Parse([]byte(`{ "a": 1, "b": 2 }`))
	if err != nil {
		t.Fatalf("Unexpected error parsing object (%v)", err)
	}

	keys := object.Keys()
	keys[0] = "z"
	_ = append(keys[:1], "y")

	if !reflect.DeepEqual(object.Keys(), []string{"a", "b"}) {
		t.Errorf("Key order modified through Keys() - got:%v", object.Keys())
	}

	object.Set("c", 3)
	if !reflect.DeepEqual(keys, []string{"z", "y"}) {
		t.Errorf("Returned keys modified by Set - got:%v", keys)
	}
}

func TestParseWithInvalidDocument(t *testing.T) {
	tests := []string{
		``,
		`[1,2,3]`,
		`"text"`,
		`{ "a": 1 `,
		`{ "a": 1 } { "b": 2 }`,
	}

	for _, test := range tests {
		if _, err := Parse([]byte(test)); err == nil {
			t.Errorf("Expected error parsing '%v'", test)
		}
	}
}

func TestObjectAccessors(t *testing.T) {
	object, err := Parse([]byte(`{ "s": "x", "n": 2.0, "l": [1], "o": {}, "z": null }`))
	if err != nil {
		t.Fatalf("Unexpected error parsing object (%v)", err)
	}

	if v, ok := object.Text("s"); !ok || v != "x" {
		t.Errorf("Text('s') returned %v,%v", v, ok)
	}

	if v, ok := object.Text("n"); !ok || v != "2" {
		t.Errorf("Text('n') returned %v,%v", v, ok)
	}

	if _, ok := object.Text("z"); ok {
		t.Errorf("Text('z') should not report a null field")
	}

	if _, ok := object.Text("missing"); ok {
		t.Errorf("Text('missing') should not report a missing field")
	}

	if _, ok := object.List("s"); ok {
		t.Errorf("List('s') should not report a string field")
	}

	if _, ok := object.Object("l"); ok {
		t.Errorf("Object('l') should not report a list field")
	}

	if o, ok := object.Object("o"); !ok || o.Len() != 0 {
		t.Errorf("Object('o') returned %v,%v", o, ok)
	}

	var nothing *Object
	if _, ok := nothing.Get("s"); ok {
		t.Errorf("Get on nil object should not report a field")
	}
}

func TestObjectRoundTripsThroughEncodingJSON(t *testing.T) {
	expected := `{"b":[1,{"d":"x","c":null}],"a":true}`

	var object Object
	if err := json.Unmarshal([]byte(expected), &object); err != nil {
		t.Fatalf("Unexpected error unmarshalling object (%v)", err)
	}

	b, err := json.Marshal(&object)
	if err != nil {
		t.Fatalf("Unexpected error marshalling object (%v)", err)
	}

	if string(b) != expected {
		t.Errorf("Incorrect JSON\n   expected: %v\n   got:      %v\n", expected, string(b))
	}
}
