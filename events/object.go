package events

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Object is a decoded JSON object that remembers the order in which its keys
// appeared. Lookups never dereference a field directly: every accessor reports
// whether the key exists and has the requested shape.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{
		keys:   []string{},
		values: map[string]any{},
	}
}

// Parse decodes a JSON document whose top level value must be an object.
func Parse(b []byte) (*Object, error) {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()

	v, err := decode(d)
	if err != nil {
		return nil, err
	}

	if _, err := d.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}

	object, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("expected JSON object, got %T", v)
	}

	return object, nil
}

func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Keys returns a copy of the keys in document order.
func (o *Object) Keys() []string {
	return append([]string{}, o.keys...)
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.values[key]

	return v, ok
}

// Text returns the rendered value of a scalar field. A missing or null field
// is reported as not present.
func (o *Object) Text(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok || v == nil {
		return "", false
	}

	return render(v), true
}

func (o *Object) List(key string) ([]any, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}

	list, ok := v.([]any)

	return list, ok
}

func (o *Object) Object(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}

	object, ok := v.(*Object)

	return object, ok && object != nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}

		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}

func (o *Object) UnmarshalJSON(b []byte) error {
	object, err := Parse(b)
	if err != nil {
		return err
	}

	*o = *object

	return nil
}

func decode(d *json.Decoder) (any, error) {
	token, err := d.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		object := NewObject()
		for d.More() {
			t, err := d.Token()
			if err != nil {
				return nil, err
			}

			key, ok := t.(string)
			if !ok {
				return nil, fmt.Errorf("invalid object key %v", t)
			}

			value, err := decode(d)
			if err != nil {
				return nil, err
			}

			object.Set(key, value)
		}

		if _, err := d.Token(); err != nil {
			return nil, err
		}

		return object, nil

	case '[':
		list := []any{}
		for d.More() {
			value, err := decode(d)
			if err != nil {
				return nil, err
			}

			list = append(list, value)
		}

		if _, err := d.Token(); err != nil {
			return nil, err
		}

		return list, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter '%v'", delim)
	}
}
