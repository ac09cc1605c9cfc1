package events

import (
	"reflect"
	"testing"
)

func TestAssembleWithDynamicSchema(t *testing.T) {
	expected := Table{
		Header: []string{
			"id",
			"categoriesRatio.categoryId",
			"categoriesRatio.costCentersRatio.0.value",
			"categoriesRatio.value",
			"tem_attachments",
			"observation",
		},
		Records: [][]string{
			{"E1", "C1", "10", "", "Sim", "obs 1"},
			{"E2", "", "", "5", "Não", ""},
			{"E3", "", "", "", "Não", "obs 3"},
		},
	}

	rows := []Row{
		row("id", "E1", "tem_attachments", "Sim", "observation", "obs 1", "categoriesRatio.categoryId", "C1", "categoriesRatio.costCentersRatio.0.value", "10"),
		row("id", "E2", "tem_attachments", "Não", "observation", "", "categoriesRatio.value", "5"),
		row("id", "E3", "tem_attachments", "Não", "observation", "obs 3"),
	}

	table := Assemble(rows, DynamicSchema)

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestAssembleWithFixedSchema(t *testing.T) {
	expected := Table{
		Header: []string{"id", "categoriesRatio.value", "categoriesRatio.type", "tem_attachments", "observation"},
		Records: [][]string{
			{"E1", "10", "", "Sim", "obs"},
		},
	}

	rows := []Row{
		row("id", "E1", "tem_attachments", "Sim", "observation", "obs", "categoriesRatio.value", "10", "categoriesRatio.costCentersRatio.0.value", "10"),
	}

	schema := Fixed{"id", "categoriesRatio.value", "categoriesRatio.type", "tem_attachments", "observation"}
	table := Assemble(rows, schema)

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestAssembleWithNoRows(t *testing.T) {
	table := Assemble(nil, DynamicSchema)
	if len(table.Header) != 0 || len(table.Records) != 0 {
		t.Errorf("Expected empty table, got %v", *table)
	}

	table = Assemble(nil, ReceivablesSchema)
	if !reflect.DeepEqual(table.Header, []string(ReceivablesSchema)) || len(table.Records) != 0 {
		t.Errorf("Expected header-only table, got %v", *table)
	}
}

func TestParseSchema(t *testing.T) {
	tests := []struct {
		value    string
		fallback Schema
		expected Schema
	}{
		{"", DynamicSchema, DynamicSchema},
		{"", ReceivablesSchema, ReceivablesSchema},
		{"dynamic", ReceivablesSchema, DynamicSchema},
		{" Fixed ", DynamicSchema, ReceivablesSchema},
		{"fixed", Fixed{"id"}, Fixed{"id"}},
	}

	for _, test := range tests {
		schema, err := ParseSchema(test.value, test.fallback)
		if err != nil {
			t.Fatalf("Unexpected error parsing schema '%v' (%v)", test.value, err)
		}

		if !reflect.DeepEqual(schema, test.expected) {
			t.Errorf("Incorrect schema for '%v'\n   expected: %v\n   got:      %v\n", test.value, test.expected, schema)
		}
	}

	if _, err := ParseSchema("sparse", DynamicSchema); err == nil {
		t.Errorf("Expected error for invalid schema")
	}
}

func row(kv ...string) Row {
	r := NewRow()
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}

	return r
}
