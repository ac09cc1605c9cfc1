package events

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

const (
	ID             = "id"
	HasAttachments = "tem_attachments"
	Observation    = "observation"

	Attachments      = "attachments"
	CategoriesRatio  = "categoriesRatio"
	CostCentersRatio = "costCentersRatio"

	Yes = "Sim"
	No  = "Não"
)

var ignoreAttachments = fold("desconsiderar anexo")

// Flatten expands a financial event summary into one row per category ratio.
// An event without category ratios still yields a single row carrying the
// event id, the attachment flag and the observation.
func Flatten(record *Object, id string) []Row {
	if v, ok := record.Text(ID); ok {
		id = v
	}

	observation, _ := record.Text(Observation)
	attached := hasAttachments(record, observation)

	rows := []Row{}
	categories, _ := record.List(CategoriesRatio)

	for _, c := range categories {
		category, ok := c.(*Object)
		if !ok {
			continue
		}

		row := NewRow()
		row.Set(ID, id)
		row.Set(HasAttachments, attached)
		row.Set(Observation, observation)

		for _, k := range category.Keys() {
			v, _ := category.Get(k)
			if centres, ok := v.([]any); ok && k == CostCentersRatio {
				for i, cc := range centres {
					if centre, ok := cc.(*Object); ok {
						for _, ck := range centre.Keys() {
							cv, _ := centre.Get(ck)
							row.Set(fmt.Sprintf("%v.%v.%v.%v", CategoriesRatio, CostCentersRatio, i, ck), render(cv))
						}
					}
				}
				continue
			}

			row.Set(CategoriesRatio+"."+k, render(v))
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		row := NewRow()
		row.Set(ID, id)
		row.Set(HasAttachments, attached)
		row.Set(Observation, observation)

		rows = append(rows, row)
	}

	return rows
}

func hasAttachments(record *Object, observation string) string {
	if attachments, ok := record.List(Attachments); ok && len(attachments) > 0 {
		return Yes
	}

	if strings.Contains(fold(observation), ignoreAttachments) {
		return Yes
	}

	return No
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// render converts a decoded JSON value to its spreadsheet cell text.
func render(v any) string {
	switch value := v.(type) {
	case nil:
		return ""

	case string:
		return value

	case json.Number:
		if d, err := decimal.NewFromString(value.String()); err == nil {
			return d.String()
		}
		return value.String()

	case bool:
		if value {
			return "True"
		}
		return "False"

	default:
		if b, err := json.Marshal(value); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", value)
	}
}
