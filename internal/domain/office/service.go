package office

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldLabels maps validator field names to the labels shown to the admin.
var fieldLabels = map[string]string{
	"Name":              "office name",
	"ShortID":           "short id",
	"BillingProviderID": "billing provider",
	"TimeZone":          "time zone",
}

// ValidationError names every save-gate field that failed, in a form suitable
// for a blocking user-facing message.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required: " + strings.Join(e.Fields, ", ")
}

// ValidateForSave is the save-time gate: office name, short id, billing
// provider and time zone must be present. It never touches the network.
func ValidateForSave(o *Office) error {
	err := validate.StructPartial(o, "Name", "ShortID", "BillingProviderID", "TimeZone")
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		label := fieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		ve.Fields = append(ve.Fields, label)
	}
	return ve
}

// Search filters summaries by a free-text query matched case-insensitively
// against name, short id, and the decimal office id, then sorts by name.
func Search(offices []Summary, query string) []Summary {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Summary, 0, len(offices))
	for _, o := range offices {
		if q == "" || matchesQuery(o, q) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func matchesQuery(o Summary, q string) bool {
	if strings.Contains(strings.ToLower(o.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(o.ShortID), q) {
		return true
	}
	return strings.Contains(strconv.Itoa(o.ID), q)
}
