package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditInfo struct {
	CreatedAt time.Time `json:"createdAt" form:"-"`
	Owner     string    `json:"owner"`
}

type vendorRecord struct {
	auditInfo
	Name         string  `json:"name" binding:"required" form:"searchable"`
	ContactEmail string  `json:"contactEmail"`
	Rating       float64 `json:"rating"`
	Notes        string  `json:"notes" form:"textarea,label=Internal Notes,validation=max:500"`
	Active       bool
	secret       string
	Ignored      string `json:"-"`
}

func TestInspectFields(t *testing.T) {
	fields := InspectFields(&vendorRecord{})

	require.Len(t, fields, 6)
	assert.Equal(t, FieldDefinition{Name: "owner", Type: FieldText}, fields[0])
	assert.Equal(t, FieldDefinition{Name: "name", Type: FieldText, Required: true, Searchable: true}, fields[1])
	assert.Equal(t, FieldEmail, fields[2].Type)
	assert.Equal(t, FieldNumber, fields[3].Type)
	assert.Equal(t, FieldDefinition{
		Name:       "notes",
		Label:      "Internal Notes",
		Type:       FieldTextarea,
		Validation: "max:500",
	}, fields[4])
	assert.Equal(t, FieldDefinition{Name: "active", Type: FieldSelect}, fields[5])
}

func TestInspectFields_NotAStruct(t *testing.T) {
	assert.Nil(t, InspectFields("vendor"))
	assert.Nil(t, InspectFields(nil))
}

func TestInspectFields_DeriveAndValidate(t *testing.T) {
	def := FormDefinition{ID: "vendorRecord", Fields: InspectFields(vendorRecord{})}
	m := Derive(Module{ID: "purchasing"}, def)

	require.NoError(t, Validate(m))
	assert.Equal(t, "name", m.DisplayField)
	assert.Equal(t, []string{"name"}, m.SearchFields)
	assert.Equal(t, "Contact Email", m.Fields[2].Label)
	assert.Equal(t, "Internal Notes", m.Fields[4].Label)
}
