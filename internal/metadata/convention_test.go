package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_Defaults(t *testing.T) {
	mod := Module{ID: "finance", Label: "Finance"}
	def := FormDefinition{
		ID: "invoiceList",
		Fields: []FieldDefinition{
			{Name: "period", Type: FieldText},
			{Name: "name", Type: FieldText, Required: true, Searchable: true},
			{Name: "status", Type: FieldSelect, Searchable: true, Validation: "oneOf:draft,paid"},
			{Name: "totalAmount", Label: "Total", Type: FieldNumber},
		},
	}

	m := Derive(mod, def)

	assert.Equal(t, "invoiceList", m.ID)
	assert.Equal(t, "Invoice List", m.Name)
	assert.Equal(t, "/api/invoicelist", m.APIEndpoint)
	assert.Equal(t, "/finance/invoice-list", m.Page)
	assert.Equal(t, "finance", m.Module)
	assert.Equal(t, "name", m.DisplayField)
	assert.Equal(t, []string{"name", "status"}, m.SearchFields)
	assert.Equal(t, "Create Invoice List", m.CreateButtonText)
	assert.True(t, m.AllowCreate)
	assert.True(t, m.ShowSearch)
	assert.Equal(t, []Breadcrumb{
		{Label: "Dashboard", Path: "/"},
		{Label: "Finance", Path: "/finance"},
		{Label: "Invoice List", Path: "/finance/invoice-list"},
	}, m.Breadcrumbs)

	require.Len(t, m.Fields, 4)
	assert.Equal(t, "Period", m.Fields[0].Label)
	assert.Equal(t, "Total", m.Fields[3].Label)
	assert.Equal(t, "oneOf:draft,paid", m.Fields[2].Validation)

	assert.NoError(t, Validate(m))
}

func TestDerive_ExplicitValuesWin(t *testing.T) {
	no := false
	def := FormDefinition{
		ID:               "companyProfile",
		Name:             "Company",
		APIEndpoint:      "/api/v2/company",
		DisplayField:     "legalName",
		CreateButtonText: "Register company",
		Page:             "/settings/company",
		AllowCreate:      &no,
		ShowSearch:       &no,
		SearchFields:     []string{"legalName"},
		Breadcrumbs: []Breadcrumb{
			{Label: "Home", Path: "/"},
			{Label: "Company", Path: "/settings/company"},
		},
		Fields: []FieldDefinition{
			{Name: "name", Type: FieldText, Searchable: true},
			{Name: "legalName", Type: FieldText},
		},
	}

	m := Derive(Module{ID: "admin"}, def)

	assert.Equal(t, "Company", m.Name)
	assert.Equal(t, "/api/v2/company", m.APIEndpoint)
	assert.Equal(t, "legalName", m.DisplayField)
	assert.Equal(t, "Register company", m.CreateButtonText)
	assert.Equal(t, "/settings/company", m.Page)
	assert.False(t, m.AllowCreate)
	assert.False(t, m.ShowSearch)
	assert.Equal(t, []string{"legalName"}, m.SearchFields)
	assert.Equal(t, def.Breadcrumbs, m.Breadcrumbs)
	assert.NoError(t, Validate(m))

	// derived slices do not alias the definition
	m.Breadcrumbs[0].Label = "changed"
	assert.Equal(t, "Home", def.Breadcrumbs[0].Label)
}

func TestDerive_DisplayFieldFallsBackToFirstField(t *testing.T) {
	m := Derive(Module{ID: "support"}, FormDefinition{
		ID: "ticket",
		Fields: []FieldDefinition{
			{Name: "subject", Type: FieldText},
			{Name: "body", Type: FieldTextarea},
		},
	})

	assert.Equal(t, "subject", m.DisplayField)
	assert.Equal(t, []string{}, m.SearchFields)
	assert.False(t, m.ShowSearch)
	assert.Equal(t, "Support", m.Breadcrumbs[1].Label)
}

func TestDerive_EmptySearchFieldsStayEmpty(t *testing.T) {
	m := Derive(Module{ID: "hr"}, FormDefinition{
		ID:           "payslip",
		SearchFields: []string{},
		Fields:       []FieldDefinition{{Name: "name", Type: FieldText, Searchable: true}},
	})

	assert.Empty(t, m.SearchFields)
	assert.False(t, m.ShowSearch)
}

func TestDerive_DoesNotRepairInvalidInput(t *testing.T) {
	m := Derive(Module{ID: "hr"}, FormDefinition{
		ID:           "broken",
		DisplayField: "ghost",
		Fields:       []FieldDefinition{{Name: "name", Type: "checkbox"}},
	})

	assert.Equal(t, "ghost", m.DisplayField)
	assert.Error(t, Validate(m))
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "invoice-list", Kebab("invoiceList"))
	assert.Equal(t, "chart-of-accounts", Kebab("chartOfAccounts"))
	assert.Equal(t, "rfq", Kebab("rfq"))
	assert.Equal(t, "purchase-order", Kebab("purchase_order"))
}
