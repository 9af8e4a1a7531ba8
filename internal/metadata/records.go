package metadata

import (
	"fmt"
	"time"
)

// RecordForm declares a form whose fields come from a Go record type.
// Fields already set on Definition are kept; otherwise InspectFields fills them.
type RecordForm struct {
	Module     string
	Definition FormDefinition
	Record     any
}

// AddRecordForms derives the given forms into the catalog. The record type
// name is recorded as the source so duplicates against YAML are reported.
func (c *Catalog) AddRecordForms(forms ...RecordForm) {
	if c.Sources == nil {
		c.Sources = make(map[string][]string)
	}
	for _, rf := range forms {
		c.addModule(rf.Module, "")

		def := rf.Definition
		if def.Fields == nil {
			def.Fields = InspectFields(rf.Record)
		}
		c.Forms = append(c.Forms, Derive(c.derivationModule(rf.Module), def))
		c.Sources[def.ID] = append(c.Sources[def.ID], fmt.Sprintf("%T", rf.Record))
	}
}

// AuditLogEntry is one recorded change. Entries are written by the services
// that own the entity, never through the form.
type AuditLogEntry struct {
	Action     string    `json:"action" binding:"required" form:"searchable"`
	Actor      string    `json:"actor" form:"email,searchable"`
	Entity     string    `json:"entity" form:"searchable"`
	OccurredAt time.Time `json:"occurredAt"`
	Details    string    `json:"details" form:"textarea"`
}

var readOnly = false

// recordForms are merged into the embedded catalog by LoadCatalog.
var recordForms = []RecordForm{
	{
		Module: "admin",
		Definition: FormDefinition{
			ID:           "auditLog",
			DisplayField: "action",
			AllowCreate:  &readOnly,
		},
		Record: AuditLogEntry{},
	},
}
