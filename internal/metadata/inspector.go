package metadata

import (
	"reflect"
	"strings"
	"time"
	"unicode"
)

// InspectFields builds field definitions from the exported fields of a struct.
//
// Names come from the json tag (or the lower-camel Go name), required from a
// binding:"required" tag. The optional form tag overrides the rest:
//
//	Notes string `json:"notes" form:"textarea,searchable,label=Internal Notes"`
//
// Fields tagged json:"-" or form:"-" are skipped; embedded structs are flattened.
func InspectFields(v any) []FieldDefinition {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]FieldDefinition, 0, t.NumField())
	inspectStruct(t, &fields)
	return fields
}

func inspectStruct(t reflect.Type, out *[]FieldDefinition) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				inspectStruct(ft, out)
				continue
			}
		}
		if field.PkgPath != "" { // unexported
			continue
		}

		name := jsonName(field)
		if name == "-" || field.Tag.Get("form") == "-" {
			continue
		}

		def := FieldDefinition{
			Name:     name,
			Type:     mapFieldType(field),
			Required: isRequired(field),
		}
		applyFormTag(&def, field.Tag.Get("form"))
		*out = append(*out, def)
	}
}

func mapFieldType(field reflect.StructField) FieldType {
	t := field.Type
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == reflect.TypeOf(time.Time{}) {
		return FieldDate
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return FieldNumber
	case reflect.Bool:
		return FieldSelect
	}

	if strings.Contains(strings.ToLower(field.Name), "email") {
		return FieldEmail
	}
	return FieldText
}

// applyFormTag reads "type,searchable,label=...,validation=..." options.
func applyFormTag(def *FieldDefinition, tag string) {
	if tag == "" {
		return
	}
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		key, value, hasValue := strings.Cut(opt, "=")
		switch {
		case opt == "":
		case opt == "searchable":
			def.Searchable = true
		case opt == "required":
			def.Required = true
		case hasValue && key == "label":
			def.Label = value
		case hasValue && key == "validation":
			def.Validation = value
		case !hasValue:
			def.Type = FieldType(opt)
		}
	}
}

func jsonName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	runes := []rune(field.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func isRequired(field reflect.StructField) bool {
	if tag, ok := field.Tag.Lookup("binding"); ok {
		return strings.Contains(tag, "required")
	}
	return false
}
