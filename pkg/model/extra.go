package model

import (
	"encoding/json"
	"reflect"
	"strings"
)

// ExtraProperties holds JSON members that are not part of a model's declared
// schema. The API allows arbitrary additional entries on open models; they are
// kept as raw JSON so a decode/encode round trip does not alter them.
type ExtraProperties map[string]json.RawMessage

// declaredKeys collects the JSON member names a struct declares, including
// fields contributed by embedded structs.
func declaredKeys(v any) map[string]struct{} {
	keys := make(map[string]struct{})
	collectKeys(reflect.TypeOf(v), keys)
	return keys
}

func collectKeys(t reflect.Type, keys map[string]struct{}) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if field.Anonymous && name == "" {
			collectKeys(field.Type, keys)
			continue
		}
		if name == "" {
			name = field.Name
		}
		keys[name] = struct{}{}
	}
}

func marshalWithExtras(v any, extras ExtraProperties) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return data, nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	// Declared members always win over extras of the same name.
	declared := declaredKeys(v)
	for name, raw := range extras {
		if _, ok := declared[name]; ok {
			continue
		}
		members[name] = raw
	}

	return json.Marshal(members)
}

func unmarshalWithExtras(data []byte, v any) (ExtraProperties, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	declared := declaredKeys(v)
	var extras ExtraProperties
	for name, raw := range members {
		if _, ok := declared[name]; ok {
			continue
		}
		if extras == nil {
			extras = make(ExtraProperties)
		}
		extras[name] = raw
	}

	return extras, nil
}
