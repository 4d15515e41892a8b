// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package config

import (
	"reflect"
	"strings"
)

// sensitiveKeywords contains keywords that indicate sensitive fields.
// Any field name containing these keywords (case-insensitive) will be masked.
var sensitiveKeywords = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"api_key",
	"credential",
}

// MaskSecrets recursively masks sensitive fields in the given data structure.
// It replaces values with "***" for keys matching sensitive keywords.
// Supports: maps, slices, structs, pointers
func MaskSecrets(data any) any {
	if data == nil {
		return nil
	}

	val := reflect.ValueOf(data)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Map:
		result := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			if isSensitiveKey(key) {
				result[key] = "***"
			} else {
				result[key] = MaskSecrets(iter.Value().Interface())
			}
		}
		return result

	case reflect.Slice, reflect.Array:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			result[i] = MaskSecrets(val.Index(i).Interface())
		}
		return result

	case reflect.Struct:
		result := make(map[string]any)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			if isSensitiveKey(field.Name) {
				result[field.Name] = "***"
			} else {
				result[field.Name] = MaskSecrets(val.Field(i).Interface())
			}
		}
		return result

	default:
		return val.Interface()
	}
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lowerKey, keyword) {
			return true
		}
	}
	return false
}

// MaskEmail keeps the first character of the local part and the domain
// (baker@gmail.com -> b***@gmail.com).
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		if email == "" {
			return ""
		}
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
