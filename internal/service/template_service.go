// internal/service/template_service.go
package service

import (
    "strings"
)

// RenderTemplate replaces {key} placeholders with their values. Used for
// both the completion prompt and the fallback email body.
func RenderTemplate(template string, data map[string]string) string {
    result := template
    for k, v := range data {
        result = strings.ReplaceAll(result, "{"+k+"}", v)
    }
    return result
}
