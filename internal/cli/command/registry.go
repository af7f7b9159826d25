package command

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Registry returns all remote CLI commands keyed by "service action".
func Registry() map[string]Command {
	commands := []Command{
		{
			Service:      "dsa",
			Action:       "problems",
			Method:       "GET",
			PathTemplate: "/api/dsa/problems",
			Fields: []Field{
				{Name: "topic", Prompt: "topic", Type: FieldString, In: InQuery},
				{Name: "difficulty", Prompt: "difficulty", Type: FieldString, In: InQuery},
				{Name: "limit", Prompt: "limit", Type: FieldInt, In: InQuery},
			},
		},
		{
			Service:      "dsa",
			Action:       "topics",
			Method:       "GET",
			PathTemplate: "/api/dsa/topics",
		},
		{
			Service:      "dsa",
			Action:       "difficulties",
			Method:       "GET",
			PathTemplate: "/api/dsa/difficulties",
		},
		{
			Service:      "cp",
			Action:       "problems",
			Method:       "GET",
			PathTemplate: "/api/cp/problems",
			Fields: []Field{
				{Name: "ratingMin", Aliases: []string{"rating_min", "min"}, Prompt: "ratingMin", Type: FieldInt, In: InQuery},
				{Name: "ratingMax", Aliases: []string{"rating_max", "max"}, Prompt: "ratingMax", Type: FieldInt, In: InQuery},
				{Name: "topic", Prompt: "topic", Type: FieldString, In: InQuery},
			},
		},
		{
			Service:      "cp",
			Action:       "topics",
			Method:       "GET",
			PathTemplate: "/api/cp/topics",
		},
		{
			Service:      "cp",
			Action:       "rating-ranges",
			Method:       "GET",
			PathTemplate: "/api/cp/rating-ranges",
		},
		{
			Service:      "contest",
			Action:       "list",
			Method:       "GET",
			PathTemplate: "/api/contests",
		},
		{
			Service:      "sheet",
			Action:       "list",
			Method:       "GET",
			PathTemplate: "/api/sheets",
		},
		{
			Service:      "sheet",
			Action:       "show",
			Method:       "GET",
			PathTemplate: "/api/sheets/:key",
			Fields: []Field{
				{Name: "key", Prompt: "sheet key", Type: FieldString, In: InPath, Required: true},
			},
		},
		{
			Service:      "ai",
			Action:       "health",
			Method:       "GET",
			PathTemplate: "/api/ai/health",
		},
		{
			Service:      "ai",
			Action:       "explain",
			Method:       "POST",
			PathTemplate: "/api/ai/explain",
			Fields: []Field{
				{Name: "title", Prompt: "problem title", Type: FieldString, In: InBody, Required: true},
				{Name: "url", Prompt: "reference url", Type: FieldString, In: InBody},
				{Name: "details", Prompt: "details", Type: FieldString, In: InBody},
			},
		},
		{
			Service:      "ai",
			Action:       "hints",
			Method:       "POST",
			PathTemplate: "/api/ai/hints",
			Fields: []Field{
				{Name: "title", Prompt: "problem title", Type: FieldString, In: InBody, Required: true},
				{Name: "url", Prompt: "reference url", Type: FieldString, In: InBody},
				{Name: "currentThought", Aliases: []string{"thought"}, Prompt: "current thought", Type: FieldString, In: InBody},
			},
		},
		{
			Service:      "ai",
			Action:       "solution",
			Method:       "POST",
			PathTemplate: "/api/ai/solution",
			Fields: []Field{
				{Name: "title", Prompt: "problem title", Type: FieldString, In: InBody, Required: true},
				{Name: "url", Prompt: "reference url", Type: FieldString, In: InBody},
				{Name: "language", Prompt: "language (c | cpp | java)", Type: FieldString, In: InBody, Required: true},
			},
		},
	}

	result := make(map[string]Command, len(commands))
	for _, cmd := range commands {
		key := fmt.Sprintf("%s %s", cmd.Service, cmd.Action)
		result[key] = cmd
	}
	return result
}

// BuildRequest creates an HTTP request spec based on the command and the
// supplied parameters. Path fields replace :name placeholders, query
// fields become the query string, body fields become a JSON object.
func BuildRequest(cmd Command, params Params) (RequestSpec, error) {
	params.Canonicalize(cmd.Fields)

	path := cmd.PathTemplate
	query := url.Values{}
	bodyFields := map[string]string{}

	for _, field := range cmd.Fields {
		value := params.Get(field.Name)
		if value == "" {
			if field.Required {
				return RequestSpec{}, fmt.Errorf("missing parameter: %s", field.Name)
			}
			continue
		}
		if err := validateField(field, value); err != nil {
			return RequestSpec{}, err
		}
		switch field.In {
		case InPath:
			path = strings.ReplaceAll(path, ":"+field.Name, url.PathEscape(value))
		case InQuery:
			query.Set(field.Name, value)
		case InBody:
			bodyFields[field.Name] = value
		}
	}

	if strings.Contains(path, ":") {
		return RequestSpec{}, fmt.Errorf("unresolved path parameter in %s", path)
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var body []byte
	if cmd.Method != "GET" && cmd.Method != "DELETE" && len(bodyFields) > 0 {
		var err error
		body, err = json.Marshal(bodyFields)
		if err != nil {
			return RequestSpec{}, fmt.Errorf("marshal request body failed: %w", err)
		}
	}

	return RequestSpec{
		Method: cmd.Method,
		Path:   path,
		Body:   body,
	}, nil
}
