package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
)

// listArgs extracts the shared query/limit filters of the reference listing
// tools.
func listArgs(args map[string]interface{}) (tandoor.ListQuery, error) {
	query, _, err := optionalString(args, "query")
	if err != nil {
		return tandoor.ListQuery{}, err
	}
	limit, _, err := optionalInt(args, "limit")
	if err != nil {
		return tandoor.ListQuery{}, err
	}
	return tandoor.ListQuery{Query: query, PageSize: limit}, nil
}

// getKeywords lists recipe keywords.
func (t *Toolset) getKeywords(ctx context.Context, args map[string]interface{}) (string, error) {
	query, err := listArgs(args)
	if err != nil {
		return "", err
	}
	page, err := t.client.ListKeywords(ctx, query)
	if err != nil {
		return "", err
	}
	if len(page.Results) == 0 {
		return "No keywords found.", nil
	}
	lines := make([]string, 0, len(page.Results))
	for _, kw := range page.Results {
		lines = append(lines, fmt.Sprintf("ID: %d, Name: %s", kw.ID, kw.Name))
	}
	return strings.Join(lines, "\n"), nil
}

// getFoods lists foods.
func (t *Toolset) getFoods(ctx context.Context, args map[string]interface{}) (string, error) {
	query, err := listArgs(args)
	if err != nil {
		return "", err
	}
	page, err := t.client.ListFoods(ctx, query)
	if err != nil {
		return "", err
	}
	if len(page.Results) == 0 {
		return "No foods found.", nil
	}
	lines := make([]string, 0, len(page.Results))
	for _, food := range page.Results {
		line := fmt.Sprintf("ID: %d, Name: %s", food.ID, food.Name)
		if food.Description != "" {
			line += ", Description: " + food.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// getUnits lists measurement units.
func (t *Toolset) getUnits(ctx context.Context, args map[string]interface{}) (string, error) {
	query, err := listArgs(args)
	if err != nil {
		return "", err
	}
	page, err := t.client.ListUnits(ctx, query)
	if err != nil {
		return "", err
	}
	if len(page.Results) == 0 {
		return "No units found.", nil
	}
	lines := make([]string, 0, len(page.Results))
	for _, unit := range page.Results {
		line := fmt.Sprintf("ID: %d, Name: %s", unit.ID, unit.Name)
		if unit.Description != "" {
			line += ", Description: " + unit.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
