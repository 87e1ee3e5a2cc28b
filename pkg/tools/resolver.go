package tools

import (
	"context"

	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
)

// unknownName is the fallback display name when a best-effort detail lookup
// for an id-only reference fails.
const unknownName = "Unknown"

// namedItem is the id/name pair every resolvable resource reduces to.
type namedItem struct {
	ID   int
	Name string
}

// refResource describes one remote resource family the resolver can work
// against: recipes, foods and units share the same name-or-id duality.
type refResource struct {
	label  string
	search func(ctx context.Context, query string) ([]namedItem, error)
	detail func(ctx context.Context, id int) (string, error)
}

func (t *Toolset) foodResource() refResource {
	return refResource{
		label: "food",
		search: func(ctx context.Context, query string) ([]namedItem, error) {
			page, err := t.client.ListFoods(ctx, tandoor.ListQuery{Query: query})
			if err != nil {
				return nil, err
			}
			items := make([]namedItem, 0, len(page.Results))
			for _, f := range page.Results {
				items = append(items, namedItem{ID: f.ID, Name: f.Name})
			}
			return items, nil
		},
		detail: func(ctx context.Context, id int) (string, error) {
			food, err := t.client.GetFood(ctx, id)
			if err != nil {
				return "", err
			}
			return food.Name, nil
		},
	}
}

func (t *Toolset) unitResource() refResource {
	return refResource{
		label: "unit",
		search: func(ctx context.Context, query string) ([]namedItem, error) {
			page, err := t.client.ListUnits(ctx, tandoor.ListQuery{Query: query})
			if err != nil {
				return nil, err
			}
			items := make([]namedItem, 0, len(page.Results))
			for _, u := range page.Results {
				items = append(items, namedItem{ID: u.ID, Name: u.Name})
			}
			return items, nil
		},
		detail: func(ctx context.Context, id int) (string, error) {
			unit, err := t.client.GetUnit(ctx, id)
			if err != nil {
				return "", err
			}
			return unit.Name, nil
		},
	}
}

// resolveRef turns a caller-supplied name-or-id value into an id plus a
// populated display name.
//
// An integer id is accepted as-is; the display name is then recovered with a
// best-effort detail lookup that degrades to "Unknown" on failure. A string
// is resolved through the resource's search endpoint, taking the first match;
// zero matches yield a not-found error.
func (t *Toolset) resolveRef(ctx context.Context, resource refResource, value interface{}) (int, string, error) {
	if id, ok := intValue(value); ok {
		name, err := resource.detail(ctx, id)
		if err != nil {
			t.logger.Debug(ctx, "display name lookup failed, using fallback", map[string]interface{}{
				"resource": resource.label,
				"id":       id,
				"error":    err.Error(),
			})
			name = unknownName
		}
		return id, name, nil
	}

	query, ok := value.(string)
	if !ok {
		return 0, "", NewInvalidArgument("%s reference must be a name or a numeric id, got %T", resource.label, value)
	}

	items, err := resource.search(ctx, query)
	if err != nil {
		return 0, "", err
	}
	if len(items) == 0 {
		return 0, "", NewNotFound("%s not found: %q", resource.label, query)
	}
	if len(items) > 1 {
		t.logger.Debug(ctx, "multiple matches, taking first", map[string]interface{}{
			"resource": resource.label,
			"query":    query,
			"matches":  len(items),
		})
	}
	return items[0].ID, items[0].Name, nil
}
