package tools_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ingenimax/tandoor-mcp/pkg/tools"
)

func TestDispatchUnknownTool(t *testing.T) {
	dispatcher := newTestDispatcher(t, newFakeTandoor())

	_, err := dispatcher.Dispatch(context.Background(), "summon_dinner", nil)
	toolErr := requireToolError(t, err, tools.ErrInvalidArgument)
	assert.Contains(t, toolErr.Message, "summon_dinner")
	assert.True(t, errors.Is(err, tools.ErrUnknownTool))
}

func TestDispatchWrapsRemoteFailure(t *testing.T) {
	fake := newFakeTandoor()
	fake.handle("/api/meal-type/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"server exploded"}`, http.StatusInternalServerError)
	})
	dispatcher := newTestDispatcher(t, fake)

	_, err := dispatcher.Dispatch(context.Background(), "get_meal_types", nil)
	toolErr := requireToolError(t, err, tools.ErrInternal)

	// Remote failures keep the status code and the raw body for diagnostics.
	assert.Contains(t, toolErr.Message, "500")
	assert.Contains(t, toolErr.Message, "server exploded")
}

func TestDispatchReportsNetworkError(t *testing.T) {
	fake := newFakeTandoor()
	dispatcher := newTestDispatcherClosed(t, fake)

	_, err := dispatcher.Dispatch(context.Background(), "get_meal_types", nil)
	toolErr := requireToolError(t, err, tools.ErrInternal)
	assert.Contains(t, toolErr.Message, "network error")
}

func TestRegistryListsAllTools(t *testing.T) {
	registry := newTestRegistry(t, newFakeTandoor())
	specs := registry.Specs()

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	assert.Equal(t, []string{
		"add_shopping_list_item",
		"create_tandoor_meal_plan",
		"create_tandoor_recipe",
		"get_foods",
		"get_keywords",
		"get_meal_plans",
		"get_meal_types",
		"get_recipe_details",
		"get_recipes",
		"get_shopping_list",
		"get_units",
		"remove_shopping_list_item",
		"update_shopping_list_item",
	}, names)
}

func TestSpecInputSchema(t *testing.T) {
	registry := newTestRegistry(t, newFakeTandoor())

	var createPlan *tools.Spec
	for _, spec := range registry.Specs() {
		if spec.Name == "create_tandoor_meal_plan" {
			s := spec
			createPlan = &s
		}
	}
	require.NotNil(t, createPlan)

	schema := createPlan.InputSchema()
	assert.Equal(t, "object", schema["type"])
	assert.ElementsMatch(t, []string{"meal_type", "recipes", "start_date"}, schema["required"])

	properties, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	recipes, ok := properties["recipes"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "array", recipes["type"])
}
