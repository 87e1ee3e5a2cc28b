package tools_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
	"github.com/Ingenimax/tandoor-mcp/pkg/tools"
)

func mealTypesHandler(types ...tandoor.MealType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types)
	}
}

func TestCreateMealPlanMixedResolution(t *testing.T) {
	var planned []tandoor.MealPlanEntry
	fake := newFakeTandoor()
	fake.handle("/api/meal-type/", mealTypesHandler(
		tandoor.MealType{ID: 1, Name: "Breakfast"},
		tandoor.MealType{ID: 2, Name: "Dinner"},
	))
	fake.handle("/api/recipe/", func(w http.ResponseWriter, r *http.Request) {
		// Name search for "Chili" finds nothing.
		assert.Equal(t, "Chili", r.URL.Query().Get("query"))
		emptyPage(w)
	})
	fake.handle("/api/recipe/42/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tandoor.Recipe{
			ID:       42,
			Name:     "Tacos",
			Keywords: []tandoor.Keyword{{ID: 3, Name: "mexican"}},
		})
	})
	fake.handle("/api/meal-plan/", func(w http.ResponseWriter, r *http.Request) {
		var entry tandoor.MealPlanEntry
		require.NoError(t, decodeBody(r, &entry))
		planned = append(planned, entry)
		entry.ID = 1000 + len(planned)
		writeJSON(w, entry)
	})
	dispatcher := newTestDispatcher(t, fake)

	result, err := dispatcher.Dispatch(context.Background(), "create_tandoor_meal_plan", map[string]interface{}{
		"recipes":    []interface{}{"Chili", float64(42)},
		"start_date": "2025-03-01",
		"meal_type":  "dinner",
	})

	// One recipe resolved, so the operation reports per-item outcomes instead
	// of failing.
	require.NoError(t, err)
	assert.Contains(t, result, "Tacos")
	assert.Contains(t, result, "recipe 42")
	assert.Contains(t, result, "Errors encountered")
	assert.Contains(t, result, `"Chili"`)

	require.Len(t, planned, 1)
	entry := planned[0]
	require.NotNil(t, entry.Recipe)
	assert.Equal(t, 42, entry.Recipe.ID)
	assert.Equal(t, "Tacos", entry.Recipe.Name)
	assert.Equal(t, []tandoor.Keyword{{ID: 3, Name: "mexican"}}, entry.Recipe.Keywords)
	require.NotNil(t, entry.MealType)
	assert.Equal(t, 2, entry.MealType.ID)
	assert.Equal(t, "2025-03-01 00:00:00", entry.FromDate)
	assert.Equal(t, "1", entry.Servings)
}

func TestCreateMealPlanRejectsUnpaddedDate(t *testing.T) {
	fake := newFakeTandoor()
	dispatcher := newTestDispatcher(t, fake)

	_, err := dispatcher.Dispatch(context.Background(), "create_tandoor_meal_plan", map[string]interface{}{
		"recipes":    []interface{}{"Chili"},
		"start_date": "2025-3-1",
		"meal_type":  "Dinner",
	})
	toolErr := requireToolError(t, err, tools.ErrInvalidArgument)
	assert.Contains(t, toolErr.Message, "start_date")
	assert.Equal(t, 0, fake.callCount(), "validation must happen before any remote call")
}

func TestCreateMealPlanUnknownMealType(t *testing.T) {
	fake := newFakeTandoor()
	fake.handle("/api/meal-type/", mealTypesHandler(tandoor.MealType{ID: 1, Name: "Breakfast"}))
	dispatcher := newTestDispatcher(t, fake)

	_, err := dispatcher.Dispatch(context.Background(), "create_tandoor_meal_plan", map[string]interface{}{
		"recipes":    []interface{}{"Chili"},
		"start_date": "2025-03-01",
		"meal_type":  "Second Breakfast",
	})
	toolErr := requireToolError(t, err, tools.ErrInvalidArgument)
	assert.Contains(t, toolErr.Message, "Second Breakfast")
}

func TestCreateMealPlanAllUnresolvedFails(t *testing.T) {
	fake := newFakeTandoor()
	fake.handle("/api/meal-type/", mealTypesHandler(tandoor.MealType{ID: 2, Name: "Dinner"}))
	fake.handle("/api/recipe/", func(w http.ResponseWriter, r *http.Request) {
		emptyPage(w)
	})
	dispatcher := newTestDispatcher(t, fake)

	_, err := dispatcher.Dispatch(context.Background(), "create_tandoor_meal_plan", map[string]interface{}{
		"recipes":    []interface{}{"Ghost Soup", "Phantom Stew"},
		"start_date": "2025-03-01",
		"meal_type":  "Dinner",
	})
	toolErr := requireToolError(t, err, tools.ErrInternal)
	assert.Contains(t, toolErr.Message, "Ghost Soup")
	assert.Contains(t, toolErr.Message, "Phantom Stew")
}

func TestCreateMealPlanRecipeLookupFallsBack(t *testing.T) {
	var planned tandoor.MealPlanEntry
	fake := newFakeTandoor()
	fake.handle("/api/meal-type/", mealTypesHandler(tandoor.MealType{ID: 2, Name: "Dinner"}))
	fake.handle("/api/recipe/42/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	fake.handle("/api/meal-plan/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, decodeBody(r, &planned))
		writeJSON(w, planned)
	})
	dispatcher := newTestDispatcher(t, fake)

	result, err := dispatcher.Dispatch(context.Background(), "create_tandoor_meal_plan", map[string]interface{}{
		"recipes":    []interface{}{float64(42)},
		"start_date": "2025-03-01",
		"meal_type":  "Dinner",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "Recipe 42")

	// The failed sub-lookup degrades to a placeholder name and empty keyword
	// list instead of aborting.
	require.NotNil(t, planned.Recipe)
	assert.Equal(t, "Recipe 42", planned.Recipe.Name)
	assert.NotNil(t, planned.Recipe.Keywords)
	assert.Empty(t, planned.Recipe.Keywords)
}

func TestCreateMealPlanReportsFailedSubmissions(t *testing.T) {
	fake := newFakeTandoor()
	fake.handle("/api/meal-type/", mealTypesHandler(tandoor.MealType{ID: 2, Name: "Dinner"}))
	fake.handle("/api/recipe/42/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tandoor.Recipe{ID: 42, Name: "Tacos"})
	})
	fake.handle("/api/meal-plan/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"quota exceeded"}`, http.StatusBadRequest)
	})
	dispatcher := newTestDispatcher(t, fake)

	result, err := dispatcher.Dispatch(context.Background(), "create_tandoor_meal_plan", map[string]interface{}{
		"recipes":    []interface{}{float64(42)},
		"start_date": "2025-03-01",
		"meal_type":  "Dinner",
	})

	// The submission failed but an id was resolved, so the outcome is still a
	// text result carrying the remote error body.
	require.NoError(t, err)
	assert.Contains(t, result, "Errors encountered")
	assert.Contains(t, result, "quota exceeded")
}

func TestGetMealTypesIdempotent(t *testing.T) {
	fake := newFakeTandoor()
	fake.handle("/api/meal-type/", mealTypesHandler(
		tandoor.MealType{ID: 1, Name: "Breakfast"},
		tandoor.MealType{ID: 2, Name: "Dinner"},
	))
	dispatcher := newTestDispatcher(t, fake)

	first, err := dispatcher.Dispatch(context.Background(), "get_meal_types", nil)
	require.NoError(t, err)
	second, err := dispatcher.Dispatch(context.Background(), "get_meal_types", nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Breakfast")
}

func TestGetMealPlansFormatsEntries(t *testing.T) {
	fake := newFakeTandoor()
	fake.handle("/api/meal-plan/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("from_date"))
		writeJSON(w, []tandoor.MealPlanEntry{{
			ID:       11,
			Recipe:   &tandoor.RecipeRef{ID: 42, Name: "Tacos"},
			MealType: &tandoor.MealType{ID: 2, Name: "Dinner"},
			FromDate: "2025-03-01 00:00:00",
			Servings: "2",
		}})
	})
	dispatcher := newTestDispatcher(t, fake)

	result, err := dispatcher.Dispatch(context.Background(), "get_meal_plans", map[string]interface{}{
		"from_date": "2025-03-01",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "Tacos")
	assert.Contains(t, result, "Meal type: Dinner")
}

func TestGetMealPlansEmpty(t *testing.T) {
	fake := newFakeTandoor()
	fake.handle("/api/meal-plan/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []tandoor.MealPlanEntry{})
	})
	dispatcher := newTestDispatcher(t, fake)

	result, err := dispatcher.Dispatch(context.Background(), "get_meal_plans", nil)
	require.NoError(t, err)
	assert.Equal(t, "No meal plan entries found.", result)
}
