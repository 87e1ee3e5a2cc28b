package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
)

// datePattern is the strict calendar date format accepted for meal plans.
// Validated before any remote call is made.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// createMealPlan schedules one or more recipes for a date and meal type.
//
// Resolution and submission run sequentially in caller order so the per-item
// outcome log stays strictly ordered. A single unresolvable recipe does not
// abort the batch; only a batch where nothing resolved fails outright.
func (t *Toolset) createMealPlan(ctx context.Context, args map[string]interface{}) (string, error) {
	recipeRefs, err := requireList(args, "recipes")
	if err != nil {
		return "", err
	}
	startDate, err := requireString(args, "start_date")
	if err != nil {
		return "", err
	}
	if !datePattern.MatchString(startDate) {
		return "", NewInvalidArgument("start_date must be formatted as YYYY-MM-DD, got %q", startDate)
	}
	mealTypeName, err := requireString(args, "meal_type")
	if err != nil {
		return "", err
	}
	title, _, err := optionalString(args, "title")
	if err != nil {
		return "", err
	}
	note, _, err := optionalString(args, "note")
	if err != nil {
		return "", err
	}
	servings, ok, err := optionalNumber(args, "servings")
	if err != nil {
		return "", err
	}
	if !ok {
		servings = 1
	}
	servingsText := formatAmount(servings)

	mealType, err := t.findMealType(ctx, mealTypeName)
	if err != nil {
		return "", err
	}

	type resolvedRecipe struct {
		id    int
		label string
	}

	var result BatchResult
	var resolved []resolvedRecipe

	for _, ref := range recipeRefs {
		if id, ok := intValue(ref); ok {
			resolved = append(resolved, resolvedRecipe{id: id, label: fmt.Sprintf("recipe %d", id)})
			continue
		}
		name, ok := ref.(string)
		if !ok {
			result.Failure(fmt.Sprintf("unsupported recipe reference of type %T", ref))
			continue
		}

		page, err := t.client.SearchRecipes(ctx, tandoor.RecipeQuery{Query: name, PageSize: 1})
		if err != nil {
			result.Failure(fmt.Sprintf("search for %q failed: %v", name, err))
			continue
		}
		if len(page.Results) == 0 {
			result.Failure(fmt.Sprintf("recipe not found: %q", name))
			continue
		}
		if page.Count > 1 {
			t.logger.Debug(ctx, "multiple recipe matches, taking first", map[string]interface{}{
				"query":   name,
				"matches": page.Count,
			})
		}
		resolved = append(resolved, resolvedRecipe{id: page.Results[0].ID, label: name})
	}

	if len(resolved) == 0 {
		return "", NewInternal("no recipes could be resolved: %s", strings.Join(result.Failures, "; "))
	}

	for _, recipe := range resolved {
		// Best-effort: recover the current name and keyword list. The API
		// requires keywords to be echoed back on the plan entry.
		name := fmt.Sprintf("Recipe %d", recipe.id)
		keywords := []tandoor.Keyword{}
		if full, err := t.client.GetRecipe(ctx, recipe.id); err == nil {
			name = full.Name
			if full.Keywords != nil {
				keywords = full.Keywords
			}
		} else {
			t.logger.Debug(ctx, "recipe lookup failed, using placeholder name", map[string]interface{}{
				"recipe_id": recipe.id,
				"error":     err.Error(),
			})
		}

		entry := &tandoor.MealPlanEntry{
			Title:    title,
			Note:     note,
			Servings: servingsText,
			FromDate: startDate + " 00:00:00",
			MealType: mealType,
			Recipe: &tandoor.RecipeRef{
				ID:       recipe.id,
				Name:     name,
				Keywords: keywords,
			},
		}

		if _, err := t.client.CreateMealPlan(ctx, entry); err != nil {
			result.Failure(fmt.Sprintf("%s: %v", recipe.label, err))
			continue
		}
		result.Success(fmt.Sprintf("Scheduled %q (recipe %d) for %s on %s.", name, recipe.id, mealType.Name, startDate))
	}

	return result.Render(), nil
}

// findMealType matches a meal type by name, case-insensitively. An unknown
// name fails the whole operation; no partial plan is created.
func (t *Toolset) findMealType(ctx context.Context, name string) (*tandoor.MealType, error) {
	mealTypes, err := t.client.ListMealTypes(ctx)
	if err != nil {
		return nil, err
	}
	for _, mt := range mealTypes {
		if strings.EqualFold(mt.Name, name) {
			found := mt
			return &found, nil
		}
	}
	available := make([]string, 0, len(mealTypes))
	for _, mt := range mealTypes {
		available = append(available, mt.Name)
	}
	return nil, NewInvalidArgument("unknown meal type %q, available: %s", name, strings.Join(available, ", "))
}

// getMealPlans lists meal plan entries with optional filters.
func (t *Toolset) getMealPlans(ctx context.Context, args map[string]interface{}) (string, error) {
	fromDate, _, err := optionalString(args, "from_date")
	if err != nil {
		return "", err
	}
	toDate, _, err := optionalString(args, "to_date")
	if err != nil {
		return "", err
	}
	mealType, _, err := optionalString(args, "meal_type")
	if err != nil {
		return "", err
	}

	entries, err := t.client.ListMealPlans(ctx, tandoor.MealPlanQuery{
		FromDate: fromDate,
		ToDate:   toDate,
		MealType: mealType,
	})
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "No meal plan entries found.", nil
	}

	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		var b strings.Builder
		fmt.Fprintf(&b, "ID: %d", entry.ID)
		if entry.Title != "" {
			fmt.Fprintf(&b, "\nTitle: %s", entry.Title)
		}
		if entry.Recipe != nil {
			fmt.Fprintf(&b, "\nRecipe: %s (id %d)", entry.Recipe.Name, entry.Recipe.ID)
		}
		if entry.MealType != nil {
			fmt.Fprintf(&b, "\nMeal type: %s", entry.MealType.Name)
		}
		fmt.Fprintf(&b, "\nFrom: %s", entry.FromDate)
		if entry.ToDate != "" {
			fmt.Fprintf(&b, "\nTo: %s", entry.ToDate)
		}
		if entry.Servings != "" {
			fmt.Fprintf(&b, "\nServings: %s", entry.Servings)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

// getMealTypes lists the meal type vocabulary.
func (t *Toolset) getMealTypes(ctx context.Context, args map[string]interface{}) (string, error) {
	mealTypes, err := t.client.ListMealTypes(ctx)
	if err != nil {
		return "", err
	}
	if len(mealTypes) == 0 {
		return "No meal types found.", nil
	}

	lines := make([]string, 0, len(mealTypes))
	for _, mt := range mealTypes {
		lines = append(lines, fmt.Sprintf("ID: %d, Name: %s", mt.ID, mt.Name))
	}
	return strings.Join(lines, "\n"), nil
}
