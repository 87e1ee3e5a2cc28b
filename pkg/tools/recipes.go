package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
)

// createRecipe creates a recipe from a free-text ingredient block and a
// single instruction step.
func (t *Toolset) createRecipe(ctx context.Context, args map[string]interface{}) (string, error) {
	name, err := requireString(args, "name")
	if err != nil {
		return "", err
	}
	ingredientsBlock, err := requireString(args, "ingredients_block")
	if err != nil {
		return "", err
	}
	instructionsBlock, err := requireString(args, "instructions_block")
	if err != nil {
		return "", err
	}
	description, _, err := optionalString(args, "description")
	if err != nil {
		return "", err
	}
	servings, _, err := optionalInt(args, "servings")
	if err != nil {
		return "", err
	}

	recipe := &tandoor.Recipe{
		Name:        name,
		Description: description,
		Servings:    servings,
		Steps: []tandoor.Step{{
			Instruction: instructionsBlock,
			Ingredients: parseIngredientLines(ingredientsBlock),
		}},
	}

	created, err := t.client.CreateRecipe(ctx, recipe)
	if err != nil {
		return "", err
	}

	id := "unknown"
	if created != nil && created.ID != 0 {
		id = strconv.Itoa(created.ID)
	}
	return fmt.Sprintf("Created recipe %q with id %s.", name, id), nil
}

// parseIngredientLines turns each non-blank line into one ingredient with a
// placeholder amount and unit, echoing the raw line as food name and note.
// No quantity or unit extraction is attempted; the original line is preserved
// in the note so nothing is lost.
func parseIngredientLines(block string) []tandoor.Ingredient {
	var ingredients []tandoor.Ingredient
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ingredients = append(ingredients, tandoor.Ingredient{
			Amount: "1",
			Food:   &tandoor.Food{Name: line},
			Unit:   &tandoor.Unit{Name: "unit"},
			Note:   line,
		})
	}
	return ingredients
}

// getRecipes searches the recipe index with caller-supplied filters.
func (t *Toolset) getRecipes(ctx context.Context, args map[string]interface{}) (string, error) {
	query, _, err := optionalString(args, "query")
	if err != nil {
		return "", err
	}
	limit, ok, err := optionalInt(args, "limit")
	if err != nil {
		return "", err
	}
	if !ok {
		limit = 10
	}

	recipeQuery := tandoor.RecipeQuery{Query: query, PageSize: limit}

	if rating, ok, err := optionalInt(args, "rating"); err != nil {
		return "", err
	} else if ok {
		recipeQuery.Rating = &rating
	}

	if recipeQuery.Keywords, err = queryElements(args, "keywords"); err != nil {
		return "", err
	}
	if recipeQuery.Foods, err = queryElements(args, "foods"); err != nil {
		return "", err
	}

	page, err := t.client.SearchRecipes(ctx, recipeQuery)
	if err != nil {
		return "", err
	}
	if len(page.Results) == 0 {
		return "No recipes found.", nil
	}

	blocks := make([]string, 0, len(page.Results))
	for _, recipe := range page.Results {
		var b strings.Builder
		fmt.Fprintf(&b, "ID: %d\nName: %s", recipe.ID, recipe.Name)
		if recipe.Description != "" {
			fmt.Fprintf(&b, "\nDescription: %s", recipe.Description)
		}
		if recipe.Rating > 0 {
			fmt.Fprintf(&b, "\nRating: %s", formatAmount(recipe.Rating))
		}
		if len(recipe.Keywords) > 0 {
			fmt.Fprintf(&b, "\nKeywords: %s", joinKeywords(recipe.Keywords))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

// getRecipeDetails fetches one recipe with steps and ingredients.
func (t *Toolset) getRecipeDetails(ctx context.Context, args map[string]interface{}) (string, error) {
	recipeID, err := requireInt(args, "recipe_id")
	if err != nil {
		return "", err
	}

	recipe, err := t.client.GetRecipe(ctx, recipeID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d\nName: %s", recipe.ID, recipe.Name)
	if recipe.Description != "" {
		fmt.Fprintf(&b, "\nDescription: %s", recipe.Description)
	}
	if recipe.Servings > 0 {
		fmt.Fprintf(&b, "\nServings: %d", recipe.Servings)
	}
	if len(recipe.Keywords) > 0 {
		fmt.Fprintf(&b, "\nKeywords: %s", joinKeywords(recipe.Keywords))
	}
	for i, step := range recipe.Steps {
		fmt.Fprintf(&b, "\n\nStep %d:\n%s", i+1, step.Instruction)
		for _, ingredient := range step.Ingredients {
			b.WriteString("\n- ")
			b.WriteString(formatIngredient(ingredient))
		}
	}
	return b.String(), nil
}

// queryElements converts an optional array argument into repeated query
// parameter values.
func queryElements(args map[string]interface{}, field string) ([]string, error) {
	list, err := optionalList(args, field)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(list))
	for _, element := range list {
		value, ok := stringifyElement(element)
		if !ok {
			return nil, NewInvalidArgument("argument %s must contain only strings or numbers", field)
		}
		values = append(values, value)
	}
	return values, nil
}

func joinKeywords(keywords []tandoor.Keyword) string {
	names := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		names = append(names, kw.Name)
	}
	return strings.Join(names, ", ")
}

func formatIngredient(ingredient tandoor.Ingredient) string {
	parts := make([]string, 0, 4)
	if ingredient.Amount != "" && ingredient.Amount != "0" {
		parts = append(parts, ingredient.Amount)
	}
	if ingredient.Unit != nil && ingredient.Unit.Name != "" {
		parts = append(parts, ingredient.Unit.Name)
	}
	if ingredient.Food != nil && ingredient.Food.Name != "" {
		parts = append(parts, ingredient.Food.Name)
	}
	line := strings.Join(parts, " ")
	if ingredient.Note != "" && ingredient.Note != line {
		line += " (" + ingredient.Note + ")"
	}
	return line
}
