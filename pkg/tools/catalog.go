package tools

import (
	"github.com/Ingenimax/tandoor-mcp/pkg/logging"
	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
)

// Toolset holds the shared dependencies of all tool handlers.
type Toolset struct {
	client *tandoor.Client
	logger logging.Logger
}

// NewToolset creates a toolset backed by the given Tandoor client.
func NewToolset(client *tandoor.Client, logger logging.Logger) *Toolset {
	return &Toolset{client: client, logger: logger}
}

// NewRegistry builds the full Tandoor tool catalog backed by the given client.
func NewRegistry(client *tandoor.Client, logger logging.Logger) *Registry {
	ts := NewToolset(client, logger)
	registry := NewEmptyRegistry()

	registry.Register(Spec{
		Name:        "create_tandoor_recipe",
		Description: "Create a new recipe in Tandoor from a free-text ingredient block and instructions.",
		Parameters: map[string]ParameterSpec{
			"name": {
				Type:        "string",
				Description: "Name of the recipe",
				Required:    true,
			},
			"ingredients_block": {
				Type:        "string",
				Description: "Multi-line text with one ingredient per line",
				Required:    true,
			},
			"instructions_block": {
				Type:        "string",
				Description: "Free-text cooking instructions",
				Required:    true,
			},
			"description": {
				Type:        "string",
				Description: "Optional recipe description",
			},
			"servings": {
				Type:        "integer",
				Description: "Optional number of servings",
			},
		},
	}, ts.createRecipe)

	registry.Register(Spec{
		Name:        "create_tandoor_meal_plan",
		Description: "Schedule one or more recipes on the meal plan calendar for a given date and meal type.",
		Parameters: map[string]ParameterSpec{
			"recipes": {
				Type:        "array",
				Description: "Recipes to schedule, each a recipe name or a numeric recipe id",
				Required:    true,
				Items:       &ParameterSpec{Description: "Recipe name or numeric id"},
			},
			"start_date": {
				Type:        "string",
				Description: "Plan date in YYYY-MM-DD format",
				Required:    true,
			},
			"meal_type": {
				Type:        "string",
				Description: "Meal type name, matched case-insensitively (e.g. Dinner)",
				Required:    true,
			},
			"title": {
				Type:        "string",
				Description: "Optional title for the plan entries",
			},
			"servings": {
				Type:        "number",
				Description: "Servings per entry",
				Default:     1,
			},
			"note": {
				Type:        "string",
				Description: "Optional note for the plan entries",
			},
		},
	}, ts.createMealPlan)

	registry.Register(Spec{
		Name:        "get_recipes",
		Description: "Search recipes by text, keywords, foods and rating.",
		Parameters: map[string]ParameterSpec{
			"query": {
				Type:        "string",
				Description: "Full text search term",
			},
			"keywords": {
				Type:        "array",
				Description: "Keyword ids; recipes matching any of them are returned",
				Items:       &ParameterSpec{Type: "integer"},
			},
			"foods": {
				Type:        "array",
				Description: "Food ids; recipes matching any of them are returned",
				Items:       &ParameterSpec{Type: "integer"},
			},
			"rating": {
				Type:        "integer",
				Description: "Minimum rating filter",
			},
			"limit": {
				Type:        "integer",
				Description: "Maximum number of results",
				Default:     10,
			},
		},
	}, ts.getRecipes)

	registry.Register(Spec{
		Name:        "get_recipe_details",
		Description: "Fetch one recipe with its steps and ingredients.",
		Parameters: map[string]ParameterSpec{
			"recipe_id": {
				Type:        "integer",
				Description: "Id of the recipe",
				Required:    true,
			},
		},
	}, ts.getRecipeDetails)

	registry.Register(Spec{
		Name:        "get_meal_plans",
		Description: "List meal plan entries, optionally filtered by date range and meal type.",
		Parameters: map[string]ParameterSpec{
			"from_date": {
				Type:        "string",
				Description: "Start of the date range (YYYY-MM-DD)",
			},
			"to_date": {
				Type:        "string",
				Description: "End of the date range (YYYY-MM-DD)",
			},
			"meal_type": {
				Type:        "string",
				Description: "Meal type id filter",
			},
		},
	}, ts.getMealPlans)

	registry.Register(Spec{
		Name:        "get_meal_types",
		Description: "List the meal types configured in Tandoor.",
		Parameters:  map[string]ParameterSpec{},
	}, ts.getMealTypes)

	registry.Register(Spec{
		Name:        "get_keywords",
		Description: "List recipe keywords.",
		Parameters:  listSpecParams("keyword"),
	}, ts.getKeywords)

	registry.Register(Spec{
		Name:        "get_foods",
		Description: "List foods.",
		Parameters:  listSpecParams("food"),
	}, ts.getFoods)

	registry.Register(Spec{
		Name:        "get_units",
		Description: "List measurement units.",
		Parameters:  listSpecParams("unit"),
	}, ts.getUnits)

	registry.Register(Spec{
		Name:        "get_shopping_list",
		Description: "List shopping list entries.",
		Parameters: map[string]ParameterSpec{
			"checked": {
				Type:        "string",
				Description: "Filter: true, false, both or recent",
				Default:     "recent",
			},
		},
	}, ts.getShoppingList)

	registry.Register(Spec{
		Name:        "add_shopping_list_item",
		Description: "Add an item to the shopping list.",
		Parameters: map[string]ParameterSpec{
			"food_name_or_id": {
				Description: "Food name or numeric food id",
				Required:    true,
			},
			"amount": {
				Type:        "number",
				Description: "Amount to buy",
				Required:    true,
			},
			"unit_name_or_id": {
				Description: "Unit name or numeric unit id",
				Required:    true,
			},
			"note": {
				Type:        "string",
				Description: "Optional note",
			},
		},
	}, ts.addShoppingListItem)

	registry.Register(Spec{
		Name:        "update_shopping_list_item",
		Description: "Update fields of an existing shopping list item.",
		Parameters: map[string]ParameterSpec{
			"item_id": {
				Type:        "integer",
				Description: "Id of the shopping list item",
				Required:    true,
			},
			"amount": {
				Type:        "number",
				Description: "New amount",
			},
			"unit_id": {
				Type:        "integer",
				Description: "New unit id",
			},
			"checked": {
				Type:        "boolean",
				Description: "Mark the item as checked or unchecked",
			},
			"note": {
				Type:        "string",
				Description: "New note",
			},
		},
	}, ts.updateShoppingListItem)

	registry.Register(Spec{
		Name:        "remove_shopping_list_item",
		Description: "Remove an item from the shopping list.",
		Parameters: map[string]ParameterSpec{
			"item_id": {
				Type:        "integer",
				Description: "Id of the shopping list item",
				Required:    true,
			},
		},
	}, ts.removeShoppingListItem)

	return registry
}

func listSpecParams(label string) map[string]ParameterSpec {
	return map[string]ParameterSpec{
		"query": {
			Type:        "string",
			Description: "Filter by " + label + " name",
		},
		"limit": {
			Type:        "integer",
			Description: "Maximum number of results",
		},
	}
}
