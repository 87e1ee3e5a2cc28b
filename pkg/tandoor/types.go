package tandoor

// Keyword is a tag attached to a recipe. The API requires existing keywords
// to be echoed back on meal plan creation even when they are not modified.
type Keyword struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Food is a food reference. Nested food objects must carry a name; the API
// mishandles id-only references.
type Food struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Unit is a measurement unit reference. Same naming requirement as Food.
type Unit struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Ingredient pairs a food with a unit and an amount. Amounts travel as text
// because the API's numeric precision is untyped.
type Ingredient struct {
	Amount string `json:"amount"`
	Food   *Food  `json:"food"`
	Unit   *Unit  `json:"unit"`
	Note   string `json:"note,omitempty"`
}

// Step is a single instruction block with its ingredients.
type Step struct {
	Instruction string       `json:"instruction"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Recipe is the full recipe shape used for creation and detail lookups.
type Recipe struct {
	ID          int       `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Servings    int       `json:"servings,omitempty"`
	Keywords    []Keyword `json:"keywords,omitempty"`
	Steps       []Step    `json:"steps,omitempty"`
}

// RecipeOverview is the condensed recipe shape returned by the search index.
type RecipeOverview struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Keywords    []Keyword `json:"keywords,omitempty"`
}

// MealType is one entry of the fixed meal type vocabulary.
type MealType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RecipeRef is the recipe reference embedded in a meal plan entry.
type RecipeRef struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Keywords []Keyword `json:"keywords"`
}

// MealPlanEntry schedules a recipe for a meal type on a date.
type MealPlanEntry struct {
	ID         int        `json:"id,omitempty"`
	Title      string     `json:"title,omitempty"`
	Recipe     *RecipeRef `json:"recipe,omitempty"`
	RecipeName string     `json:"recipe_name,omitempty"`
	Servings   string     `json:"servings"`
	Note       string     `json:"note,omitempty"`
	FromDate   string     `json:"from_date"`
	ToDate     string     `json:"to_date,omitempty"`
	MealType   *MealType  `json:"meal_type,omitempty"`
}

// ShoppingListEntry is a single line of the shopping list.
type ShoppingListEntry struct {
	ID      int    `json:"id,omitempty"`
	Food    *Food  `json:"food"`
	Unit    *Unit  `json:"unit,omitempty"`
	Amount  string `json:"amount"`
	Checked bool   `json:"checked"`
	Note    string `json:"note,omitempty"`
}

// Page is the paginated list envelope used by most list endpoints.
type Page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []T    `json:"results"`
}

// RecipeQuery holds the filters for the recipe search index.
type RecipeQuery struct {
	// Query is the full text search term.
	Query string

	// Keywords and Foods are repeated as one query parameter instance per
	// element, matching "any of" semantics on the server.
	Keywords []string
	Foods    []string

	// Rating filters on the minimum rating when non-nil.
	Rating *int

	// PageSize limits the number of results.
	PageSize int
}

// MealPlanQuery holds the filters for listing meal plan entries.
type MealPlanQuery struct {
	FromDate string
	ToDate   string
	MealType string
}

// ListQuery holds the filters shared by the reference list endpoints
// (keywords, foods, units).
type ListQuery struct {
	Query    string
	PageSize int
}
