package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
)

// getShoppingList lists shopping list entries. The checked filter defaults to
// "recent" when absent.
func (t *Toolset) getShoppingList(ctx context.Context, args map[string]interface{}) (string, error) {
	checked, ok, err := optionalString(args, "checked")
	if err != nil {
		return "", err
	}
	if !ok || checked == "" {
		checked = "recent"
	}

	page, err := t.client.ListShoppingListEntries(ctx, checked)
	if err != nil {
		return "", err
	}
	if len(page.Results) == 0 {
		return "The shopping list is empty.", nil
	}

	blocks := make([]string, 0, len(page.Results))
	for _, entry := range page.Results {
		var b strings.Builder
		fmt.Fprintf(&b, "ID: %d", entry.ID)
		item := entry.Amount
		if entry.Unit != nil && entry.Unit.Name != "" {
			item += " " + entry.Unit.Name
		}
		if entry.Food != nil && entry.Food.Name != "" {
			item += " " + entry.Food.Name
		}
		fmt.Fprintf(&b, "\nItem: %s", strings.TrimSpace(item))
		fmt.Fprintf(&b, "\nChecked: %t", entry.Checked)
		if entry.Note != "" {
			fmt.Fprintf(&b, "\nNote: %s", entry.Note)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

// addShoppingListItem adds one entry, resolving food and unit references by
// name or id.
func (t *Toolset) addShoppingListItem(ctx context.Context, args map[string]interface{}) (string, error) {
	foodRef, ok := args["food_name_or_id"]
	if !ok || foodRef == nil {
		return "", NewInvalidArgument("missing required argument: food_name_or_id")
	}
	unitRef, ok := args["unit_name_or_id"]
	if !ok || unitRef == nil {
		return "", NewInvalidArgument("missing required argument: unit_name_or_id")
	}
	amount, ok, err := optionalNumber(args, "amount")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", NewInvalidArgument("missing required argument: amount")
	}
	note, _, err := optionalString(args, "note")
	if err != nil {
		return "", err
	}

	foodID, foodName, err := t.resolveRef(ctx, t.foodResource(), foodRef)
	if err != nil {
		return "", err
	}
	unitID, unitName, err := t.resolveRef(ctx, t.unitResource(), unitRef)
	if err != nil {
		return "", err
	}

	entry := &tandoor.ShoppingListEntry{
		Food:   &tandoor.Food{ID: foodID, Name: foodName},
		Unit:   &tandoor.Unit{ID: unitID, Name: unitName},
		Amount: formatAmount(amount),
		Note:   note,
	}

	created, err := t.client.CreateShoppingListEntry(ctx, entry)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added %s %s %q to the shopping list with id %d.",
		entry.Amount, unitName, foodName, created.ID), nil
}

// updateShoppingListItem applies a partial update containing only the fields
// the caller supplied.
func (t *Toolset) updateShoppingListItem(ctx context.Context, args map[string]interface{}) (string, error) {
	itemID, err := requireInt(args, "item_id")
	if err != nil {
		return "", err
	}

	patch := map[string]interface{}{}
	if amount, ok, err := optionalNumber(args, "amount"); err != nil {
		return "", err
	} else if ok {
		patch["amount"] = formatAmount(amount)
	}
	if unitID, ok, err := optionalInt(args, "unit_id"); err != nil {
		return "", err
	} else if ok {
		patch["unit"] = unitID
	}
	if checked, ok, err := optionalBool(args, "checked"); err != nil {
		return "", err
	} else if ok {
		patch["checked"] = checked
	}
	if note, ok, err := optionalString(args, "note"); err != nil {
		return "", err
	} else if ok {
		patch["note"] = note
	}

	if len(patch) == 0 {
		return "", NewInvalidArgument("at least one of amount, unit_id, checked or note must be provided")
	}

	if _, err := t.client.UpdateShoppingListEntry(ctx, itemID, patch); err != nil {
		return "", err
	}

	fields := make([]string, 0, len(patch))
	for field := range patch {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("Updated shopping list item %d (%s).", itemID, strings.Join(fields, ", ")), nil
}

// removeShoppingListItem deletes one entry. A remote 404 means the id did not
// exist and is reported as caller error, not as a remote failure.
func (t *Toolset) removeShoppingListItem(ctx context.Context, args map[string]interface{}) (string, error) {
	itemID, err := requireInt(args, "item_id")
	if err != nil {
		return "", err
	}

	if err := t.client.DeleteShoppingListEntry(ctx, itemID); err != nil {
		var apiErr *tandoor.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return "", &ToolError{
				Kind:    ErrInvalidArgument,
				Message: fmt.Sprintf("shopping list item %d does not exist", itemID),
				Err:     err,
			}
		}
		return "", err
	}
	return fmt.Sprintf("Removed shopping list item %d.", itemID), nil
}
