package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the full static dataset, loaded once per process. Treat it as
// read-only after Load returns; matching code receives it by reference and
// must never write through.
type Catalog struct {
	Items []Item

	// CoercedPrices counts items whose price field could not be parsed as a
	// number and was coerced to 0. Surfaced as a startup warning so data
	// quality problems are visible without changing matching behavior.
	CoercedPrices int
}

// Load reads the catalog dataset from a JSON array file. Field decoding is
// deliberately lenient: list-or-scalar fabrics, stringly-typed prices and
// ids, and missing attributes all degrade to zero values rather than errors.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of catalog items.
func Parse(data []byte) (*Catalog, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("catalog must be a JSON array: %w", err)
	}

	c := &Catalog{Items: make([]Item, 0, len(raws))}
	for _, raw := range raws {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			// Non-object entries carry nothing to match on; skip them.
			continue
		}
		item := decodeItem(raw, fields)
		if item.PriceCoerced {
			c.CoercedPrices++
		}
		c.Items = append(c.Items, item)
	}
	return c, nil
}

func decodeItem(raw json.RawMessage, fields map[string]json.RawMessage) Item {
	item := Item{raw: raw}

	if v, ok := fields["design_id"]; ok {
		item.ID, _ = asString(v)
	}
	if v, ok := fields["title"]; ok {
		item.Title, _ = asString(v)
	}
	if v, ok := fields["description"]; ok {
		item.Description, _ = asString(v)
	}
	if v, ok := fields["price_inr"]; ok {
		item.Price, item.PriceCoerced = CoercePrice(v)
	}
	if v, ok := fields["fabric"]; ok {
		_ = item.Fabric.UnmarshalJSON(v)
	}
	if v, ok := fields["sleeve"]; ok {
		item.Sleeve, _ = asString(v)
	}
	if v, ok := fields["neckline"]; ok {
		item.Neckline, _ = asString(v)
	}
	if v, ok := fields["occasion_tags"]; ok {
		var tags FieldValue
		_ = tags.UnmarshalJSON(v)
		item.OccasionTags = tags.Values()
	}
	return item
}

// ByID returns the item with the given design id, or false when absent.
func (c *Catalog) ByID(id string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
