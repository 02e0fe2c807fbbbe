package flora

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListPlants fetches the full catalog.
func (c *Client) ListPlants(ctx context.Context, token string) ([]Plant, error) {
	var plants []Plant
	if err := c.getJSON(ctx, token, "/flora/plants", nil, "list plants", &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// PlantsByCategory fetches all plants in one category.
func (c *Client) PlantsByCategory(ctx context.Context, token string, categoryID int64) ([]Plant, error) {
	var plants []Plant
	path := fmt.Sprintf("/flora/plants/category/%d", categoryID)
	if err := c.getJSON(ctx, token, path, nil, "list plants by category", &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// SearchPlants runs the faceted search. Category is required upstream; color
// and name are optional and omitted when blank.
func (c *Client) SearchPlants(ctx context.Context, token string, categoryID int64, color, name string) ([]Plant, error) {
	query := url.Values{}
	query.Set("categoryId", strconv.FormatInt(categoryID, 10))
	if trimmed := strings.TrimSpace(color); trimmed != "" {
		query.Set("color", trimmed)
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		query.Set("name", trimmed)
	}

	var plants []Plant
	if err := c.getJSON(ctx, token, "/flora/plants/search", query, "search plants", &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// GetPlant fetches a single plant by id.
func (c *Client) GetPlant(ctx context.Context, token string, id int64) (*Plant, error) {
	var plant Plant
	path := fmt.Sprintf("/flora/plants/%d", id)
	if err := c.getJSON(ctx, token, path, nil, "get plant", &plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

// CreatePlant submits a new plant as multipart form data with an optional
// image. Returns the upstream confirmation message.
func (c *Client) CreatePlant(ctx context.Context, token string, fields []FormField, image *FormFile) (string, error) {
	req, err := c.sendMultipart(ctx, token, http.MethodPost, "/flora/plants/plant", fields, image, "create plant")
	if err != nil {
		return "", err
	}
	return c.doText(req, "create plant")
}

// UpdatePlant updates an existing plant; blank fields are left untouched
// upstream.
func (c *Client) UpdatePlant(ctx context.Context, token string, id int64, fields []FormField, image *FormFile) (string, error) {
	path := fmt.Sprintf("/flora/plants/plant/%d", id)
	req, err := c.sendMultipart(ctx, token, http.MethodPut, path, fields, image, "update plant")
	if err != nil {
		return "", err
	}
	return c.doText(req, "update plant")
}

// DeletePlant removes a plant from the catalog.
func (c *Client) DeletePlant(ctx context.Context, token string, id int64) (string, error) {
	path := fmt.Sprintf("/flora/plants/%d", id)
	req, err := c.newRequest(ctx, token, http.MethodDelete, path, nil, nil)
	if err != nil {
		return "", err
	}
	return c.doText(req, "delete plant")
}

// ListCategories fetches the catalog categories.
func (c *Client) ListCategories(ctx context.Context, token string) ([]Category, error) {
	var categories []Category
	if err := c.getJSON(ctx, token, "/flora/categories", nil, "list categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
