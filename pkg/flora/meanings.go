package flora

import (
	"context"
	"fmt"
	"net/http"
)

// ListFlowerMeanings fetches the full encyclopedia.
func (c *Client) ListFlowerMeanings(ctx context.Context, token string) ([]FlowerMeaning, error) {
	var meanings []FlowerMeaning
	if err := c.getJSON(ctx, token, "/flora/flower-meanings", nil, "list flower meanings", &meanings); err != nil {
		return nil, err
	}
	return meanings, nil
}

// GetFlowerMeaning fetches one encyclopedia entry.
func (c *Client) GetFlowerMeaning(ctx context.Context, token string, id int64) (*FlowerMeaning, error) {
	var meaning FlowerMeaning
	path := fmt.Sprintf("/flora/flower-meanings/%d", id)
	if err := c.getJSON(ctx, token, path, nil, "get flower meaning", &meaning); err != nil {
		return nil, err
	}
	return &meaning, nil
}

// CreateFlowerMeaning adds a new encyclopedia entry.
func (c *Client) CreateFlowerMeaning(ctx context.Context, token string, meaning FlowerMeaning) (*FlowerMeaning, error) {
	var created FlowerMeaning
	if err := c.sendJSON(ctx, token, http.MethodPost, "/flora/flower-meaning", meaning, "create flower meaning", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFlowerMeaning updates an existing entry; nil/blank fields are left
// untouched upstream.
func (c *Client) UpdateFlowerMeaning(ctx context.Context, token string, id int64, meaning FlowerMeaning) (*FlowerMeaning, error) {
	var updated FlowerMeaning
	path := fmt.Sprintf("/flora/flower-meaning/%d", id)
	if err := c.sendJSON(ctx, token, http.MethodPut, path, meaning, "update flower meaning", &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFlowerMeaning removes an entry from the encyclopedia.
func (c *Client) DeleteFlowerMeaning(ctx context.Context, token string, id int64) (string, error) {
	path := fmt.Sprintf("/flora/flower-meaning/%d", id)
	req, err := c.newRequest(ctx, token, http.MethodDelete, path, nil, nil)
	if err != nil {
		return "", err
	}
	return c.doText(req, "delete flower meaning")
}
