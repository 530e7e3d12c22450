package firefly

import (
	"context"
	"net/url"
	"strconv"
)

func listParams() url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(listLimit))
	return params
}

// Accounts lists all accounts.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var payload accountArray
	if err := c.get(ctx, "/v1/accounts", listParams(), &payload); err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(payload.Data))
	for _, read := range payload.Data {
		accounts = append(accounts, Account{
			ID:           read.ID,
			Name:         read.Attributes.Name,
			Type:         read.Attributes.Type,
			CurrencyCode: deref(read.Attributes.CurrencyCode),
		})
	}

	return accounts, nil
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var payload categoryArray
	if err := c.get(ctx, "/v1/categories", listParams(), &payload); err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(payload.Data))
	for _, read := range payload.Data {
		categories = append(categories, Category{
			ID:   read.ID,
			Name: read.Attributes.Name,
		})
	}

	return categories, nil
}

// Tags lists all tags.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var payload tagArray
	if err := c.get(ctx, "/v1/tags", listParams(), &payload); err != nil {
		return nil, err
	}

	tags := make([]Tag, 0, len(payload.Data))
	for _, read := range payload.Data {
		tags = append(tags, Tag{
			ID:   read.ID,
			Name: read.Attributes.Tag,
		})
	}

	return tags, nil
}
