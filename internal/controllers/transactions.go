package controllers

import (
	"net/http"

	"github.com/fireview/backend/internal/config"
	"github.com/fireview/backend/internal/filter"
	"github.com/fireview/backend/internal/firefly"
	"github.com/fireview/backend/internal/report"
	"github.com/fireview/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// TransactionsPage is the view model for the transactions template.
type TransactionsPage struct {
	State filter.State
	Range types.Range

	Entries    []report.Entry
	Total      int
	TotalPages int

	Accounts   []firefly.Account
	Categories []firefly.Category
	Tags       []firefly.Tag
	Months     []types.Month
	PageSizes  []int

	Error string
}

// Transactions renders the filterable transaction listing.
func (co Controller) Transactions(c *gin.Context) {
	state := filter.Decode(c.Request.URL.Query())
	now := co.now()
	r := state.Range(now)

	page := TransactionsPage{
		State:     state,
		Range:     r,
		Months:    monthOptions(now),
		PageSizes: filter.PageSizes,
	}

	var (
		accounts   []firefly.Account
		categories []firefly.Category
		tags       []firefly.Tag
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		accounts, err = co.client.Accounts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = co.client.Categories(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = co.client.Tags(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("page", "transactions").Msg("fetch failed")
		page.Error = fetchError
		c.HTML(http.StatusOK, "transactions.html", page)
		return
	}

	page.Accounts = visibleAccounts(accounts, co.cfg)
	page.Categories = categories
	page.Tags = tags

	entries, pagination, err := co.fetchEntries(c, state, r, categories)
	if err != nil {
		log.Error().Err(err).Str("page", "transactions").Msg("fetch failed")
		page.Error = fetchError
		c.HTML(http.StatusOK, "transactions.html", page)
		return
	}

	page.Entries = report.SortByDateDesc(report.Normalize(entries))
	page.Total = pagination.Total
	page.TotalPages = pagination.TotalPages

	c.HTML(http.StatusOK, "transactions.html", page)
}

const fetchError = "Could not load data from Firefly III. Check the connection and the API token."

// fetchEntries picks between the plain listing and the search endpoint.
// The listing handles date and type alone, everything narrower needs the
// search syntax.
func (co Controller) fetchEntries(c *gin.Context, state filter.State, r types.Range, categories []firefly.Category) ([]firefly.Entry, firefly.Pagination, error) {
	if state.Account == "" && len(state.Categories) == 0 && len(state.Labels) == 0 {
		return co.client.ListTransactions(c.Request.Context(), firefly.TransactionParams{
			Start: r.Start,
			End:   r.End,
			Type:  state.Type,
			Page:  state.Page,
			Limit: state.Limit,
		})
	}

	queries := searchQueries(state, r, categoryNames(state.Categories, categories))

	results := make([][]firefly.Entry, len(queries))
	pages := make([]firefly.Pagination, len(queries))

	g, ctx := errgroup.WithContext(c.Request.Context())
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			entries, pagination, err := co.client.SearchTransactions(ctx, query.String(), state.Page, state.Limit)
			results[i] = entries
			pages[i] = pagination
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, firefly.Pagination{}, err
	}

	return mergeResults(results, pages)
}

// searchQueries fans the selected categories and labels out into one
// query per pair. The search syntax has no OR, so multi-selection means
// multiple requests merged client side.
func searchQueries(state filter.State, r types.Range, categories []string) []firefly.SearchQuery {
	if len(categories) == 0 {
		categories = []string{""}
	}
	labels := state.Labels
	if len(labels) == 0 {
		labels = []string{""}
	}

	var queries []firefly.SearchQuery
	for _, category := range categories {
		for _, label := range labels {
			queries = append(queries, firefly.SearchQuery{
				Start:     r.Start,
				End:       r.End,
				Type:      state.Type,
				AccountID: state.Account,
				Category:  category,
				Tag:       label,
			})
		}
	}
	return queries
}

// mergeResults combines fanned-out search responses. Entries are
// deduplicated by id, the totals report the largest response since the
// result sets overlap.
func mergeResults(results [][]firefly.Entry, pages []firefly.Pagination) ([]firefly.Entry, firefly.Pagination, error) {
	seen := make(map[string]bool)
	var merged []firefly.Entry
	for _, entries := range results {
		for _, entry := range entries {
			if seen[entry.ID] {
				continue
			}
			seen[entry.ID] = true
			merged = append(merged, entry)
		}
	}

	var pagination firefly.Pagination
	for _, p := range pages {
		if p.Total > pagination.Total {
			pagination.Total = p.Total
		}
		if p.TotalPages > pagination.TotalPages {
			pagination.TotalPages = p.TotalPages
		}
	}
	pagination.CurrentPage = firstPage(pages)

	return merged, pagination, nil
}

func firstPage(pages []firefly.Pagination) int {
	for _, p := range pages {
		if p.CurrentPage > 0 {
			return p.CurrentPage
		}
	}
	return 1
}

// categoryNames resolves selected category ids to the names the search
// syntax matches on. Unknown ids are dropped.
func categoryNames(ids []string, categories []firefly.Category) []string {
	byID := make(map[string]string, len(categories))
	for _, category := range categories {
		byID[category.ID] = category.Name
	}

	var names []string
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// visibleAccounts drops system account types from the account filter.
func visibleAccounts(accounts []firefly.Account, cfg *config.Config) []firefly.Account {
	var out []firefly.Account
	for _, account := range accounts {
		if cfg.AccountTypeExcluded(account.Type) {
			continue
		}
		out = append(out, account)
	}
	return out
}
