package controllers

import (
	"net/http"
	"time"

	"github.com/fireview/backend/internal/filter"
	"github.com/fireview/backend/internal/firefly"
	"github.com/fireview/backend/internal/report"
	"github.com/fireview/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// recentLimit caps the entry listing on the overview page. Totals come
// from the insight endpoints, so the listing only feeds the recent
// transactions table and the category pie.
const recentLimit = 60

// OverviewPage is the view model for the overview template.
type OverviewPage struct {
	State    filter.State
	Overview report.Overview
	Months   []types.Month
	Error    string
}

// Overview renders the spending overview for the selected date range.
func (co Controller) Overview(c *gin.Context) {
	state := filter.Decode(c.Request.URL.Query())
	now := co.now()
	r := state.Range(now)

	var in report.OverviewInput

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		entries, _, err := co.client.ListTransactions(ctx, firefly.TransactionParams{
			Start: r.Start,
			End:   r.End,
			Page:  1,
			Limit: recentLimit,
		})
		in.Entries = entries
		return err
	})
	g.Go(func() error {
		budgets, err := co.client.Budgets(ctx, r.Start, r.End)
		in.Budgets = budgets
		return err
	})
	g.Go(func() error {
		limits, err := co.client.BudgetLimits(ctx, r.Start, r.End)
		in.BudgetLimits = limits
		return err
	})
	g.Go(func() error {
		totals, err := co.client.InsightTotals(ctx, firefly.InsightExpense, r.Start, r.End)
		in.ExpenseTotals = totals
		return err
	})
	g.Go(func() error {
		totals, err := co.client.InsightTotals(ctx, firefly.InsightIncome, r.Start, r.End)
		in.IncomeTotals = totals
		return err
	})

	page := OverviewPage{
		State:  state,
		Months: monthOptions(now),
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("page", "overview").Msg("fetch failed")

		page.Error = fetchError
		page.Overview = report.BuildOverview(report.OverviewInput{}, r)
		c.HTML(http.StatusOK, "overview.html", page)
		return
	}

	page.Overview = report.BuildOverview(in, r)
	c.HTML(http.StatusOK, "overview.html", page)
}

// monthOptions lists the current and the eleven preceding months for the
// range selector, newest first.
func monthOptions(now time.Time) []types.Month {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]types.Month, 0, 12)
	for i := 0; i < 12; i++ {
		months = append(months, types.MonthOf(first.AddDate(0, -i, 0)))
	}
	return months
}
