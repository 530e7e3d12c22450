package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Sentinel bucket names for entries without a usable key.
const (
	UnknownCurrency = "Unknown"
	Uncategorized   = "Uncategorized"
	OtherBucket     = "Other"
)

// topSlices is how many buckets survive before the rest folds into the
// "Other" bucket.
const topSlices = 5

// Bucket is a (key, summed amount) pair.
type Bucket struct {
	Key    string
	Amount decimal.Decimal
}

// SumBy groups entries by key and sums a value per group. Entries with a
// blank key fall into the fallback bucket. The result is sorted
// descending by amount; equal amounts keep the order in which their keys
// were first observed, which keeps pie colors stable across renders.
//
// A nil value function sums AmountValue.
func SumBy(entries []Entry, key func(Entry) string, value func(Entry) decimal.Decimal, fallback string) []Bucket {
	if value == nil {
		value = func(e Entry) decimal.Decimal { return e.AmountValue }
	}

	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, entry := range entries {
		k := key(entry)
		if k == "" {
			k = fallback
		}

		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(value(entry))
	}

	buckets := make([]Bucket, 0, len(order))
	for _, k := range order {
		buckets = append(buckets, Bucket{Key: k, Amount: sums[k]})
	}

	// Descending by amount. The stable sort keeps first-observed order
	// for equal amounts.
	slices.SortStableFunc(buckets, func(a, b Bucket) int {
		return b.Amount.Cmp(a.Amount)
	})

	return buckets
}

// CountBy counts entries per key, with the same fallback handling as
// SumBy. The result is unordered.
func CountBy(entries []Entry, key func(Entry) string, fallback string) map[string]int {
	counts := make(map[string]int)
	for _, entry := range entries {
		k := key(entry)
		if k == "" {
			k = fallback
		}
		counts[k]++
	}
	return counts
}

// TopWithOther caps a sorted bucket list at topSlices entries and folds
// the remainder into a single "Other" bucket. The fold is lossless: the
// sum over the result equals the sum over the input. With topSlices or
// fewer buckets the input is returned unchanged.
func TopWithOther(buckets []Bucket) []Bucket {
	if len(buckets) <= topSlices {
		return buckets
	}

	other := decimal.Zero
	for _, bucket := range buckets[topSlices:] {
		other = other.Add(bucket.Amount)
	}

	capped := make([]Bucket, topSlices, topSlices+1)
	copy(capped, buckets[:topSlices])
	return append(capped, Bucket{Key: OtherBucket, Amount: other})
}

// BucketTotal sums all bucket amounts.
func BucketTotal(buckets []Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range buckets {
		total = total.Add(bucket.Amount)
	}
	return total
}

// CurrencyKey extracts the currency code of an entry.
func CurrencyKey(e Entry) string { return e.CurrencyCode }

// CategoryKey extracts the category name of an entry.
func CategoryKey(e Entry) string { return e.Category }
