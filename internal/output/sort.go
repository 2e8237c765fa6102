// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is one parsed field of a --sort spec. A leading '-' sorts
// descending and a leading '!' compares strings case-sensitively.
type sortKey struct {
	key        string
	descending bool
	sensitive  bool
}

// SortDataset sorts the dataset in place per the comma-separated spec.
// An empty spec leaves the dataset in arrival order.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" || len(dataset) < 2 {
		return
	}

	//nolint:prealloc
	var keys []sortKey
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		k := sortKey{}
		for len(field) > 0 {
			if strings.HasPrefix(field, "-") {
				k.descending = true
				field = field[1:]
				continue
			}
			if strings.HasPrefix(field, "!") {
				k.sensitive = true
				field = field[1:]
				continue
			}
			break
		}
		k.key = field
		if k.key != "" {
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		return
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, k := range keys {
			c := compareValues(dataset[i][k.key], dataset[j][k.key], k.sensitive)
			if c == 0 {
				continue
			}
			if k.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues orders two dataset values. Numbers compare numerically,
// everything else compares as strings. Missing values sort first.
func compareValues(a, b interface{}, sensitive bool) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	an, aok := toFloat64(a)
	bn, bok := toFloat64(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	as := InterfaceToString(a)
	bs := InterfaceToString(b)
	if !sensitive {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}

// toFloat64 attempts to normalize various numeric types to float64.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
