// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scores derives per-group averages from a ratings map.

	results := scores.Compute(catalog.Groups(), session.Ratings())

For each group, in catalog order, only the rated items are averaged and the
mean is rounded to two decimals. A group with no rated item has an invalid
Mean (JSON null), which is different from a real average of 0.

Each score also carries the chart label ("Gen 1"), the rated/total progress
and a colour band:

	low  → mean < 2
	mid  → mean < 4
	high → mean >= 4

Compute is pure and cheap; callers recompute it on every read.
*/
package scores
