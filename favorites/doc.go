// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package favorites implements the ranked top favorites list.

The list holds at most Cap() item ids, without duplicates, in the order the
user arranged them. Items come from the eligible pool: catalog items rated 6
that are not in the list yet.

	pool := favorites.EligiblePool(ratings, catalogItems, list.IDs())
	err := list.Add(ctx, pool[0].ID)  // ErrFull, ErrDuplicate
	list.Reorder(ctx, 0, 2)           // [a b c d] -> [b c a d]
	list.Remove(ctx, "25")

Mutations are written to the pokeRaterFavorites key, except while the list
is empty.
*/
package favorites
