// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog loads the groups (Pokémon generations) and their items.

The catalog is shared by every session. It is loaded once at startup and
can be reloaded on demand:

	c := catalog.New(catalog.NewPokeAPI(cfg.CatalogURL, cfg.CatalogLang))
	if err := c.Load(ctx); err != nil {
		// Ready() stays false; retry with Load later
	}

# Images

Groups are listed without images. Enrich resolves the sprites of one group
and records the outcome on Group.ImageStatus and Item.ImageStatus
(pending, loaded, failed). Enriching a loaded group does nothing; a failed
group can be enriched again. EnrichAll fans out over every group, and
EnrichAsync starts one group in the background.

A result that arrives after the catalog was reloaded is discarded.

# PokeAPI

PokeAPI is the Loader used in production. It is rate limited, retries 429
and 5xx responses with exponential backoff, and returns NotFoundError on
404.
*/
package catalog
