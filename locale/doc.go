// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package locale serves the UI dictionaries.

Each locale is a typed Dictionary with one field per UI string. The
bundled es and en dictionaries are embedded and validated when loaded, so
a missing or misspelled key fails at startup instead of rendering blank:

	bundle, err := locale.Load()
	loc := bundle.Match(r.Header.Get("Accept-Language"))
	dict, _ := bundle.Lookup(loc)

Match negotiates with golang.org/x/text/language and falls back to
Spanish, the default locale.
*/
package locale
