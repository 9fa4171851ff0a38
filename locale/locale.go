// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// DefaultLocale is served when nothing else matches
const DefaultLocale = "es"

// Supported lists the bundled locales; the first one is the default.
var Supported = []string{DefaultLocale, "en"}

var ErrUnknownLocale = errors.New("unknown locale")

//go:embed locales/*.json
var bundled embed.FS

// Dictionary holds every UI string. A missing string fails Load.
type Dictionary struct {
	LanguageName string `json:"languageName" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Subtitle     string `json:"subtitle" validate:"required"`
	Generation   string `json:"generation" validate:"required"`
	ShareButton  string `json:"shareButton" validate:"required"`
	LinkCopied   string `json:"linkCopied" validate:"required"`

	Scoreboard  ScoreboardStrings  `json:"scoreboard"`
	Top6        Top6Strings        `json:"top6"`
	GlobalStats GlobalStatsStrings `json:"globalStats"`
	Errors      ErrorStrings       `json:"errors"`
}

type ScoreboardStrings struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Avg         string `json:"avg" validate:"required"`
	NoData      string `json:"noData" validate:"required"`
}

type Top6Strings struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	AddTitle    string `json:"addTitle" validate:"required"`
	EmptyState  string `json:"emptyState" validate:"required"`
	BackButton  string `json:"backButton" validate:"required"`
	Full        string `json:"full" validate:"required"`
}

type GlobalStatsStrings struct {
	Button                    string `json:"button" validate:"required"`
	BackButton                string `json:"backButton" validate:"required"`
	Title                     string `json:"title" validate:"required"`
	Description               string `json:"description" validate:"required"`
	Top10Title                string `json:"top10Title" validate:"required"`
	Top10Description          string `json:"top10Description" validate:"required"`
	TopGenerationsTitle       string `json:"topGenerationsTitle" validate:"required"`
	TopGenerationsDescription string `json:"topGenerationsDescription" validate:"required"`
	Pokemon                   string `json:"pokemon" validate:"required"`
	Votes                     string `json:"votes" validate:"required"`
}

type ErrorStrings struct {
	CatalogUnavailable string `json:"catalogUnavailable" validate:"required"`
	ImagesUnavailable  string `json:"imagesUnavailable" validate:"required"`
	Retry              string `json:"retry" validate:"required"`
	NotFound           string `json:"notFound" validate:"required"`
}

// Bundle is the set of validated dictionaries.
type Bundle struct {
	locales      []string
	dictionaries map[string]Dictionary
	matcher      language.Matcher
}

// Load reads and validates the bundled dictionaries.
func Load() (*Bundle, error) {
	sub, err := fs.Sub(bundled, "locales")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, Supported...)
}

// LoadFS reads "<locale>.json" for every locale from fsys.
// The first locale is the default.
func LoadFS(fsys fs.FS, locales ...string) (*Bundle, error) {
	if len(locales) == 0 {
		return nil, errors.New("at least one locale is required")
	}

	validate := validator.New()
	b := &Bundle{
		locales:      locales,
		dictionaries: make(map[string]Dictionary, len(locales)),
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", loc, err)
		}

		data, err := fs.ReadFile(fsys, path.Clean(loc+".json"))
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary %s: %w", loc, err)
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		var d Dictionary
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to parse dictionary %s: %w", loc, err)
		}
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("incomplete dictionary %s: %w", loc, err)
		}

		b.dictionaries[loc] = d
		tags = append(tags, tag)
	}

	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Locales returns the available locales, default first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.locales))
	copy(out, b.locales)
	return out
}

// Lookup returns the dictionary of an exact locale code.
func (b *Bundle) Lookup(loc string) (Dictionary, error) {
	d, ok := b.dictionaries[loc]
	if !ok {
		return Dictionary{}, fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
	}
	return d, nil
}

// Match picks the best locale for an Accept-Language header value or a
// single tag such as "en-GB". Unparseable or unsupported input yields the default.
func (b *Bundle) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.locales[0]
	}

	_, index, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.locales[0]
	}
	return b.locales[index]
}
