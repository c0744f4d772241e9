package itchio

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gardenappl/mitch-sub001/src/http"
	"github.com/gardenappl/mitch-sub001/src/types"
)

// KeyCache stores permanent download URLs obtained from completed
// purchase/bundle flows, keyed by game and username. Expiry policy
// belongs to the implementation; an expired entry simply reads as
// absent.
type KeyCache interface {
	Get(gameID int64, username string) (string, bool)
	Put(gameID int64, username string, downloadURL string) error
}

// Resolver decides how a game's downloads can be reached and, when a
// live purchase/claim interaction is required, performs that single
// fetch.
type Resolver struct {
	Client http.HTTPClient
	Keys   KeyCache // optional
}

// Resolve inspects a store page and returns the download location, or
// nil when the visitor has no access. nil is an expected outcome, not
// an error: deleted, region-locked, or unpurchased games legitimately
// expose no download affordance.
//
// Network failures during the live-fetch branch propagate to the
// caller. Parse failures after a successful fetch read as "no access".
func (r *Resolver) Resolve(ctx context.Context, doc *goquery.Document, storeURL string, cookies string) (*types.DownloadURL, error) {
	storeURL = strings.TrimSuffix(storeURL, "/")

	// Free, unrestricted games embed their download buttons on the
	// store page itself; that URL is permanent.
	if HasDownloadLinks(doc) {
		return &types.DownloadURL{URL: storeURL, IsPermanent: true, IsStorePage: true}, nil
	}

	// A permanent URL recorded by a prior purchase flow can be reused
	// without touching the network.
	if r.Keys != nil {
		if id := GameID(doc); id != nil {
			if cached, ok := r.Keys.Get(*id, LoggedInUsername(doc)); ok {
				return &types.DownloadURL{URL: cached, IsPermanent: true, IsStorePage: false}, nil
			}
		}
	}

	// Bundle-claimed access: submit the claim form, then read the
	// download link off the resulting page. A key-carrying result is
	// durable and gets recorded; a bare redirect is session-scoped and
	// must be re-derived on every check.
	if form := doc.Find(selClaimForm).First(); form.Length() > 0 {
		return r.submitClaim(ctx, doc, form, cookies)
	}

	// "Pay what you want": the site hands out a session download URL in
	// exchange for the page's CSRF token.
	if ExtractPaymentInfo(doc).Donation {
		return r.fetchSessionURL(ctx, doc, storeURL, cookies)
	}

	// Anything left is paid-only content the visitor has not bought, or
	// a page with no purchase affordance at all: not currently
	// accessible.
	return nil, nil
}

func (r *Resolver) submitClaim(ctx context.Context, doc *goquery.Document, form *goquery.Selection, cookies string) (*types.DownloadURL, error) {
	action := form.AttrOr("action", "")
	if action == "" {
		return nil, nil
	}
	if strings.HasPrefix(action, "/") {
		action = Host + action
	}

	fields := url.Values{}
	form.Find("input[name]").Each(func(i int, input *goquery.Selection) {
		name := input.AttrOr("name", "")
		fields.Set(name, input.AttrOr("value", ""))
	})

	resp, err := r.Client.PostForm(ctx, action, fields, cookies)
	if err != nil {
		return nil, err
	}

	claimed, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body)))
	if err != nil {
		slog.Debug("claim response was not parseable HTML", "url", action)
		return nil, nil
	}

	href, exists := claimed.Find(selDownloadButton).First().Attr("href")
	if !exists {
		href, exists = claimed.Find("a[href*='/download/']").First().Attr("href")
	}
	if !exists || href == "" {
		return nil, nil
	}
	if strings.HasPrefix(href, "/") {
		href = Host + href
	}

	// A claim that lands on a key-carrying download page grants durable
	// library access; record it so later checks skip the claim round
	// trip entirely.
	permanent := hasDownloadKey(href)
	if permanent && r.Keys != nil {
		if id := GameID(doc); id != nil {
			if err := r.Keys.Put(*id, LoggedInUsername(doc), href); err != nil {
				slog.Warn("failed to record download key", "game_id", *id, "error", err)
			}
		}
	}

	return &types.DownloadURL{URL: href, IsPermanent: permanent, IsStorePage: false}, nil
}

// hasDownloadKey reports whether a download URL carries a key query
// parameter, the marker of durable purchased/claimed access.
func hasDownloadKey(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Query().Get("key") != ""
}

// downloadURLResponse is the JSON body returned by the download_url
// endpoint.
type downloadURLResponse struct {
	URL string `json:"url"`
}

func (r *Resolver) fetchSessionURL(ctx context.Context, doc *goquery.Document, storeURL string, cookies string) (*types.DownloadURL, error) {
	fields := url.Values{}
	if token, exists := doc.Find(selCSRFToken).Attr("value"); exists {
		fields.Set("csrf_token", token)
	}

	resp, err := r.Client.PostForm(ctx, storeURL+"/download_url", fields, cookies)
	if err != nil {
		return nil, err
	}

	var parsed downloadURLResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil || parsed.URL == "" {
		slog.Debug("download_url endpoint returned no usable URL", "store_url", storeURL)
		return nil, nil
	}

	return &types.DownloadURL{URL: parsed.URL, IsPermanent: false, IsStorePage: false}, nil
}
