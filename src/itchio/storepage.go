package itchio

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gardenappl/mitch-sub001/src/types"
)

// ExtractGame builds a Game identity record from a store page.
// Returns nil when the required pieces (title, author, thumbnail) are
// missing: that is the "not a usable game page" signal for malformed or
// access-restricted pages, not an error.
func ExtractGame(doc *goquery.Document, storeURL string) *types.Game {
	id := GameID(doc)
	if id == nil {
		return nil
	}

	name := strings.TrimSpace(doc.Find(selGameTitle).First().Text())
	if name == "" {
		name = strings.TrimSpace(doc.Find("meta[property='og:title']").AttrOr("content", ""))
	}

	author := strings.TrimSpace(doc.Find(selGameAuthor).First().Text())
	thumbnail := extractThumbnail(doc)

	if name == "" || author == "" || thumbnail == "" {
		return nil
	}

	game := &types.Game{
		GameID:       *id,
		Name:         name,
		Author:       author,
		StoreURL:     canonicalStoreURL(doc, storeURL),
		ThumbnailURL: thumbnail,
	}

	// A free game with inline download buttons needs no separate
	// download page; the store page itself is the permanent location.
	if HasDownloadLinks(doc) {
		game.DownloadPageURL = game.StoreURL
	}

	if embed := ExtractWebEmbed(doc); embed != nil {
		game.WebEntryPoint = embed.EntryPoint
		game.WebIframe = embed.Iframe
		game.FaviconURL = embed.FaviconURL
	}

	return game
}

func extractThumbnail(doc *goquery.Document) string {
	if src, exists := doc.Find(".game_thumb img").First().Attr("src"); exists {
		return src
	}
	return doc.Find("meta[property='og:image']").AttrOr("content", "")
}

func canonicalStoreURL(doc *goquery.Document, fallback string) string {
	if href, exists := doc.Find(selCanonical).Attr("href"); exists && href != "" {
		return href
	}
	return strings.TrimSuffix(fallback, "/")
}

// ExtractWebEmbed pulls the playable-in-browser build info out of a
// store page. Returns nil when the page hosts no web build.
func ExtractWebEmbed(doc *goquery.Document) *types.WebEmbed {
	widget := doc.Find(selEmbedWidget).First()
	if widget.Length() == 0 {
		return nil
	}

	embed := &types.WebEmbed{}

	iframe := widget.Find("iframe").First()
	if src, exists := iframe.Attr("src"); exists {
		embed.EntryPoint = src
	}
	if html, err := goquery.OuterHtml(iframe); err == nil {
		embed.Iframe = strings.TrimSpace(html)
	}

	// Lazy-loaded embeds stash the whole iframe snippet in a data
	// attribute instead of rendering it.
	if embed.EntryPoint == "" {
		if data, exists := widget.Find("[data-iframe]").First().Attr("data-iframe"); exists {
			embed.Iframe = data
			embed.EntryPoint = extractIframeSrc(data)
		}
	}

	if embed.EntryPoint == "" {
		return nil
	}

	embed.FaviconURL = doc.Find(selFavicon).First().AttrOr("href", "")
	return embed
}

func extractIframeSrc(iframeHTML string) string {
	frag, err := goquery.NewDocumentFromReader(strings.NewReader(iframeHTML))
	if err != nil {
		return ""
	}
	return frag.Find("iframe").AttrOr("src", "")
}

// ExtractPurchases lists the purchasable items offered on a store page,
// one record per buy row.
func ExtractPurchases(doc *goquery.Document) []types.Purchase {
	var purchases []types.Purchase

	doc.Find(selBuyRow).Each(func(i int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(selBuyButton).First().Text())
		if name == "" {
			name = strings.TrimSpace(row.Find("a.button").First().Text())
		}
		if name == "" {
			return
		}

		price := strings.TrimSpace(row.Find(selPriceValue).First().Text())
		if price == "" {
			price = "free"
		}

		purchases = append(purchases, types.Purchase{Name: name, Price: price})
	})

	return purchases
}

// ExtractPaymentInfo summarises a store page's monetisation: a priced
// sale, a "pay what you want" donation, or plain free.
func ExtractPaymentInfo(doc *goquery.Document) types.PaymentInfo {
	info := types.PaymentInfo{}

	info.Price = strings.TrimSpace(doc.Find(selBuyRow).Find(selPriceValue).First().Text())

	buyText := doc.Find(selBuyRow).Text()
	if doc.Find(selDonateHint).Length() > 0 || strings.Contains(buyText, "Name your own price") {
		info.Donation = true
	}

	if info.Price == "" && !info.Donation {
		info.Free = true
	}

	return info
}

// HasAndroidBuild reports whether any Android platform icon appears on
// the page. Store pages expose no per-row platform detail, only the
// download page does, so this is deliberately page-scoped.
func HasAndroidBuild(doc *goquery.Document) bool {
	return doc.Find(".icon-android").Length() > 0
}

// HasDesktopBuild reports whether any desktop platform icon appears on
// the page.
func HasDesktopBuild(doc *goquery.Document) bool {
	return doc.Find(".icon-windows8, .icon-apple, .icon-tux").Length() > 0
}
