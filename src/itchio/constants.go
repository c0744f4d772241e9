package itchio

import "github.com/gardenappl/mitch-sub001/src/types"

const (
	Host = "https://itch.io"
)

// Values of the body's data-page_name attribute, rendered server-side
// on every itch.io page.
const (
	pageNameStore    = "view_game"
	pageNameDownload = "game_download"
	pageNamePurchase = "game_purchase"
	pageNameUser     = "user"
	pageNameJam      = "jam"
	pageNameForum    = "forum"

	// devlog pages share the game layout and are distinguished by a
	// secondary enumeration of the same attribute
	pageNameDevlog     = "game.devlog"
	pageNameDevlogPost = "game.devlog_post"
)

// Selectors shared across extractors. itch.io's markup is an external,
// uncontrolled format; keeping every selector here makes drift cheap to
// patch.
const (
	selDownloadButton = ".download_btn"
	selUploadRow      = "div.upload"
	selPlatformIcon   = "span[class*='icon-']"
	selUploadName     = ".upload_name .name"
	selFileSize       = ".file_size span"
	selUploadDate     = ".upload_date abbr"
	selVersionName    = ".version_name"

	selGameTitle   = "h1.game_title"
	selGameAuthor  = ".game_author a"
	selThumbnail   = ".game_thumb img, meta[property='og:image']"
	selCanonical   = "link[rel='canonical']"
	selEmbedWidget = "div.html_embed_widget"
	selFavicon     = "link[rel='icon'], link[rel='shortcut icon']"

	selBuyRow      = ".buy_row"
	selBuyButton   = ".buy_btn"
	selDonateHint  = ".donate_btn"
	selPriceValue  = ".dollars"
	selClaimForm   = "form.claim_game_form, form[action*='claim']"
	selMainLayout  = ".main_layout"
	selUserName    = ".user_tools .user_name"
	selGamePathTag = "meta[name='itch:path']"
	selCSRFToken   = "meta[name='csrf_token']"
	selThemeStyle  = "#game_theme, #user_theme, style.jam_theme"
)

// Platform icon CSS classes, one marker element per platform per row.
var platformIconClasses = map[string]types.Platform{
	"icon-windows8": types.PlatformWindows,
	"icon-apple":    types.PlatformMac,
	"icon-tux":      types.PlatformLinux,
	"icon-android":  types.PlatformAndroid,
}
