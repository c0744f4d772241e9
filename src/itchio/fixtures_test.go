package itchio

// HTML fixtures trimmed down from real itch.io pages. Attribute and
// class names match what the site renders server-side; everything else
// is cut for brevity.

const storePageFreeHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="itch:path" content="games/243220"/>
<meta property="og:title" content="A Tavern for Tea"/>
<meta property="og:image" content="https://img.itch.zone/aW1hZ2U/og.png"/>
<link rel="canonical" href="https://npckc.itch.io/a-tavern-for-tea"/>
<link rel="icon" href="https://npckc.itch.io/favicon.ico"/>
<style id="game_theme">
.wrapper { --itchio_button_color: #fa5c5c; --itchio_link_color: #12347a; }
</style>
</head>
<body data-page_name="view_game">
<div class="main_layout dark_theme">
<div class="user_tools"><a class="user_name" href="/profile/tester">tester</a></div>
<h1 class="game_title">A Tavern for Tea</h1>
<div class="game_author"><a href="https://npckc.itch.io">npckc</a></div>
<div class="game_thumb"><img src="https://img.itch.zone/aW1hZ2U/thumb.png"/></div>
<div class="upload_list">
  <div class="upload" data-upload_id="1822011">
    <a class="download_btn" href="/download/1822011">Download</a>
    <div class="upload_name">
      <strong class="name" title="a-tavern-for-tea-win-linux.zip">a-tavern-for-tea-win-linux.zip</strong>
      <span class="file_size"><span>32 MB</span></span>
      <span class="version_name">1.1</span>
    </div>
    <div class="upload_date">(<abbr title="11 June 2021 @ 09:02 UTC">54 days ago</abbr>)</div>
    <span class="platforms">
      <span class="icon icon-windows8"></span>
      <span class="icon icon-tux"></span>
    </span>
  </div>
  <div class="upload" data-upload_id="1822012">
    <a class="download_btn" href="/download/1822012">Download</a>
    <div class="upload_name">
      <strong class="name" title="a-tavern-for-tea.apk">a-tavern-for-tea.apk</strong>
      <span class="file_size"><span>40 MB</span></span>
      <span class="version_name">1.1</span>
    </div>
    <div class="upload_date">(<abbr title="11 June 2021 @ 09:10 UTC">54 days ago</abbr>)</div>
    <span class="platforms">
      <span class="icon icon-android"></span>
    </span>
  </div>
</div>
</div>
</body>
</html>`

const storePageDonationHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta name="itch:path" content="games/276085"/>
<meta name="csrf_token" value="csrf-abc123"/>
<meta property="og:image" content="https://img.itch.zone/aW1hZ2U/mochi.png"/>
<link rel="canonical" href="https://example-dev.itch.io/mochi"/>
</head>
<body data-page_name="view_game">
<div class="main_layout">
<h1 class="game_title">もち</h1>
<div class="game_author"><a href="https://example-dev.itch.io">example-dev</a></div>
<div class="game_thumb"><img src="https://img.itch.zone/aW1hZ2U/mochi-thumb.png"/></div>
<div class="buy_row">
  <a class="button buy_btn donate_btn" href="/purchase">Download Now</a>
  <div class="buy_message">Name your own price</div>
</div>
<span class="icon icon-android"></span>
</div>
</body>
</html>`

const storePagePaidHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="itch:path" content="games/98765"/>
<meta property="og:image" content="https://img.itch.zone/aW1hZ2U/paid.png"/>
<link rel="canonical" href="https://big-studio.itch.io/paid-game"/>
</head>
<body data-page_name="view_game">
<div class="main_layout">
<h1 class="game_title">Paid Game</h1>
<div class="game_author"><a href="https://big-studio.itch.io">big-studio</a></div>
<div class="game_thumb"><img src="https://img.itch.zone/aW1hZ2U/paid-thumb.png"/></div>
<div class="buy_row">
  <a class="button buy_btn" href="/buy">Buy Now</a>
  <span class="dollars">$5.00</span>
</div>
<span class="icon icon-windows8"></span>
</div>
</body>
</html>`

const storePageClaimHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="itch:path" content="games/424242"/>
<meta property="og:image" content="https://img.itch.zone/aW1hZ2U/bundle.png"/>
<link rel="canonical" href="https://indie-dev.itch.io/bundle-game"/>
</head>
<body data-page_name="view_game">
<div class="main_layout">
<h1 class="game_title">Bundle Game</h1>
<div class="game_author"><a href="https://indie-dev.itch.io">indie-dev</a></div>
<div class="game_thumb"><img src="https://img.itch.zone/aW1hZ2U/bundle-thumb.png"/></div>
<form class="claim_game_form" action="/bundle/claim">
  <input type="hidden" name="csrf_token" value="csrf-claim"/>
  <input type="hidden" name="game_id" value="424242"/>
  <button class="button">Claim</button>
</form>
</div>
</body>
</html>`

const storePageWebEmbedHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="itch:path" content="games/515151"/>
<meta property="og:image" content="https://img.itch.zone/aW1hZ2U/web.png"/>
<link rel="canonical" href="https://web-dev.itch.io/browser-game"/>
<link rel="icon" href="https://web-dev.itch.io/favicon.png"/>
</head>
<body data-page_name="view_game">
<div class="main_layout">
<h1 class="game_title">Browser Game</h1>
<div class="game_author"><a href="https://web-dev.itch.io">web-dev</a></div>
<div class="game_thumb"><img src="https://img.itch.zone/aW1hZ2U/web-thumb.png"/></div>
<div class="html_embed_widget">
  <iframe src="https://v6p9d9t4.ssl.hwcdn.net/html/12345/index.html" allowfullscreen="true"></iframe>
</div>
</div>
</body>
</html>`

const downloadPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="itch:path" content="games/109466"/>
</head>
<body data-page_name="game_download">
<div class="main_layout">
<div class="upload_list">
  <div class="upload" data-upload_id="205415">
    <div class="upload_name">
      <strong class="name" title="mindustry-windows-64.zip">mindustry-windows-64.zip</strong>
      <span class="file_size"><span>64 MB</span></span>
      <span class="version_name">v126.2</span>
    </div>
    <div class="upload_date">(<abbr title="02 March 2021 @ 14:01 UTC">2 days ago</abbr>)</div>
    <span class="platforms">
      <span class="icon icon-windows8"></span>
      <span class="icon icon-tux"></span>
    </span>
  </div>
  <div class="upload" data-upload_id="not-a-number">
    <div class="upload_name">
      <strong class="name" title="mindustry-mac.zip">mindustry-mac.zip</strong>
      <span class="file_size"><span>66 MB</span></span>
      <span class="version_name">v126.2</span>
    </div>
    <div class="upload_date">(<abbr title="02 March 2021 @ 14:05 UTC">2 days ago</abbr>)</div>
    <span class="platforms">
      <span class="icon icon-apple"></span>
    </span>
  </div>
  <div class="upload">
    <div class="upload_name">
      <strong class="name" title="mindustry-android.apk">mindustry-android.apk</strong>
      <span class="file_size"><span>58 MB</span></span>
      <span class="version_name">версия 126.2</span>
    </div>
    <span class="platforms">
      <span class="icon icon-android"></span>
    </span>
  </div>
  <div class="upload">
    <div class="upload_name">
      <strong class="name" title="mindustry-server.jar">mindustry-server.jar</strong>
      <span class="file_size"><span>12 MB</span></span>
    </div>
    <span class="platforms">
      <span class="icon icon-windows8"></span>
      <span class="icon icon-apple"></span>
      <span class="icon icon-tux"></span>
    </span>
  </div>
</div>
</div>
</body>
</html>`

const userPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<style id="user_theme">
.wrapper { --itchio_link_color: #3366ff; }
</style>
</head>
<body data-page_name="user">
<div class="main_layout"></div>
</body>
</html>`

const jamPageHTML = `<!DOCTYPE html>
<html>
<head>
<style class="jam_theme">
.jam_layout a { color: #ff0077; }
</style>
</head>
<body data-page_name="jam">
<div class="jam_layout"></div>
</body>
</html>`

const devlogPostHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="itch:path" content="games/109466"/>
</head>
<body data-page_name="game.devlog_post">
<div class="main_layout"></div>
</body>
</html>`
