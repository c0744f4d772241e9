package itchio

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gardenappl/mitch-sub001/src/types"
)

// ExtractUploads walks a download (or purchase) page and produces the
// list of candidate uploads in DOM order.
//
// The page renders one marker element per platform per upload row, so
// icons are grouped by their upload-row ancestor and their platform
// bits ORed together. DOM order is stable and doubles as the tie-break
// for uploads that expose no numeric ID.
func ExtractUploads(doc *goquery.Document, gameID int64) []types.Upload {
	var uploads []types.Upload
	rowIndex := make(map[*html.Node]int)

	doc.Find(selUploadRow).Find(selPlatformIcon).Each(func(i int, icon *goquery.Selection) {
		platform, ok := iconPlatform(icon)
		if !ok {
			return
		}

		row := icon.Closest(selUploadRow)
		if row.Length() == 0 {
			return
		}

		node := row.Get(0)
		if idx, seen := rowIndex[node]; seen {
			uploads[idx].Platforms |= platform
			return
		}

		upload := extractUploadRow(row, gameID, len(uploads))
		upload.Platforms = platform
		rowIndex[node] = len(uploads)
		uploads = append(uploads, upload)
	})

	return uploads
}

// iconPlatform maps a platform icon element to its platform bit.
func iconPlatform(icon *goquery.Selection) (types.Platform, bool) {
	classAttr, exists := icon.Attr("class")
	if !exists {
		return 0, false
	}
	for _, class := range strings.Fields(classAttr) {
		if platform, ok := platformIconClasses[class]; ok {
			return platform, true
		}
	}
	return 0, false
}

func extractUploadRow(row *goquery.Selection, gameID int64, position int) types.Upload {
	upload := types.Upload{
		GameID:   gameID,
		Position: position,
	}

	nameEl := row.Find(selUploadName).First()
	upload.Name = strings.TrimSpace(nameEl.AttrOr("title", ""))
	if upload.Name == "" {
		upload.Name = strings.TrimSpace(nameEl.Text())
	}

	upload.FileSize = strings.TrimSpace(row.Find(selFileSize).First().Text())

	// The version label can contain non-Latin text; keep it verbatim
	// apart from surrounding whitespace.
	upload.Version = strings.TrimSpace(row.Find(selVersionName).First().Text())

	// The row's own upload-date is a build-specific signal, unlike the
	// page-level "last updated" header.
	if ts, exists := row.Find(selUploadDate).First().Attr("title"); exists {
		upload.Timestamp = strings.TrimSpace(ts)
		upload.BuildTimestamp = upload.Timestamp != ""
	}

	upload.UploadID = extractUploadID(row)

	return upload
}

// extractUploadID reads the numeric upload ID from the row or its
// nearest carrying ancestor. Pages where the visitor lacks purchase
// access omit the attribute; a non-numeric value is treated the same
// way so one broken row never aborts extraction.
func extractUploadID(row *goquery.Selection) *int64 {
	attr, exists := row.Attr("data-upload_id")
	if !exists {
		attr, exists = row.Closest("[data-upload_id]").Attr("data-upload_id")
	}
	if !exists {
		return nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(attr), 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
