package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

// Info extracts the descriptive "about" content of a club or society page:
// display name, optional icon, heading title, the free-text about body and
// the aggregated external links. The about body is every top-level child of
// the card body except the decorative mb-n2 block.
func Info(data []byte, id string) (record.Info, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return record.Info{}, fmt.Errorf("parsing page: %w", err)
	}

	heading := doc.Find("div.section-heading.text-center.pt-5").First()
	if heading.Length() == 0 {
		return record.Info{}, structural("info", "missing display name heading")
	}
	name := normalizeSpace(heading.Text())

	table := doc.Find("div#about_table").First()
	if table.Length() == 0 {
		return record.Info{}, structural("info", "missing about table")
	}
	body := table.Find("div.card-body").First()
	if body.Length() == 0 {
		return record.Info{}, structural("info", "about table has no card body")
	}

	var parts []string
	body.Children().Each(func(_ int, block *goquery.Selection) {
		if block.HasClass("mb-n2") {
			return
		}
		parts = append(parts, block.Text())
	})
	var about *string
	if text := normalizeSpace(strings.Join(parts, "\n")); text != "" {
		about = &text
	}

	section := doc.Find("section.clearfix.faded-bg").First()
	if section.Length() == 0 {
		return record.Info{}, structural("info", "missing heading section")
	}
	titleSel := section.Find("div.col-12.text-center").First()
	if titleSel.Length() == 0 {
		return record.Info{}, structural("info", "heading section has no title")
	}
	title := normalizeSpace(titleSel.Text())

	var icon *string
	if wrap := section.Find("div.wow.fadeInDown.w-100.mb-3").First(); wrap.Length() > 0 {
		src, ok := wrap.Find("img").First().Attr("src")
		if !ok {
			return record.Info{}, structural("info", "icon container has no image")
		}
		icon = &src
	}

	links, err := Links(data)
	if err != nil {
		return record.Info{}, err
	}
	if len(links) == 0 {
		links = nil
	}

	return record.Info{
		ID:    id,
		Name:  name,
		Icon:  icon,
		Title: title,
		About: about,
		Links: links,
	}, nil
}
