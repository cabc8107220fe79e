package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

// hiddenName is the placeholder the platform renders when a committee member
// has hidden their name.
const hiddenName = "(name hidden)"

// Committee extracts the committee roster, pairing position headings with
// member name cells positionally. A club without a committee section yields
// an empty roster.
func Committee(data []byte) ([]record.CommitteeMember, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	members := []record.CommitteeMember{}
	table := doc.Find("div#committee_table").First()
	if table.Length() == 0 {
		return members, nil
	}

	positions := table.Find("th")
	names := table.Find("td")
	for i := 0; i < positions.Length() && i < names.Length(); i++ {
		var name *string
		if text := strings.TrimSpace(names.Eq(i).Text()); text != hiddenName {
			name = &text
		}
		members = append(members, record.CommitteeMember{
			Name:     name,
			Position: strings.TrimSpace(positions.Eq(i).Text()),
		})
	}
	return members, nil
}

// Gallery extracts the photo gallery image URLs. A club without a gallery
// yields an empty list.
func Gallery(data []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	urls := []string{}
	gallery := doc.Find("div.row.photo_gallery.mt-5.overflow-auto").First()
	if gallery.Length() == 0 {
		return urls, nil
	}

	var fail error
	gallery.Find("img").EachWithBreak(func(i int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok {
			fail = structural("gallery", "image %d has no src", i)
			return false
		}
		urls = append(urls, src)
		return true
	})
	if fail != nil {
		return nil, fail
	}
	return urls, nil
}

// Awards extracts the awards table: year heading, bold award name, italic
// winner (carried in its title attribute) and a trailing small label used as
// the award type. A club without an awards section yields an empty list.
func Awards(data []byte) ([]record.InfoAward, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	awards := []record.InfoAward{}
	table := doc.Find("div#awards_table").First()
	if table.Length() == 0 {
		return awards, nil
	}

	var fail error
	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		year := strings.TrimSpace(row.Find("th").First().Text())
		if year == "" {
			fail = structural("awards", "row %d has no year", i)
			return false
		}
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			fail = structural("awards", "row %d has no detail cell", i)
			return false
		}
		name := strings.TrimSpace(cell.Find("b").First().Text())
		if name == "" {
			fail = structural("awards", "row %d has no award name", i)
			return false
		}
		winner, ok := cell.Find("i").First().Attr("title")
		if !ok {
			fail = structural("awards", "row %d has no winner", i)
			return false
		}
		kindSel := cell.Find("small").First()
		if kindSel.Length() == 0 {
			fail = structural("awards", "row %d has no award type", i)
			return false
		}

		awards = append(awards, record.InfoAward{
			Year:   year,
			Name:   name,
			Winner: strings.TrimSpace(winner),
			Type:   strings.TrimSuffix(strings.TrimSpace(kindSel.Text()), ":"),
		})
		return true
	})
	if fail != nil {
		return nil, fail
	}
	return awards, nil
}

// Links extracts the external links table. The link name is the anchor's
// title attribute, falling back to its visible text. A club without a links
// section yields an empty list.
func Links(data []byte) ([]record.InfoLink, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	links := []record.InfoLink{}
	table := doc.Find("div#links_table").First()
	if table.Length() == 0 {
		return links, nil
	}

	var fail error
	table.Find("a").EachWithBreak(func(i int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok {
			fail = structural("links", "link %d has no href", i)
			return false
		}
		name := a.AttrOr("title", "")
		if name == "" {
			name = strings.TrimSpace(a.Text())
		}
		links = append(links, record.InfoLink{Name: name, URL: href})
		return true
	})
	if fail != nil {
		return nil, fail
	}
	return links, nil
}
