package scraper

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

// lockedSuffix marks a directory entry whose committee has not unlocked the
// page yet. It is stripped from the display name.
const lockedSuffix = "(awaiting committee unlock)"

// Listing extracts the clubs or societies of one group type from a directory
// page. Anchors whose href does not follow {site}/{group}/{id} are ignored,
// as are anchors without a title attribute (decorative logos and images).
func Listing(data []byte, site string, group record.GroupType) ([]record.ClubSoc, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	prefix := site + "/" + string(group) + "/"
	idPattern := regexp.MustCompile("/" + regexp.QuoteMeta(string(group)) + "/(.+)$")

	out := []record.ClubSoc{}
	var fail error
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !strings.Contains(href, prefix) {
			return true
		}
		title, ok := a.Attr("title")
		if !ok || title == "" {
			return true
		}

		name := strings.TrimSpace(title)
		locked := strings.HasSuffix(name, lockedSuffix)
		if locked {
			name = strings.TrimSpace(strings.TrimSuffix(name, lockedSuffix))
		}

		m := idPattern.FindStringSubmatch(href)
		if m == nil || m[1] == "" {
			fail = &ListingError{Name: name, Href: href}
			return false
		}

		out = append(out, record.ClubSoc{ID: m[1], Name: name, IsLocked: locked})
		return true
	})
	if fail != nil {
		return nil, fail
	}
	return out, nil
}
