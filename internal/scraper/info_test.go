package scraper

import (
	"errors"
	"testing"
)

func TestInfo(t *testing.T) {
	data := loadFixture(t, "club_page.html")

	info, err := Info(data, "foo")
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if info.ID != "foo" {
		t.Errorf("id = %q", info.ID)
	}
	if info.Name != "Foo Society" {
		t.Errorf("name = %q, want whitespace-normalized Foo Society", info.Name)
	}
	if info.Title != "Foo Society" {
		t.Errorf("title = %q", info.Title)
	}
	if info.Icon == nil || *info.Icon != "https://cdn.test.site/foo/icon.png" {
		t.Errorf("icon = %v", info.Icon)
	}
	if info.About == nil {
		t.Fatal("about = nil, want text")
	}
	if *info.About != "We are the Foo Society. Join us." {
		t.Errorf("about = %q, want decorative block dropped and text normalized", *info.About)
	}
	if len(info.Links) != 2 {
		t.Errorf("expected 2 links, got %d", len(info.Links))
	}
}

func TestInfoEmptyAboutAndLinks(t *testing.T) {
	page := `<html><body>
		<section class="clearfix faded-bg">
			<div class="col-12 text-center">Bar Society</div>
		</section>
		<div class="section-heading text-center pt-5">Bar Society</div>
		<div id="about_table"><div class="card-body">
			<div class="mb-n2">decorative</div>
		</div></div>
	</body></html>`

	info, err := Info([]byte(page), "bar")
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.About != nil {
		t.Errorf("about = %q, want nil for empty content", *info.About)
	}
	if info.Links != nil {
		t.Errorf("links = %v, want nil when none exist", info.Links)
	}
	if info.Icon != nil {
		t.Errorf("icon = %v, want nil without an icon container", *info.Icon)
	}
}

func TestInfoMissingHeading(t *testing.T) {
	_, err := Info([]byte("<html><body></body></html>"), "foo")
	if err == nil {
		t.Fatal("expected error for page without a display name heading")
	}
	var sErr *StructuralError
	if !errors.As(err, &sErr) {
		t.Errorf("error = %T (%v), want *StructuralError", err, err)
	}
}
