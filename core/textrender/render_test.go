package textrender

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
)

func parseFragment(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing rendered fragment: %v", err)
	}
	return doc
}

func TestRender_empty(t *testing.T) {
	assert.Equal(t, "", Render(""))
}

func TestRender_paragraphs(t *testing.T) {
	got := Render("Hello\n\nWorld")
	assert.Equal(t, "<p>Hello</p><br><p>World</p>", got)
}

func TestRender_heading(t *testing.T) {
	got := Render("**Title**")
	assert.Equal(t, "<h3>Title</h3>", got)

	doc := parseFragment(t, got)
	assert.Equal(t, 1, doc.Find("h3").Length())
	assert.Equal(t, 0, doc.Find("p,ul").Length())
}

func TestRender_list(t *testing.T) {
	doc := parseFragment(t, Render("- a\n- b"))
	assert.Equal(t, 1, doc.Find("ul").Length())

	items := doc.Find("ul li")
	assert.Equal(t, 2, items.Length())
	assert.Equal(t, "a", items.Eq(0).Text())
	assert.Equal(t, "b", items.Eq(1).Text())
}

func TestRender_numberedItemsJoinBulletedList(t *testing.T) {
	// numbered lines lose their numbering and land in the same <ul>
	doc := parseFragment(t, Render("- premier\n1. deuxième\n2. troisième"))
	assert.Equal(t, 1, doc.Find("ul").Length())
	assert.Equal(t, 0, doc.Find("ol").Length())

	items := doc.Find("ul li")
	assert.Equal(t, 3, items.Length())
	assert.Equal(t, "deuxième", items.Eq(1).Text())
	assert.Equal(t, "troisième", items.Eq(2).Text())
}

func TestRender_listFlushedByBlankLine(t *testing.T) {
	got := Render("- a\n\n- b")
	doc := parseFragment(t, got)
	assert.Equal(t, 2, doc.Find("ul").Length())
}

func TestRender_inlineBold(t *testing.T) {
	got := Render("un mot **important** ici")
	assert.Equal(t, "<p>un mot <strong>important</strong> ici</p>", got)

	got = Render("- item **fort**")
	assert.Equal(t, "<ul><li>item <strong>fort</strong></li></ul>", got)
}

func TestRender_escapesLiteralText(t *testing.T) {
	got := Render("1 < 2 & <script>alert(1)</script>")
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")

	doc := parseFragment(t, got)
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, "1 < 2 & <script>alert(1)</script>", doc.Find("p").Text())
}

func TestRender_mixedDocument(t *testing.T) {
	content := "**Programme**\nIntroduction au cours.\n\n- algèbre\n- analyse\n3. géométrie\n\nFin."
	doc := parseFragment(t, Render(content))

	assert.Equal(t, 1, doc.Find("h3").Length())
	assert.Equal(t, 2, doc.Find("p").Length())
	assert.Equal(t, 3, doc.Find("ul li").Length())
}

func TestRender_trailingListIsFlushed(t *testing.T) {
	doc := parseFragment(t, Render("intro\n- seul item"))
	assert.Equal(t, 1, doc.Find("ul li").Length())
}

func TestRender_bareMarkersAreNotHeadings(t *testing.T) {
	// ** and *** have overlapping markers and no title text, they stay
	// ordinary paragraphs; **** is a well-formed (empty) heading
	doc := parseFragment(t, Render("**"))
	assert.Equal(t, 0, doc.Find("h3").Length())
	assert.Equal(t, 1, doc.Find("p").Length())

	doc = parseFragment(t, Render("***"))
	assert.Equal(t, 0, doc.Find("h3").Length())
	assert.Equal(t, 1, doc.Find("p").Length())

	doc = parseFragment(t, Render("****"))
	assert.Equal(t, 1, doc.Find("h3").Length())
}

func TestRender_neverPanics(t *testing.T) {
	inputs := []string{
		"***",
		"****",
		"**",
		"- ",
		"1.",
		"1. ",
		"\n\n\n",
		"**unclosed",
		strings.Repeat("*", 50),
	}
	for _, in := range inputs {
		_ = Render(in) // must terminate and return
	}
}
