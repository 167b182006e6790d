package scraper

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/1is1/dota-stat-calculator/internal/dataset"
	"github.com/1is1/dota-stat-calculator/internal/errors"
)

var (
	numberPattern     = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	slugPattern       = regexp.MustCompile(`[^a-z0-9]+`)
)

// baseFields maps the snapshot's camelCase base keys to the table's header
// keys. The header spellings come from the wiki's attribute table; anything
// the page does not carry simply stays null in the output.
var baseFields = []struct {
	key    string
	header string
}{
	{"str", "STR"}, {"strGain", "STR+"}, {"str30", "STR 30"},
	{"agi", "AGI"}, {"agiGain", "AGI+"}, {"agi30", "AGI 30"},
	{"int", "INT"}, {"intGain", "INT+"}, {"int30", "INT 30"},
	{"total", "T"}, {"totalGain", "T+"}, {"total30", "T30"},
	{"ms", "MS"}, {"armor", "AR"},
	{"dmgMin", "DMG (MIN)"}, {"dmgMax", "DMG (MAX)"},
	{"range", "RG"}, {"attackSpeed", "AS"}, {"bat", "BAT"},
	{"attackPoint", "ATK PT"}, {"backswing", "ATK BS"},
	{"visionDay", "VS-D"}, {"visionNight", "VS-N"},
	{"turnRate", "TR"}, {"collision", "COL"},
	{"hp", "HP"}, {"hpRegen", "HP/S"},
	{"mp", "MP"}, {"mpRegen", "MP/S"},
}

// tableCell is one parsed <td>: its cleaned text, the typed value (float64,
// string, or nil for blank), and the first non-empty link text if any.
type tableCell struct {
	text     string
	value    any
	linkText string
}

// parseHeroTable finds the stats table in the document and converts its
// rows into hero records sorted by name.
func parseHeroTable(doc *html.Node) ([]dataset.HeroRecord, error) {
	table, thead := findStatsTable(doc)
	if table == nil {
		return nil, errors.FailedPrecondition(
			"no hero attribute table found; the page structure may have changed")
	}

	headerKeys := parseHeaderKeys(thead)

	var heroes []dataset.HeroRecord
	for _, tr := range tableRows(table) {
		cells := parseRowCells(tr)
		if len(cells) == 0 {
			continue
		}
		// Separator and summary rows never match the header width.
		if len(cells) != len(headerKeys) {
			continue
		}
		heroes = append(heroes, toHeroRecord(headerKeys, cells))
	}

	sort.Slice(heroes, func(i, j int) bool { return heroes[i].Name < heroes[j].Name })
	return heroes, nil
}

// findStatsTable returns the first <table> whose <thead> headers include
// both STR and HP. The original scraper pinned one wiki skin with an XPath;
// matching by content survives layout changes around the table. The walk
// descends into every table so a stats table wrapped in a layout table is
// still found.
func findStatsTable(doc *html.Node) (table, thead *html.Node) {
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if isElement(n, "table") {
			if th := findFirst(n, "thead"); th != nil {
				keys := parseHeaderKeys(th)
				if containsKey(keys, "STR") && containsKey(keys, "HP") {
					table, thead = n, th
					return true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return table, thead
}

// parseHeaderKeys returns the column keys in order. Each key prefers the
// <abbr> text inside the header cell; the two DMG columns are told apart
// by the (MIN)/(MAX) suffix in the cell's full text.
func parseHeaderKeys(thead *html.Node) []string {
	var keys []string
	for _, th := range findAll(thead, "th") {
		key := cleanText(textContent(th))
		if abbr := findFirst(th, "abbr"); abbr != nil {
			key = cleanText(textContent(abbr))
		}

		fullText := cleanText(textContent(th))
		if key == "DMG" && strings.Contains(fullText, "(MIN)") {
			key = "DMG (MIN)"
		}
		if key == "DMG" && strings.Contains(fullText, "(MAX)") {
			key = "DMG (MAX)"
		}

		keys = append(keys, key)
	}
	return keys
}

// tableRows returns every <tr> under the table's <tbody> elements.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for _, tbody := range findAll(table, "tbody") {
		rows = append(rows, findAll(tbody, "tr")...)
	}
	return rows
}

// parseRowCells extracts the row's direct <td> children in order. A cell's
// value prefers the data-sort-value attribute over its visible text, since
// the wiki renders some numbers with decorations.
func parseRowCells(tr *html.Node) []tableCell {
	var cells []tableCell
	for td := tr.FirstChild; td != nil; td = td.NextSibling {
		if !isElement(td, "td") {
			continue
		}

		text := cleanText(textContent(td))

		valueSource := text
		if sortValue, ok := attrValue(td, "data-sort-value"); ok {
			valueSource = cleanText(sortValue)
		}

		var linkText string
		for _, a := range findAll(td, "a") {
			if t := cleanText(textContent(a)); t != "" {
				linkText = t
				break
			}
		}

		cells = append(cells, tableCell{
			text:     text,
			value:    toNumberOrString(valueSource),
			linkText: linkText,
		})
	}
	return cells
}

// toHeroRecord converts one row into the snapshot schema. The first column
// is the hero column: its link text is the display name, falling back to
// the cell text.
func toHeroRecord(headerKeys []string, cells []tableCell) dataset.HeroRecord {
	flat := make(map[string]any, len(headerKeys))
	for i, key := range headerKeys {
		flat[key] = cells[i].value
	}

	name := cells[0].linkText
	if name == "" {
		name = cells[0].text
	}
	if name == "" {
		name = "Unknown"
	}

	primary := ""
	if s, ok := flat["A"].(string); ok {
		primary = s
	}

	base := make(map[string]any, len(baseFields))
	for _, f := range baseFields {
		base[f.key] = flat[f.header]
	}

	return dataset.HeroRecord{
		ID:               slugify(name),
		Name:             name,
		PrimaryAttribute: primary,
		Base:             base,
		Raw:              flat,
	}
}

// cleanText collapses whitespace runs (including non-breaking spaces) into
// single spaces and trims the ends.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// toNumberOrString types a cell: blank becomes nil, plain numbers become
// float64, anything else stays a string.
func toNumberOrString(s string) any {
	s = cleanText(s)
	if s == "" {
		return nil
	}
	if numberPattern.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f
		}
	}
	return s
}

// slugify lowercases a name and folds every non-alphanumeric run into a
// single dash: "Anti-Mage" becomes "anti-mage".
func slugify(name string) string {
	s := strings.ToLower(name)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

// findFirst returns the first descendant element with the given tag, depth
// first, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	if isElement(n, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant element with the given tag in document
// order. Matching elements are not searched for nested matches, which is
// what table traversal wants: a row's cells never contain another row.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, tag) {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, tag)...)
	}
	return out
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

// attrValue returns the named attribute's value when the element carries it.
func attrValue(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// textContent concatenates every text node under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
