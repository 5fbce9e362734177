package parse

import (
	"regexp"
	"strings"
)

var (
	projectParenRe = regexp.MustCompile(`^(.{1,80}?)\s*[(\[]([^)\]]+)[)\]]`)
	projectDashRe  = regexp.MustCompile(`^(.{1,80}?)\s+[-–—:|]\s+(.+)$`)

	githubLinkRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?github\.com/[\w.-]+/[\w.-]+`)
)

// ExtractProjects builds one item per block. The header line is matched
// against `name (dates)` / `name [dates]` first, then `name – description`;
// first match wins. Every line is scanned for link-shaped substrings.
func ExtractProjects(blocks []Block) []ProjectItem {
	var items []ProjectItem
	for _, block := range blocks {
		if len(block.Lines) == 0 {
			continue
		}
		header := block.Lines[0]

		var title, dateText string
		if m := projectParenRe.FindStringSubmatch(header); m != nil {
			title = strings.TrimSpace(m[1])
			dateText = strings.TrimSpace(m[2])
		} else if m := projectDashRe.FindStringSubmatch(header); m != nil {
			title = strings.TrimSpace(m[1])
		} else {
			title = strings.TrimSpace(header)
		}

		item := ProjectItem{Dates: ParseDateRange(dateText)}
		if title != "" {
			item.Title = scored(title, 0.9)
		} else {
			item.Title = missing[string]()
		}

		if links := collectProjectLinks(block.Lines); len(links) > 0 {
			item.Links = scored(links, 0.9)
		} else {
			item.Links = missing[[]string]()
		}

		if bullets := bulletize(block.Lines[1:]); len(bullets) > 0 {
			item.Bullets = scored(bullets, 0.85)
		} else {
			item.Bullets = missing[[]string]()
		}

		items = append(items, item)
	}
	return items
}

func collectProjectLinks(lines []string) []string {
	seen := make(map[string]struct{})
	var links []string
	add := func(raw string) {
		link := strings.TrimRight(raw, ".,;")
		if !strings.Contains(link, "://") {
			link = "https://" + link
		}
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}

	for _, line := range lines {
		for _, m := range githubLinkRe.FindAllString(line, -1) {
			add(m)
		}
		masked := githubLinkRe.ReplaceAllString(line, " ")
		for _, m := range schemedURLRe.FindAllString(masked, -1) {
			add(m)
		}
		remaining := schemedURLRe.ReplaceAllString(masked, " ")
		remaining = emailRe.ReplaceAllString(remaining, " ")
		for _, m := range bareURLRe.FindAllString(remaining, -1) {
			add(m)
		}
	}
	return links
}
