package model

// SheetMeta describes a curated problem sheet.
type SheetMeta struct {
	Key          string   `json:"key"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	Total        int      `json:"total"`
	ReferenceURL string   `json:"referenceUrl,omitempty"`
}

// SheetProblemItem is the reduced problem shape carried by a sheet.
// Sheets are authored content so rating/acceptance fields never apply.
type SheetProblemItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Source     Source `json:"source"`
}
