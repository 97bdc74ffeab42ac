package dto

// LeadAlert is the webhook body, compatible with Discord and Slack style
// incoming webhooks.
type LeadAlert struct {
	Content string       `json:"content"`
	Embeds  []AlertEmbed `json:"embeds"`
}

type AlertEmbed struct {
	Title     string       `json:"title"`
	Fields    []AlertField `json:"fields"`
	Color     int          `json:"color"`
	Timestamp string       `json:"timestamp"`
}

type AlertField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}
