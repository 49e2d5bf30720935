package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/rslocke/choreboard/internal/model"
)

const defaultAPIURL = "https://api.postmarkapp.com/email"

// Client sends digest emails through the Postmark HTTP API.
type Client struct {
	serverToken string
	fromEmail   string
	apiURL      string
	httpClient  *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithAPIURL overrides the Postmark endpoint, for tests.
func WithAPIURL(url string) Option {
	return func(cl *Client) {
		cl.apiURL = url
	}
}

func NewClient(serverToken, fromEmail string, opts ...Option) *Client {
	c := &Client{
		serverToken: serverToken,
		fromEmail:   fromEmail,
		apiURL:      defaultAPIURL,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns true if the server token is set.
func (c *Client) Configured() bool {
	return c.serverToken != ""
}

type postmarkEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// SendDigest emails one owner their weekly summary of due tasks, grouped by
// room. Rooms render in sorted order so repeated digests are stable.
func (c *Client) SendDigest(toEmail string, rooms map[string][]model.DueStatus) error {
	if !c.Configured() {
		return fmt.Errorf("email client not configured: missing server token")
	}

	payload := postmarkEmail{
		From:     fmt.Sprintf("House Manager <%s>", c.fromEmail),
		To:       toEmail,
		Subject:  "Your Weekly Chores Summary",
		HtmlBody: digestHTML(rooms),
		TextBody: digestText(rooms),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.serverToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("postmark API error: status %d", resp.StatusCode)
	}

	return nil
}

func sortedRooms(rooms map[string][]model.DueStatus) []string {
	names := make([]string, 0, len(rooms))
	for name := range rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func itemStatus(item model.DueStatus) string {
	if item.DaysUntil <= 0 {
		return "DUE NOW"
	}
	return fmt.Sprintf("In %d days", item.DaysUntil)
}

func digestHTML(rooms map[string][]model.DueStatus) string {
	var sections strings.Builder
	for _, room := range sortedRooms(rooms) {
		var items strings.Builder
		for _, item := range rooms[room] {
			color := "#198754"
			if item.DaysUntil <= 0 {
				color = "#dc3545"
			}
			fmt.Fprintf(&items, `
            <div style="padding: 10px; border-bottom: 1px solid #eee;">
                <span style="font-weight: bold; color: #333;">%s</span><br>
                <span style="color: %s; font-size: 0.9em; font-weight: bold;">%s</span>
                <span style="color: #777; font-size: 0.8em;">(Target: %s)</span>
            </div>`, item.Task, color, itemStatus(item), item.TargetDay)
		}

		fmt.Fprintf(&sections, `
        <div style="margin-bottom: 20px; border: 1px solid #ddd; border-radius: 8px; overflow: hidden;">
            <div style="background-color: #f8f9fa; padding: 10px; font-weight: bold; border-bottom: 1px solid #ddd;">
                %s
            </div>%s
        </div>`, room, items.String())
	}

	return fmt.Sprintf(`
    <html>
        <body style="font-family: Arial, sans-serif; color: #333; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px;">
            <h2 style="color: #0d6efd;">Chore Checklist</h2>
            <p>Hi! Here are the tasks assigned to you that are due this week:</p>%s
            <p style="font-size: 0.8em; color: #999; margin-top: 30px;">
                This is an automated reminder from your House Manager App.
            </p>
        </body>
    </html>`, sections.String())
}

func digestText(rooms map[string][]model.DueStatus) string {
	var b strings.Builder
	b.WriteString("Here are the tasks assigned to you that are due this week:\n")
	for _, room := range sortedRooms(rooms) {
		fmt.Fprintf(&b, "\n%s\n", room)
		for _, item := range rooms[room] {
			fmt.Fprintf(&b, "  - %s: %s (Target: %s)\n", item.Task, itemStatus(item), item.TargetDay)
		}
	}
	return b.String()
}
