package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"apifetch/internal/apiclient"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headers
	colorGreen = lipgloss.Color("35")  // Green - gains, success
	colorRed   = lipgloss.Color("167") // Soft red - losses, errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleUp     = lipgloss.NewStyle().Foreground(colorGreen)
	styleDown   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconUp   = "▲"
	iconDown = "▼"

	// placeholder renders in place of any optional field the server omitted.
	placeholder = "N/A"
)

// groupedPrinter inserts thousands separators into integer output.
var groupedPrinter = message.NewPrinter(language.English)

// errorLine formats a single error message line.
func errorLine(msg string) string {
	return styleError.Render("Error:") + " " + msg
}

// renderQuote formats a stock quote as a terminal card. Optional fields the
// server omitted render as a placeholder instead of failing.
func renderQuote(q *apiclient.Quote) string {
	var b strings.Builder
	b.WriteString("\n" + styleHeader.Render("===== STOCK INFORMATION =====") + "\n")
	b.WriteString("Symbol: " + styleValue.Render(q.Symbol) + "\n")
	b.WriteString("Price: " + styleValue.Render(formatPrice(q.Price)) + "\n")
	b.WriteString("Change: " + formatChange(q.Change, q.ChangePercent) + "\n")
	b.WriteString("Volume: " + styleValue.Render(formatVolume(q.Volume)) + "\n")
	b.WriteString("Updated At: " + styleDim.Render(orPlaceholder(q.UpdatedAt)) + "\n")
	b.WriteString(styleHeader.Render("=============================") + "\n")
	return b.String()
}

// renderHealth formats the server health report. Uptime, environment and
// cached-item lines only appear when the server reported them.
func renderHealth(h *apiclient.Health) string {
	var b strings.Builder
	b.WriteString("\n" + styleHeader.Render("===== SERVER HEALTH =====") + "\n")

	status := h.Status
	if status == "" {
		status = "unknown"
	}
	b.WriteString("Status: " + styleValue.Render(status) + "\n")

	timestamp := h.Timestamp
	if timestamp == "" {
		timestamp = placeholder
	}
	b.WriteString("Timestamp: " + styleValue.Render(timestamp) + "\n")

	if h.Uptime != nil {
		b.WriteString("Uptime: " + styleValue.Render(fmt.Sprintf("%v", *h.Uptime)) + "\n")
	}
	if h.Environment != nil {
		b.WriteString("Environment: " + styleValue.Render(*h.Environment) + "\n")
	}
	if h.CacheItems != nil {
		b.WriteString("Cached Items: " + styleValue.Render(fmt.Sprintf("%d", *h.CacheItems)) + "\n")
	}

	b.WriteString(styleHeader.Render("=========================") + "\n")
	return b.String()
}

// renderFetchResponse formats the proxy envelope: upstream status line and
// the pretty-printed response data.
func renderFetchResponse(resp *apiclient.Response) string {
	var b strings.Builder
	b.WriteString("\n" + styleHeader.Render("===== API RESPONSE =====") + "\n")

	statusLine := fmt.Sprintf("%d", resp.Status)
	if resp.StatusText != "" {
		statusLine += " " + resp.StatusText
	}
	b.WriteString("Status: " + styleValue.Render(statusLine) + "\n")

	b.WriteString("Response Data:\n")
	b.WriteString(prettyJSON(resp.Data) + "\n")
	b.WriteString(styleHeader.Render("========================") + "\n")
	return b.String()
}

// renderElapsed formats the wall-clock duration of a completed request.
func renderElapsed(d time.Duration) string {
	return styleDim.Render(fmt.Sprintf("Request completed in %.2f seconds", d.Seconds()))
}

func formatPrice(price *float64) string {
	if price == nil {
		return placeholder
	}
	return fmt.Sprintf("$%.2f", *price)
}

// formatChange renders the signed change with a direction indicator. Both
// the absolute change and the absolute percent are shown; direction comes
// from the sign. Either value missing yields the placeholder.
func formatChange(change, percent *float64) string {
	if change == nil || percent == nil {
		return placeholder
	}
	text := fmt.Sprintf("$%.2f (%.2f%%)", math.Abs(*change), math.Abs(*percent))
	if *change < 0 {
		return styleDown.Render(iconDown + " " + text)
	}
	return styleUp.Render(iconUp + " " + text)
}

func formatVolume(volume *int64) string {
	if volume == nil {
		return placeholder
	}
	return groupedPrinter.Sprintf("%d", *volume)
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}

// prettyJSON renders v with two-space indentation.
func prettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
