package app

import "fmt"

type DeviceProfile string

const (
	DeviceDesktop DeviceProfile = "desktop"
	DeviceMobile  DeviceProfile = "mobile"
)

// ParseDevice maps user input to a device profile. Unrecognized values
// report ok=false so callers can fall back to a configured default.
func ParseDevice(s string) (DeviceProfile, bool) {
	switch s {
	case "desktop", "Desktop", "":
		return DeviceDesktop, s != ""
	case "mobile", "Mobile":
		return DeviceMobile, true
	default:
		return DeviceDesktop, false
	}
}

type FieldKind string

const (
	FieldTitle       FieldKind = "title"
	FieldDescription FieldKind = "description"
)

// FieldLimits holds the pixel budgets for the two measured snippet fields.
type FieldLimits struct {
	Title       float64 `yaml:"title"`
	Description float64 `yaml:"description"`
}

// SnippetMetrics is the result of measuring one field against a device limit.
// It is derived data, recomputed on every input change and never stored.
type SnippetMetrics struct {
	PixelWidth     float64
	Limit          float64
	Truncated      bool
	TruncatedText  string
	CharsOverLimit int
}

// Estimator turns text into an estimated rendered pixel width and a
// truncation decision. It is a linear per-character approximation, not a
// layout engine: no kerning, no font hinting. All operations are pure and
// safe for concurrent use once constructed.
type Estimator struct {
	widths       map[rune]float64
	defaultWidth float64
	ellipsis     string
	limits       map[DeviceProfile]FieldLimits
}

// NewEstimator builds an estimator from config, layering any configured
// per-character overrides on top of the built-in width table.
func NewEstimator(cfg Config) *Estimator {
	widths := defaultCharWidths()
	for s, w := range cfg.CharWidths {
		for _, r := range s {
			widths[r] = w
			break
		}
	}
	return &Estimator{
		widths:       widths,
		defaultWidth: cfg.DefaultCharWidth,
		ellipsis:     cfg.Ellipsis,
		limits: map[DeviceProfile]FieldLimits{
			DeviceDesktop: cfg.DesktopLimits,
			DeviceMobile:  cfg.MobileLimits,
		},
	}
}

// Limit reports the pixel budget for a (device, field) pair.
func (e *Estimator) Limit(device DeviceProfile, field FieldKind) float64 {
	l := e.limits[device]
	if field == FieldDescription {
		return l.Description
	}
	return l.Title
}

// EstimateWidth sums the approximate pixel width of every rune in text.
// Unknown runes fall back to the default width; empty input is 0.
func (e *Estimator) EstimateWidth(text string) float64 {
	var total float64
	for _, r := range text {
		if w, ok := e.widths[r]; ok {
			total += w
		} else {
			total += e.defaultWidth
		}
	}
	return total
}

// Truncate measures text against the (device, field) limit and, when it
// does not fit, finds the longest prefix that fits together with the
// ellipsis marker. Truncation happens at a character boundary, not a word
// boundary, matching the character-level width estimate.
func (e *Estimator) Truncate(text string, device DeviceProfile, field FieldKind) SnippetMetrics {
	limit := e.Limit(device, field)
	width := e.EstimateWidth(text)

	m := SnippetMetrics{
		PixelWidth:    width,
		Limit:         limit,
		TruncatedText: text,
	}
	if width <= limit {
		return m
	}

	m.Truncated = true
	ellipsisWidth := e.EstimateWidth(e.ellipsis)

	runes := []rune(text)
	budget := limit - ellipsisWidth
	var acc float64
	cut := 0
	for i, r := range runes {
		w, ok := e.widths[r]
		if !ok {
			w = e.defaultWidth
		}
		if acc+w > budget {
			break
		}
		acc += w
		cut = i + 1
	}

	m.CharsOverLimit = len(runes) - cut
	switch {
	case cut > 0:
		m.TruncatedText = string(runes[:cut]) + e.ellipsis
	case ellipsisWidth <= limit:
		m.TruncatedText = e.ellipsis
	default:
		m.TruncatedText = ""
	}
	return m
}

// Suggest renders a human-readable hint for a measured field: how many
// characters to cut when over the limit, or how much headroom remains.
func (e *Estimator) Suggest(text string, device DeviceProfile, field FieldKind) string {
	m := e.Truncate(text, device, field)
	if m.Truncated {
		return fmt.Sprintf("Reduce by %d characters to fit the %s %s limit", m.CharsOverLimit, device, field)
	}
	return fmt.Sprintf("%s px of headroom remain", formatPx(m.Limit-m.PixelWidth))
}
