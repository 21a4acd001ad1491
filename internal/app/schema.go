package app

// SchemaKind selects an optional rich-snippet block in the preview.
// Presentation only; it never affects width estimation.
type SchemaKind string

const (
	SchemaNone   SchemaKind = "none"
	SchemaFAQ    SchemaKind = "faq"
	SchemaReview SchemaKind = "review"
)

func ParseSchema(s string) (SchemaKind, bool) {
	switch s {
	case "", "none", "None":
		return SchemaNone, true
	case "faq", "FAQ":
		return SchemaFAQ, true
	case "review", "rating", "Review/Rating":
		return SchemaReview, true
	default:
		return SchemaNone, false
	}
}

// SampleFAQ returns the placeholder questions shown in an FAQ rich snippet.
func SampleFAQ() []string {
	return []string{
		"What is the first sample question?",
		"What is the second sample question?",
		"What is the third sample question?",
	}
}

// SampleRating returns the star row and caption for a Review/Rating snippet.
func SampleRating() (stars, caption string) {
	return "★★★★☆", "Rating: 4.5 - 1,234 reviews"
}
