package models

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title          string // Page title
	Description    string // Meta description (150-160 chars recommended)
	Keywords       string // Meta keywords (comma-separated)
	Canonical      string // Canonical URL
	SiteName       string // Open Graph site name
	OGTitle        string // Open Graph title (defaults to Title if empty)
	OGDesc         string // Open Graph description (defaults to Description if empty)
	OGImage        string // Open Graph image URL
	OGImageAlt     string
	OGType         string // Open Graph type (website, article, etc.)
	TwitterCard    string // Twitter card type (summary, summary_large_image)
	TwitterCreator string // Twitter handle, e.g. "@triggerby"
	Author         string
	NoIndex        bool   // If true, adds noindex directive
	Locale         string // Open Graph locale (e.g., "en_US")
}

// DefaultSEO returns SEO with sensible defaults
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image and its alt text
func (s *SEO) WithOGImage(imageURL, alt string) *SEO {
	s.OGImage = imageURL
	s.OGImageAlt = alt
	return s
}

// WithKeywords sets meta keywords
func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}

// Robots returns the robots meta directive
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1"
}
