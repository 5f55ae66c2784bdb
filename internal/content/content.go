// Package content holds the read-only brand, service and team data rendered by the page.
//
// A Site is loaded once at startup (embedded YAML by default, or an override file) and is
// never mutated afterwards. Optional fields may be missing; renderers show reduced detail.
package content

// SocialLink is an outbound social profile link. URLs are passed through untouched.
type SocialLink struct {
	Platform string `yaml:"platform"` // instagram, whatsapp, youtube, pinterest, website
	URL      string `yaml:"url"`
}

// ContactLink is a call-to-action link (scheduling, WhatsApp, booking pages).
type ContactLink struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
	Featured    bool   `yaml:"featured,omitempty"`
}

// Location is the physical address badge shown in the header.
type Location struct {
	Venue string `yaml:"venue"`
	Area  string `yaml:"area"`
}

// BrandProfile identifies whoever the page is about: the clinic or the practitioner.
type BrandProfile struct {
	Name     string        `yaml:"name"`
	Handle   string        `yaml:"handle"`
	Bio      string        `yaml:"bio"`
	Slogan   string        `yaml:"slogan,omitempty"`
	Avatar   string        `yaml:"avatar,omitempty"`
	Location Location      `yaml:"location"`
	Socials  []SocialLink  `yaml:"socials"`
	Contacts []ContactLink `yaml:"contacts"`
}

// Testimonial is a short patient quote attached to a service.
type Testimonial struct {
	Author string `yaml:"author"`
	Quote  string `yaml:"quote"`
}

// FAQItem is one inline-expandable question in a service sheet.
type FAQItem struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// ServiceDetail is the extended content shown in the service sheet.
type ServiceDetail struct {
	HowItWorks   string        `yaml:"how_it_works,omitempty"`
	Steps        []string      `yaml:"steps,omitempty"`
	Testimonials []Testimonial `yaml:"testimonials,omitempty"`
	FAQ          []FAQItem     `yaml:"faq,omitempty"`
}

// ServiceEntry is one item of the carousel.
type ServiceEntry struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Icon        string         `yaml:"icon,omitempty"`
	Detail      *ServiceDetail `yaml:"detail,omitempty"`
}

// HasDetail reports whether the entry carries any extended detail.
func (s ServiceEntry) HasDetail() bool {
	if s.Detail == nil {
		return false
	}
	d := s.Detail
	return d.HowItWorks != "" || len(d.Steps) > 0 || len(d.Testimonials) > 0 || len(d.FAQ) > 0
}

// MemberDetail is the extended bio shown in the team sheet.
type MemberDetail struct {
	Bio         string   `yaml:"bio,omitempty"`
	Specialties []string `yaml:"specialties,omitempty"`
	Approach    string   `yaml:"approach,omitempty"`
}

// TeamMember is one professional of the team list.
type TeamMember struct {
	Name   string        `yaml:"name"`
	Role   string        `yaml:"role"`
	CRP    string        `yaml:"crp"`
	Avatar string        `yaml:"avatar,omitempty"`
	Detail *MemberDetail `yaml:"detail,omitempty"`
}

// HasDetail reports whether the member carries an extended bio.
func (m TeamMember) HasDetail() bool {
	if m.Detail == nil {
		return false
	}
	return m.Detail.Bio != "" || len(m.Detail.Specialties) > 0 || m.Detail.Approach != ""
}

// Stat is a headline number of the stats row ("1k+ Vidas").
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Emergency is a crisis hotline entry.
type Emergency struct {
	Label  string `yaml:"label"`
	Number string `yaml:"number"`
}

// Profile is one complete content set (institutional or personal).
type Profile struct {
	Brand       BrandProfile   `yaml:"brand"`
	Services    []ServiceEntry `yaml:"services"`
	Team        []TeamMember   `yaml:"team"`
	Stats       []Stat         `yaml:"stats,omitempty"`
	Insurers    []string       `yaml:"insurers,omitempty"`
	Emergencies []Emergency    `yaml:"emergencies,omitempty"`

	// Prompt is sent to the text-generation service for the welcome tagline.
	Prompt string `yaml:"prompt"`
	// FallbackTagline is shown when the tagline cannot be generated.
	FallbackTagline string `yaml:"fallback_tagline"`
}

// Service returns the service with the given id.
func (p *Profile) Service(id string) (ServiceEntry, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceEntry{}, false
}

// Site is the whole content source: both content sets.
type Site struct {
	Institutional Profile `yaml:"institutional"`
	Personal      Profile `yaml:"personal"`
}

// ProfileFor returns the personal content set when personal is true,
// the institutional one otherwise.
func (s *Site) ProfileFor(personal bool) *Profile {
	if personal {
		return &s.Personal
	}
	return &s.Institutional
}
