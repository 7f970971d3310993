package profile

// Profile describes the creator the AI operations and starter pages are built for.
type Profile struct {
	Name      string     `json:"name"`
	Handle    string     `json:"handle,omitempty"`
	Niche     string     `json:"niche"`
	Headline  string     `json:"headline,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	Location  string     `json:"location,omitempty"`
	Audience  string     `json:"audience,omitempty"`
	Tone      string     `json:"tone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Offerings []string   `json:"offerings,omitempty"`
	Platforms []Platform `json:"platforms"`
}

// Platform is one channel the creator publishes on.
type Platform struct {
	Name      string `json:"name"`
	Handle    string `json:"handle,omitempty"`
	URL       string `json:"url,omitempty"`
	Followers int    `json:"followers,omitempty"`
}
