package models

import "time"

// Domain records below are consumed read-only by dashboard views. They carry
// no client-side lifecycle; the definitions exist for typing only.

type Profile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Bio             string    `json:"bio,omitempty"`
	University      string    `json:"university,omitempty"`
	GraduationYear  int       `json:"graduation_year,omitempty"`
	GithubURL       string    `json:"github_url,omitempty"`
	LinkedinURL     string    `json:"linkedin_url,omitempty"`
	PortfolioURL    string    `json:"portfolio_url,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Location        string    `json:"location,omitempty"`
	ReputationScore int       `json:"reputation_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	IconURL     string    `json:"icon_url,omitempty"`
	BannerURL   string    `json:"banner_url,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	MemberCount int       `json:"member_count"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
}

type Post struct {
	ID           string    `json:"_id"`
	UserID       string    `json:"user_id"`
	CommunityID  string    `json:"community_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContentType  string    `json:"content_type"`
	Tags         []string  `json:"tags"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	ViewCount    int       `json:"view_count"`
	CommentCount int       `json:"comment_count"`
	IsPinned     bool      `json:"is_pinned"`
	CreatedAt    time.Time `json:"created_at"`
}

type Hackathon struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Organizer            string     `json:"organizer,omitempty"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	Mode                 string     `json:"mode"`
	Location             string     `json:"location,omitempty"`
	PrizePool            string     `json:"prize_pool,omitempty"`
	WebsiteURL           string     `json:"website_url,omitempty"`
	BannerURL            string     `json:"banner_url,omitempty"`
	MaxTeamSize          int        `json:"max_team_size"`
	MinTeamSize          int        `json:"min_team_size"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
}

type Team struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	HackathonID    string    `json:"hackathon_id"`
	LeaderID       string    `json:"leader_id,omitempty"`
	MaxMembers     int       `json:"max_members"`
	CurrentMembers int       `json:"current_members"`
	IsOpen         bool      `json:"is_open"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
