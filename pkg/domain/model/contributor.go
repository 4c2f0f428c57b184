package model

// Contributor is a single entry on a wall. Primary fields come from the
// repository contributor listing; Name/Bio/Location are filled in by a
// secondary per-user lookup and stay nil when that lookup fails.
type Contributor struct {
	Login         string  `json:"login"`
	AvatarURL     string  `json:"avatar_url"`
	Contributions int     `json:"contributions"`
	HTMLURL       string  `json:"html_url"`
	Name          *string `json:"name,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	Location      *string `json:"location,omitempty"`
}

// Repository is the subset of repository metadata the API proxies through
type Repository struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	OpenIssues  int    `json:"open_issues_count"`
	HTMLURL     string `json:"html_url"`
}
