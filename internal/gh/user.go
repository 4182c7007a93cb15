package gh

type UserKind string

const (
	UserKindIndividual   UserKind = "individual"
	UserKindOrganization UserKind = "organization"
)

// User is the account that owns a repository or authored an issue.
type User struct {
	Kind       UserKind
	Name       string
	AvatarURL  string
	ProfileURL string
}

// userPayload is the `owner`/`user` sub-object of the REST responses.
type userPayload struct {
	Login     string `json:"login"`
	Type      string `json:"type"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// mapUser converts the REST account sub-object into a User. The API reports
// the account type as exactly "User" for individual accounts; every other
// value (in practice "Organization", occasionally "Bot") is treated as an
// organization-style account.
func mapUser(payload *userPayload) User {
	kind := UserKindOrganization
	if payload.Type == "User" {
		kind = UserKindIndividual
	}
	return User{
		Kind:       kind,
		Name:       payload.Login,
		AvatarURL:  payload.AvatarURL,
		ProfileURL: payload.HTMLURL,
	}
}
