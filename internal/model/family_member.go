package model

// Relationship values accepted by the backend.
const (
	RelationshipChild  = "child"
	RelationshipSpouse = "spouse"
	RelationshipFriend = "friend"
	RelationshipOther  = "other"
)

// FamilyMember is a secondary account linked to a primary member.
type FamilyMember struct {
	ID               string `json:"id"`
	FullName         string `json:"fullName"`
	Email            string `json:"email,omitempty"`
	YearOfBirth      string `json:"yearOfBirth,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	TrainingGroup    string `json:"trainingGroup,omitempty"`
	Relationship     string `json:"relationship"`
	PrimaryAccountID string `json:"primaryAccountId,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
}

// FamilyMemberInput is the create/update payload for a family member.
type FamilyMemberInput struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email,omitempty"`
	YearOfBirth   string `json:"yearOfBirth"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	TrainingGroup string `json:"trainingGroup,omitempty"`
	Relationship  string `json:"relationship"`
}

// Family is a primary account with its linked members, as listed for admins.
type Family struct {
	ID            string         `json:"id"`
	FullName      string         `json:"fullName"`
	Email         string         `json:"email"`
	Username      string         `json:"username,omitempty"`
	YearOfBirth   string         `json:"yearOfBirth,omitempty"`
	FamilyMembers []FamilyMember `json:"familyMembers"`
}
