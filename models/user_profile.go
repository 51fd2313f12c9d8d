package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID      string `dynamodbav:"userId" json:"id"`
	DisplayName string `dynamodbav:"displayName,omitempty" json:"displayName"`
	Email       string `dynamodbav:"email,omitempty" json:"email"`
	PhotoURL    string `dynamodbav:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt   string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"
