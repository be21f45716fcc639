package models

// User represents a registered user. PasswordHash always holds the bcrypt
// output of the original plaintext, never the plaintext itself.
type User struct {
	ID             string `bson:"_id,omitempty" mapstructure:"id" db:"id"`
	ExternalUserID string `bson:"external_user_id" mapstructure:"external_user_id" db:"external_user_id"`
	Name           string `bson:"name" mapstructure:"name" db:"name"`
	Email          string `bson:"email" mapstructure:"email" db:"email"`
	PasswordHash   string `bson:"password_hash" mapstructure:"password_hash" db:"password_hash"`
}

// NewUser creates a new User instance with the given attributes.
// Note: No validation is performed here.
func NewUser(externalUserID, name, email, passwordHash string) *User {
	return &User{
		ExternalUserID: externalUserID,
		Name:           name,
		Email:          email,
		PasswordHash:   passwordHash,
	}
}
