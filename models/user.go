package models

import "golang.org/x/crypto/bcrypt"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`
}

func (u *User) TableName() string {
	return "users"
}

// SetPassword hashes the plaintext with bcrypt; the plaintext itself is
// never stored.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
