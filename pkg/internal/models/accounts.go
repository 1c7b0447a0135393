package models

type Account struct {
	BaseModel

	Username string `json:"username" gorm:"uniqueIndex" validate:"lowercase,alphanum"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Nick     string `json:"nick"`
	Bio      string `json:"bio"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`
}
