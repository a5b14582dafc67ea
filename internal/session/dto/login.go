package dto

type LoginInput struct {
	Email         string `json:"email"`
	OriginAddress string `json:"-"`
	UserAgent     string `json:"-"`
}
