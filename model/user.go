package model

type User struct {
	Id        string   `bson:"_id" json:"id"`
	Email     string   `bson:"email" json:"email"`
	Password  string   `bson:"password" json:"-"`
	Name      string   `bson:"name" json:"name"`
	Bio       string   `bson:"bio" json:"bio"`
	AvatarUrl string   `bson:"avatar_url" json:"avatarUrl"`
	Movies    []string `bson:"movies" json:"movies"`
}

func (u *User) WatchlistCount() int {
	if u == nil {
		return 0
	}
	return len(u.Movies)
}

// DisplayName falls back to the email when no name was set.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

type ProfileUpdate struct {
	Name      string
	Bio       string
	AvatarUrl string
}

type FlashMessage struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
