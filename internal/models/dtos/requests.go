package dtos

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateEventReq struct {
	Name             string `json:"name"`
	OrganizingClubID string `json:"organizing_club_id"`
	Venue            string `json:"venue"`
	Date             string `json:"date"`
	Time             string `json:"time"`
}
