package types

type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Country   string `json:"country"`
	Residence string `json:"residence"`
	Username  string `json:"username"`
}
