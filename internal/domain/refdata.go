package domain

type City struct {
	ID       string `json:"id"`
	CityName string `json:"city_name"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

type Category struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}
