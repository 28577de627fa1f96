package models

// ClientSignupForm carries the client registration fields: account identity
// plus the client contact details created alongside it.
type ClientSignupForm struct {
	Username  string `form:"username" json:"username"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
	Password2 string `form:"password2" json:"password2"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Phone     string `form:"phone" json:"phone"`
	Address   string `form:"address" json:"address"`
}

// RealtorSignupForm carries the realtor registration fields.
type RealtorSignupForm struct {
	Username      string `form:"username" json:"username"`
	Email         string `form:"email" json:"email"`
	Password      string `form:"password" json:"password"`
	Password2     string `form:"password2" json:"password2"`
	FirstName     string `form:"first_name" json:"first_name"`
	LastName      string `form:"last_name" json:"last_name"`
	Phone         string `form:"phone" json:"phone"`
	LicenseNumber string `form:"license_number" json:"license_number"`
	Bio           string `form:"bio" json:"bio"`
	Photo         string `form:"photo" json:"photo"`
}

// LoginForm carries the credentials form.
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// PropertyForm carries the add/edit listing fields. Owner, responsible
// client, featured flag and timestamps are never form input: the acting
// realtor is stamped as owner and the rest is server-set.
type PropertyForm struct {
	Title        string  `form:"title" json:"title"`
	Description  string  `form:"description" json:"description"`
	PropertyType string  `form:"property_type" json:"property_type"`
	Status       string  `form:"status" json:"status"`
	Address      string  `form:"address" json:"address"`
	Price        float64 `form:"price" json:"price"`
	Area         float64 `form:"area" json:"area"`
	Bedrooms     int     `form:"bedrooms" json:"bedrooms"`
	Bathrooms    int     `form:"bathrooms" json:"bathrooms"`
	MainImage    string  `form:"main_image" json:"main_image"`
	Image1       string  `form:"image1" json:"image1"`
	Image2       string  `form:"image2" json:"image2"`
	Image3       string  `form:"image3" json:"image3"`
}
