package api

// MissingFields returns the names of required registration fields that
// are empty, in a stable order. An empty result means the request is
// complete.
func (r *RegisterRequest) MissingFields() []string {
	var missing []string
	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	check("surname", r.Surname)
	check("givenName", r.GivenName)
	check("dob", r.DOB)
	check("username", r.Username)
	check("email", r.Email)
	check("password", r.Password)
	return missing
}

// MissingFields returns the names of required login fields that are empty.
func (r *LoginRequest) MissingFields() []string {
	var missing []string
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}
