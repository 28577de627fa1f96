package models

// Actor is the acting identity of a request, resolved once at request entry:
// the account plus whichever profile kind exists for it. In the normal flow
// an account has a client profile or a realtor profile, never both.
type Actor struct {
	Account *Account
	Client  *ClientProfile
	Realtor *RealtorProfile
}

func (a *Actor) IsRealtor() bool {
	return a != nil && a.Realtor != nil
}

func (a *Actor) IsClient() bool {
	return a != nil && a.Client != nil
}
