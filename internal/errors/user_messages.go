package errors

// User-facing messages
const (
	MsgPropertyNotFound    = "This listing does not exist or has been removed."
	MsgRealtorRequired     = "Only registered realtors can manage listings."
	MsgNotListingOwner     = "You can only manage your own listings."
	MsgInvalidCredentials  = "Invalid username or password."
	MsgRateLimited         = "Too many attempts. Please wait a moment and try again."
	MsgInternalError       = "Something went wrong on our end. Please try again later."
	MsgRequired            = "This field is required."
	MsgUnreadableForm      = "Submitted form data could not be read."
	MsgPasswordMismatch    = "The two password fields do not match."
	MsgUsernameTaken       = "An account with this username already exists."
	MsgEmailTaken          = "An account with this email already exists."
	MsgLicenseTaken        = "A realtor with this license number is already registered."
	MsgListingAdded        = "New listing added successfully."
	MsgListingUpdated      = "Listing updated successfully."
	MsgListingDeleted      = "Listing deleted."
)
