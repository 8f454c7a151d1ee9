package constant

// Roles assignable to a user. Self-service registration always produces
// RoleCustomer; RoleAdmin is granted through an administrative path outside
// this service.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User-facing messages. Register and Login share the field and email messages
// so a probing caller cannot tell the flows apart; the credential message is
// identical whether the account is missing or the password is wrong.
const (
	MsgFieldsRequired     = "all required fields must be provided"
	MsgInvalidEmail       = "a valid email address is required"
	MsgInvalidCredentials = "invalid email or password"
	MsgEmailAlreadyInUse  = "this email address is already registered"
	MsgInternalError      = "something went wrong, please try again later"
	MsgRegistered         = "account created successfully"
	MsgLoggedIn           = "login successful"
)
