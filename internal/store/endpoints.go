package store

const (
	LoginEndpoint    = "/api/Auth/loginKey"
	ValidateEndpoint = "/api/Auth/validate"
)

func GetLoginEndpoint() string {
	return LoginEndpoint
}

func GetValidateEndpoint() string {
	return ValidateEndpoint
}
