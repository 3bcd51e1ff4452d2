package constvars

const (
	URLParamRequestID  = "request_id"
	URLParamSessionID  = "session_id"
	URLParamProviderID = "provider_id"
)

const (
	URLQueryParamLanguage   = "lang"
	URLQueryParamCategory   = "category_id"
	URLQueryParamPostalCode = "postal_code"
	HeaderAcceptLanguage    = "Accept-Language"
)
